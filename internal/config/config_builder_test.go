package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validBase returns the minimal config that passes validation.
func validBase() *StructuredConfig {
	return &StructuredConfig{
		App: App{TokenSignKey: "secret"},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost:5432/accounts"},
		},
	}
}

func TestBuild_AppliesDefaultsUnderExplicitValues(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validBase())
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	// explicit values survive
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://localhost:5432/accounts", cfg.Storage.DB.DSN)

	// defaults fill the gaps
	assert.Equal(t, "go-user-accounts", cfg.App.TokenIssuer)
	assert.Equal(t, 5*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 4, cfg.App.PasswordMinLength)
	assert.Equal(t, "pgx", cfg.Storage.DB.Engine)
	assert.Equal(t, "action-token:", cfg.Storage.Redis.KeyPrefix)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 64, cfg.Mail.QueueSize)
}

func TestBuild_HigherPrioritySourceWins(t *testing.T) {
	higher := validBase()
	higher.App.TokenDuration = time.Hour

	lower := &StructuredConfig{
		App: App{TokenDuration: time.Minute, TokenIssuer: "other-issuer"},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, higher, lower)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.App.TokenDuration, "earlier source must win")
	assert.Equal(t, "other-issuer", cfg.App.TokenIssuer, "later source fills unset fields")
}

func TestBuild_FailsValidationWithoutSignKey(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/accounts"}},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) { cfg.App.PasswordMinLength = 4 }, wantErr: nil},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = ""; cfg.App.PasswordMinLength = 4 }, wantErr: ErrInvalidAppConfigs},
		{name: "missing dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = ""; cfg.App.PasswordMinLength = 4 }, wantErr: ErrInvalidStorageConfigs},
		{name: "non-positive min length", mutate: func(cfg *StructuredConfig) { cfg.App.PasswordMinLength = 0 }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBase()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
