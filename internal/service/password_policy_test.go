package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/useraccounts/go-user-accounts/internal/config"
)

func TestPasswordPolicy_MinLength(t *testing.T) {
	policy := newPasswordPolicy(config.App{PasswordMinLength: 4})

	assert.False(t, policy.check(""))
	assert.False(t, policy.check("abc"))
	assert.True(t, policy.check("abcd"))
	assert.True(t, policy.check("a longer passphrase"))
}

func TestPasswordPolicy_CharacterClasses(t *testing.T) {
	policy := newPasswordPolicy(config.App{
		PasswordMinLength:        4,
		PasswordRequireLowercase: true,
		PasswordRequireUppercase: true,
		PasswordRequireDigit:     true,
		PasswordRequireSymbol:    true,
	})

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "all classes present", password: "aB3!", want: true},
		{name: "missing lowercase", password: "AB3!", want: false},
		{name: "missing uppercase", password: "ab3!", want: false},
		{name: "missing digit", password: "abC!", want: false},
		{name: "missing symbol", password: "abC3", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.check(tt.password))
		})
	}
}

func TestPasswordPolicy_LengthCountsRunes(t *testing.T) {
	policy := newPasswordPolicy(config.App{PasswordMinLength: 4})

	// four multi-byte runes satisfy a min length of four
	assert.True(t, policy.check("пароль"[:8]))
}
