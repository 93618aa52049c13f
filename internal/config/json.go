package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding.
// Durations are accepted both as nanosecond numbers and as strings like
// "5m" or "30s" via the [Duration] wrapper.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		TokenDuration        Duration `json:"token_duration"`
		PasswordMinLength    int      `json:"password_min_length"`
		ConfirmationBaseURL  string   `json:"confirmation_base_url"`
		PasswordResetBaseURL string   `json:"password_reset_base_url"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN    string `json:"dsn"`
			Engine string `json:"engine"`
		} `json:"db,omitempty"`

		Redis struct {
			Address   string `json:"address"`
			KeyPrefix string `json:"key_prefix"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mail struct {
		APIURL         string   `json:"api_url"`
		APIKey         string   `json:"api_key"`
		FromEmail      string   `json:"from_email"`
		FromName       string   `json:"from_name"`
		QueueSize      int      `json:"queue_size"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"mail,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:         jsonCfg.App.TokenSignKey,
			TokenIssuer:          jsonCfg.App.TokenIssuer,
			TokenDuration:        time.Duration(jsonCfg.App.TokenDuration),
			PasswordMinLength:    jsonCfg.App.PasswordMinLength,
			ConfirmationBaseURL:  jsonCfg.App.ConfirmationBaseURL,
			PasswordResetBaseURL: jsonCfg.App.PasswordResetBaseURL,
		},
		Storage: Storage{
			DB: DB{
				DSN:    jsonCfg.Storage.DB.DSN,
				Engine: jsonCfg.Storage.DB.Engine,
			},
			Redis: Redis{
				Address:   jsonCfg.Storage.Redis.Address,
				KeyPrefix: jsonCfg.Storage.Redis.KeyPrefix,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mail: Mail{
			APIURL:         jsonCfg.Mail.APIURL,
			APIKey:         jsonCfg.Mail.APIKey,
			FromEmail:      jsonCfg.Mail.FromEmail,
			FromName:       jsonCfg.Mail.FromName,
			QueueSize:      jsonCfg.Mail.QueueSize,
			RequestTimeout: time.Duration(jsonCfg.Mail.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration")
	}
}
