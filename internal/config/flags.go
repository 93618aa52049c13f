package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-engine database engine ("pgx" or "sqlite3")
//	-redis-address redis address for the action-token store
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "5m", "1h")
//	-password-min-length minimum accepted password length
//	-confirmation-base-url base URL of emailed confirmation links
//	-password-reset-base-url base URL of emailed password-reset links
//	-mail-api-url email provider API URL
//	-mail-api-key email provider API key
//	-mail-from sender email address
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var dbEngine string
	var redisAddress string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var passwordMinLength int
	var confirmationBaseURL string
	var passwordResetBaseURL string
	var mailAPIURL string
	var mailAPIKey string
	var mailFrom string
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&dbEngine, "db-engine", "", "Database engine (pgx or sqlite3)")
	flag.StringVar(&redisAddress, "redis-address", "", "Redis address for the action-token store")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 5m, 1h)")
	flag.IntVar(&passwordMinLength, "password-min-length", 0, "Minimum accepted password length")
	flag.StringVar(&confirmationBaseURL, "confirmation-base-url", "", "Base URL of emailed confirmation links")
	flag.StringVar(&passwordResetBaseURL, "password-reset-base-url", "", "Base URL of emailed password-reset links")
	flag.StringVar(&mailAPIURL, "mail-api-url", "", "Email provider API URL")
	flag.StringVar(&mailAPIKey, "mail-api-key", "", "Email provider API key")
	flag.StringVar(&mailFrom, "mail-from", "", "Sender email address")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:         tokenSignKey,
			TokenIssuer:          tokenIssuer,
			TokenDuration:        tokenDuration,
			PasswordMinLength:    passwordMinLength,
			ConfirmationBaseURL:  confirmationBaseURL,
			PasswordResetBaseURL: passwordResetBaseURL,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Engine: dbEngine,
			},
			Redis: Redis{
				Address: redisAddress,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Mail: Mail{
			APIURL:    mailAPIURL,
			APIKey:    mailAPIKey,
			FromEmail: mailFrom,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
