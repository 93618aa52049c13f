package service

import (
	"unicode"

	"github.com/useraccounts/go-user-accounts/internal/config"
)

// passwordPolicy holds the configured password acceptance rules. Only the
// minimum length is enforced by default; the character-class requirements
// exist in configuration but ship disabled.
type passwordPolicy struct {
	minLength        int
	requireLowercase bool
	requireUppercase bool
	requireDigit     bool
	requireSymbol    bool
}

func newPasswordPolicy(cfg config.App) passwordPolicy {
	return passwordPolicy{
		minLength:        cfg.PasswordMinLength,
		requireLowercase: cfg.PasswordRequireLowercase,
		requireUppercase: cfg.PasswordRequireUppercase,
		requireDigit:     cfg.PasswordRequireDigit,
		requireSymbol:    cfg.PasswordRequireSymbol,
	}
}

// check reports whether password satisfies the policy.
func (p passwordPolicy) check(password string) bool {
	runes := []rune(password)
	if len(runes) < p.minLength {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	if p.requireLowercase && !hasLower {
		return false
	}
	if p.requireUppercase && !hasUpper {
		return false
	}
	if p.requireDigit && !hasDigit {
		return false
	}
	if p.requireSymbol && !hasSymbol {
		return false
	}

	return true
}
