package models

import "time"

// Account represents a registered user identity.
// The password hash must never leave trusted boundaries; use
// [Account.Public] when returning account data to callers.
type Account struct {
	// AccountID is the internal unique identifier of the account.
	// It is not exposed via JSON and is used only at the persistence layer
	// and inside session tokens.
	AccountID int64 `json:"-"`

	// Username is the unique login identifier chosen at registration.
	Username string `json:"username"`

	// Email is the unique address the account was registered with.
	// Confirmation and password-reset links are delivered to it.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// EmailConfirmed reports whether the confirmation link for Email has
	// been redeemed. Login is refused while it is false.
	EmailConfirmed bool `json:"email_confirmed"`

	// DisplayName is the non-sensitive name shown in UIs.
	DisplayName string `json:"display_name"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// Public returns the outward-facing projection of the account.
func (a Account) Public() AccountProjection {
	return AccountProjection{
		Username:       a.Username,
		Email:          a.Email,
		DisplayName:    a.DisplayName,
		EmailConfirmed: a.EmailConfirmed,
	}
}

// AccountProjection is the subset of account fields safe to return to
// any caller.
type AccountProjection struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	DisplayName    string `json:"display_name"`
	EmailConfirmed bool   `json:"email_confirmed"`
}
