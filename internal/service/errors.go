package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWeakPassword        = errors.New("password does not satisfy the password policy")
	ErrWrongPassword       = errors.New("wrong password")
	ErrAccountNotConfirmed = errors.New("account email is not confirmed")
	ErrPasswordMismatch    = errors.New("password does not match its confirmation")

	// ErrInvalidActionToken is returned when a confirmation or reset token
	// does not match the most recently issued one, including tokens already
	// consumed by an earlier redemption.
	ErrInvalidActionToken = errors.New("invalid or expired action token")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
