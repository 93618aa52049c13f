package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/useraccounts/go-user-accounts/internal/config"
	"github.com/useraccounts/go-user-accounts/internal/crypto"
	"github.com/useraccounts/go-user-accounts/internal/logger"
	"github.com/useraccounts/go-user-accounts/internal/notifier"
	"github.com/useraccounts/go-user-accounts/internal/store"
	"github.com/useraccounts/go-user-accounts/internal/tokens"
	"github.com/useraccounts/go-user-accounts/internal/utils"
	"github.com/useraccounts/go-user-accounts/internal/workers"
	"github.com/useraccounts/go-user-accounts/models"
)

// accountService is the concrete implementation of [AccountService].
// It orchestrates the account repository, the single-use action-token
// store, the credential hasher, the session-token parameters, and the mail
// queue.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
type accountService struct {
	// accountRepository is the data-access layer for account records.
	accountRepository store.AccountRepository

	// actionTokens issues and redeems single-use confirmation/reset tokens.
	actionTokens tokens.Store

	// hasher hashes and verifies account passwords.
	hasher crypto.Hasher

	// mail receives outbound messages for asynchronous delivery.
	mail workers.MailQueue

	// links builds the confirmation/reset URLs embedded in emails.
	links *notifier.LinkBuilder

	// policy is the configured password acceptance policy.
	policy passwordPolicy

	// tokenSignKey is the HMAC secret used to sign and verify session JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued session token.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session token remains
	// valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAccountService constructs an [AccountService] wired to the given
// collaborators and populated with security parameters from cfg.
func NewAccountService(
	accountRepository store.AccountRepository,
	actionTokens tokens.Store,
	hasher crypto.Hasher,
	mail workers.MailQueue,
	links *notifier.LinkBuilder,
	cfg config.App,
	logger *logger.Logger,
) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		actionTokens:      actionTokens,
		hasher:            hasher,
		mail:              mail,
		links:             links,
		policy:            newPasswordPolicy(cfg),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Register creates a new unconfirmed account.
//
// It validates the identity fields and the password policy, hashes the
// password, persists the account, issues an email-confirmation token, and
// queues the confirmation email. The emailed token is URL-safe encoded; the
// raw token never leaves the server unencoded.
//
// Returns the public projection of the created account or:
//   - ErrInvalidDataProvided if username, email, or password is empty.
//   - ErrWeakPassword if the password fails the configured policy.
//   - A wrapped storage error if persistence fails (e.g. identity already
//     taken — see store.ErrUsernameOrEmailTaken).
func (a *accountService) Register(ctx context.Context, req models.RegisterRequest) (models.AccountProjection, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Str("email", req.Email).Msg("invalid registration data provided")
		return models.AccountProjection{}, ErrInvalidDataProvided
	}

	if !a.policy.check(req.Password) {
		log.Error().Str("username", req.Username).Msg("password failed the configured policy")
		return models.AccountProjection{}, ErrWeakPassword
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return models.AccountProjection{}, fmt.Errorf("password hashing ended with error: %w", err)
	}

	created, err := a.accountRepository.CreateAccount(ctx, models.Account{
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   passwordHash,
		EmailConfirmed: false,
		DisplayName:    req.DisplayName,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("account creation ended with error")
		return models.AccountProjection{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	rawToken, err := a.actionTokens.Issue(ctx, created.AccountID, tokens.PurposeEmailConfirmation)
	if err != nil {
		log.Err(err).Int64("id", created.AccountID).Msg("issuing confirmation token ended with error")
		return models.AccountProjection{}, fmt.Errorf("issuing confirmation token ended with error: %w", err)
	}

	a.mail.Enqueue(workers.Message{
		To:       created.Email,
		Subject:  "Confirm your email",
		HTMLBody: a.links.ConfirmationBody(created.Email, tokens.Encode([]byte(rawToken))),
	})

	return created.Public(), nil
}

// ConfirmEmail redeems an email-confirmation token.
//
// The encoded token is decoded with the URL-safe codec and redeemed against
// the action-token store, which guarantees single use: a token consumed by
// an earlier (possibly concurrent) redemption fails with
// ErrInvalidActionToken rather than silently succeeding.
//
// Returns nil on success or:
//   - A wrapped storage error if no account is registered with email.
//   - tokens.ErrMalformedToken if the encoded token is not URL-safe base64.
//   - ErrInvalidActionToken if the token does not match the outstanding one.
func (a *accountService) ConfirmEmail(ctx context.Context, email, encodedToken string) error {
	log := logger.FromContext(ctx)

	if email == "" || encodedToken == "" {
		return ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("account search by email failed")
		return fmt.Errorf("account search by email failed: %w", err)
	}

	rawToken, err := tokens.Decode(encodedToken)
	if err != nil {
		return err
	}

	if err := a.actionTokens.Redeem(ctx, account.AccountID, tokens.PurposeEmailConfirmation, string(rawToken)); err != nil {
		log.Err(err).Int64("id", account.AccountID).Msg("confirmation token redemption failed")
		return ErrInvalidActionToken
	}

	if err := a.accountRepository.SetEmailConfirmed(ctx, account.AccountID); err != nil {
		return fmt.Errorf("persisting email confirmation failed: %w", err)
	}

	return nil
}

// Login authenticates an existing account and mints a session token.
//
// The confirmation check deliberately happens before the password is
// verified, matching the documented HTTP contract: an unconfirmed account is
// reported as unconfirmed regardless of the supplied password.
//
// Returns the session token or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the lookup fails (see
//     store.ErrNoAccountWasFound).
//   - ErrAccountNotConfirmed if the email-confirmed flag is false.
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *accountService) Login(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("account search by username failed")
		return models.Token{}, fmt.Errorf("account search by username failed: %w", err)
	}

	if !account.EmailConfirmed {
		log.Warn().Int64("id", account.AccountID).Msg("login refused: email not confirmed")
		return models.Token{}, ErrAccountNotConfirmed
	}

	if err := a.hasher.Verify(password, account.PasswordHash); err != nil {
		if errors.Is(err, crypto.ErrMismatchedPassword) {
			log.Warn().Int64("id", account.AccountID).Str("username", username).Msg("wrong password")
			return models.Token{}, ErrWrongPassword
		}
		return models.Token{}, fmt.Errorf("password verification ended with error: %w", err)
	}

	return a.CreateToken(ctx, account.AccountID)
}

// GetProfile returns the public projection for the given account id.
// It tolerates a valid session token referencing an account that no longer
// exists by passing through store.ErrNoAccountWasFound.
func (a *accountService) GetProfile(ctx context.Context, accountID int64) (models.AccountProjection, error) {
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		log.Err(err).Int64("id", accountID).Msg("account search by id failed")
		return models.AccountProjection{}, fmt.Errorf("account search by id failed: %w", err)
	}

	return account.Public(), nil
}

// UpdateProfile mutates only the display name.
func (a *accountService) UpdateProfile(ctx context.Context, accountID int64, displayName string) (models.AccountProjection, error) {
	log := logger.FromContext(ctx)

	if displayName == "" {
		return models.AccountProjection{}, ErrInvalidDataProvided
	}

	updated, err := a.accountRepository.UpdateDisplayName(ctx, accountID, displayName)
	if err != nil {
		log.Err(err).Int64("id", accountID).Msg("display name update failed")
		return models.AccountProjection{}, fmt.Errorf("display name update failed: %w", err)
	}

	return updated.Public(), nil
}

// RequestPasswordReset issues a password-reset token for the account
// registered with email and queues the reset email. Delivery happens
// asynchronously; a provider failure is logged by the mail worker and never
// surfaces to the caller.
func (a *accountService) RequestPasswordReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("account search by email failed")
		return fmt.Errorf("account search by email failed: %w", err)
	}

	rawToken, err := a.actionTokens.Issue(ctx, account.AccountID, tokens.PurposePasswordReset)
	if err != nil {
		log.Err(err).Int64("id", account.AccountID).Msg("issuing password-reset token ended with error")
		return fmt.Errorf("issuing password-reset token ended with error: %w", err)
	}

	a.mail.Enqueue(workers.Message{
		To:       account.Email,
		Subject:  "Reset Password",
		HTMLBody: a.links.PasswordResetBody(account.Email, tokens.Encode([]byte(rawToken))),
	})

	return nil
}

// ResetPassword redeems a password-reset token and replaces the stored
// password hash.
//
// The password/confirmation comparison happens before any store lookup, so
// a mismatch has no side effects. Redemption is single-use: once a reset
// token has been consumed, a second attempt fails with
// ErrInvalidActionToken.
func (a *accountService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	if req.Password != req.ConfirmPassword {
		return ErrPasswordMismatch
	}

	if req.Email == "" || req.Token == "" || req.Password == "" {
		return ErrInvalidDataProvided
	}

	if !a.policy.check(req.Password) {
		return ErrWeakPassword
	}

	account, err := a.accountRepository.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("account search by email failed")
		return fmt.Errorf("account search by email failed: %w", err)
	}

	rawToken, err := tokens.Decode(req.Token)
	if err != nil {
		return err
	}

	if err := a.actionTokens.Redeem(ctx, account.AccountID, tokens.PurposePasswordReset, string(rawToken)); err != nil {
		log.Err(err).Int64("id", account.AccountID).Msg("password-reset token redemption failed")
		return ErrInvalidActionToken
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("password hashing ended with error: %w", err)
	}

	if err := a.accountRepository.UpdatePasswordHash(ctx, account.AccountID, passwordHash); err != nil {
		return fmt.Errorf("persisting new password failed: %w", err)
	}

	return nil
}

// CreateToken issues a signed session JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *accountService) CreateToken(ctx context.Context, accountID int64) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, accountID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the expiry claim. An expired token is reported as ErrTokenIsExpired;
// any other validation failure is normalised to ErrTokenIsExpiredOrInvalid
// so that callers do not need to inspect low-level JWT errors.
func (a *accountService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
