package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/useraccounts/go-user-accounts/internal/service"
	"github.com/useraccounts/go-user-accounts/models"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := newHandlerWithAccounts(t, &mockAccountService{})

	req := httptest.NewRequest(http.MethodGet, "/profil", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization")
}

func TestAuthMiddleware_HeaderWithoutToken(t *testing.T) {
	router := newHandlerWithAccounts(t, &mockAccountService{})

	req := httptest.NewRequest(http.MethodGet, "/profil", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_EmptyToken(t *testing.T) {
	router := newHandlerWithAccounts(t, &mockAccountService{})

	req := httptest.NewRequest(http.MethodGet, "/profil", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	accounts := &mockAccountService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpired
		},
	}
	router := newHandlerWithAccounts(t, accounts)

	req := httptest.NewRequest(http.MethodGet, "/profil", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	accounts := &mockAccountService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	router := newHandlerWithAccounts(t, accounts)

	req := httptest.NewRequest(http.MethodGet, "/profil", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = getTokenFromAuthHeader("Bearer")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
