package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/useraccounts/go-user-accounts/internal/service"
	"github.com/useraccounts/go-user-accounts/internal/store"
	"github.com/useraccounts/go-user-accounts/models"
)

func TestForgetPassword_HTTP_Success(t *testing.T) {
	var requestedEmail string
	accounts := &mockAccountService{
		requestPasswordResetFn: func(ctx context.Context, email string) error {
			requestedEmail = email
			return nil
		},
	}
	router := newHandlerWithAccounts(t, accounts)

	body := jsonBody(t, models.ForgetPasswordRequest{Email: "john@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/forgetpassword", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "john@example.com", requestedEmail)

	var ack models.AckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ack))
	assert.NotEmpty(t, ack.Message)
}

func TestForgetPassword_HTTP_UnknownEmail(t *testing.T) {
	accounts := &mockAccountService{
		requestPasswordResetFn: func(ctx context.Context, email string) error {
			return store.ErrNoAccountWasFound
		},
	}
	router := newHandlerWithAccounts(t, accounts)

	body := jsonBody(t, models.ForgetPasswordRequest{Email: "missing@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/forgetpassword", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResetPassword_HTTP(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "success", serviceErr: nil, wantStatus: http.StatusOK},
		{name: "confirmation mismatch", serviceErr: service.ErrPasswordMismatch, wantStatus: http.StatusBadRequest},
		{name: "weak password", serviceErr: service.ErrWeakPassword, wantStatus: http.StatusBadRequest},
		{name: "consumed token", serviceErr: service.ErrInvalidActionToken, wantStatus: http.StatusBadRequest},
		{name: "unknown email", serviceErr: store.ErrNoAccountWasFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := &mockAccountService{
				resetPasswordFn: func(ctx context.Context, req models.ResetPasswordRequest) error {
					return tt.serviceErr
				},
			}
			router := newHandlerWithAccounts(t, accounts)

			body := jsonBody(t, models.ResetPasswordRequest{
				Email:           "john@example.com",
				Token:           "abc",
				Password:        "newpass",
				ConfirmPassword: "newpass",
			})
			req := httptest.NewRequest(http.MethodPost, "/resetpassword", strings.NewReader(body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
