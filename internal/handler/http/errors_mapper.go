package http

import (
	"errors"
	"net/http"

	"github.com/useraccounts/go-user-accounts/internal/service"
	"github.com/useraccounts/go-user-accounts/internal/store"
	"github.com/useraccounts/go-user-accounts/internal/tokens"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWeakPassword:            http.StatusBadRequest,
	service.ErrPasswordMismatch:        http.StatusBadRequest,
	service.ErrInvalidActionToken:      http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusNotFound,
	service.ErrAccountNotConfirmed:     http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	tokens.ErrMalformedToken: http.StatusBadRequest,

	store.ErrUsernameOrEmailTaken: http.StatusBadRequest,
	store.ErrNoAccountWasFound:    http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
