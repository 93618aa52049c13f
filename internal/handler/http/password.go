package http

import (
	"encoding/json"
	"net/http"

	"github.com/useraccounts/go-user-accounts/internal/logger"
	"github.com/useraccounts/go-user-accounts/internal/utils"
	"github.com/useraccounts/go-user-accounts/models"
)

func (h *Handler) forgetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ForgetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.RequestPasswordReset(ctx, req.Email); err != nil {
		log.Err(err).Str("email", req.Email).Msg("password reset request failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.AckResponse{Message: "password reset email sent"}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.ResetPassword(ctx, req); err != nil {
		log.Err(err).Str("email", req.Email).Msg("password reset failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.AckResponse{Message: "password has been reset"}, http.StatusOK)
}
