package http

import (
	"encoding/json"
	"net/http"

	"github.com/useraccounts/go-user-accounts/internal/logger"
	"github.com/useraccounts/go-user-accounts/internal/utils"
	"github.com/useraccounts/go-user-accounts/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.AccountService.Register(ctx, req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("account registration failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Str("username", account.Username).Msg("account registered, confirmation email queued")

	utils.WriteJSON(w, account, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AccountService.Login(ctx, req.Username, req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("login failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Int64("id", token.AccountID).Msg("account successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) confirmEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ConfirmEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.ConfirmEmail(ctx, req.Email, req.Token); err != nil {
		log.Err(err).Str("email", req.Email).Msg("email confirmation failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.AckResponse{Message: "email confirmed"}, http.StatusOK)
}
