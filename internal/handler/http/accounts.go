package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/elisee/account-service/internal/logger"
	"github.com/elisee/account-service/internal/service"
	"github.com/elisee/account-service/internal/utils"
	"github.com/elisee/account-service/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.AccountService.Register(ctx, req.Email, req.Password)
	if err != nil {
		log.Err(err).Msg("registration ended with error")
		writeErrorMessage(w, err)
		return
	}

	log.Info().Int64("id", account.ID).Str("email", account.Email).Msg("account registered")

	writeMessage(w, "registration successful, check your email for a confirmation link", http.StatusOK)
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token := r.URL.Query().Get("token")

	account, err := h.services.AccountService.Confirm(ctx, token)
	if err != nil {
		log.Err(err).Msg("confirmation ended with error")
		writeErrorMessage(w, err)
		return
	}

	log.Info().Int64("id", account.ID).Msg("account confirmed")

	writeMessage(w, "account confirmed, you can now log in", http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.AccountService.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Err(err).Msg("login ended with error")
		// an unknown email answers exactly like a wrong password so the
		// endpoint cannot be used to probe which addresses are registered
		if errors.Is(err, service.ErrAccountNotFound) {
			writeMessage(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		}
		writeErrorMessage(w, err)
		return
	}

	log.Info().Int64("id", account.ID).Msg("successful login")

	utils.WriteJSON(w, models.LoginResponse{Message: "login successful", Email: account.Email}, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.ForgotPassword(ctx, req.Email); err != nil {
		log.Err(err).Msg("password reset request ended with error")
		writeErrorMessage(w, err)
		return
	}

	writeMessage(w, "password reset email sent", http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeMessage(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	account, err := h.services.AccountService.ResetPassword(ctx, req.Token, req.NewPassword)
	if err != nil {
		log.Err(err).Msg("password reset ended with error")
		writeErrorMessage(w, err)
		return
	}

	log.Info().Int64("id", account.ID).Msg("password reset")

	writeMessage(w, "password has been reset, you can now log in", http.StatusOK)
}

func writeMessage(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}

// writeErrorMessage maps a service error to its HTTP status. Internal
// failures are masked with a generic message so database details never
// leak to clients.
func writeErrorMessage(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	writeMessage(w, message, status)
}
