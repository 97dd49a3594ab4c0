package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/socialpulse/socialpulse/internal/logger"
	"github.com/socialpulse/socialpulse/internal/utils"
	"github.com/socialpulse/socialpulse/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user registration failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Message: "User registered successfully",
		UserID:  registeredUser.ID,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user login failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Token: token.SignedString,
		User:  user,
	}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]any{
		"status":    "healthy",
		"version":   h.version,
		"timestamp": time.Now(),
	}, http.StatusOK)
}
