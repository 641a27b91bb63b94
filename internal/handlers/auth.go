package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"aggregator/internal/auth"
	"aggregator/internal/middleware"
	"aggregator/internal/models"
	"aggregator/internal/services"
)

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (h *Handler) issueToken(w http.ResponseWriter, status int, user models.User) {
	token, err := auth.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenTTL)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respondJSON(w, status, authResponse{Token: token, User: user})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	input, err := req.toService(time.Now())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, err := h.profiles.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrMobileTaken) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "registration failed")
		return
	}
	h.issueToken(w, http.StatusCreated, user)
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Mobile     string `json:"mobile"`
	AAHandle   string `json:"aa_handle"`
	PIN        string `json:"pin"`
}

func (req loginRequest) identifier() string {
	switch {
	case req.Identifier != "":
		return req.Identifier
	case req.AAHandle != "":
		return req.AAHandle
	default:
		return req.Mobile
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	identifier := req.identifier()
	if identifier == "" || req.PIN == "" {
		respondError(w, http.StatusBadRequest, "identifier and pin are required")
		return
	}
	user, err := h.profiles.Login(r.Context(), identifier, req.PIN)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}
	h.issueToken(w, http.StatusOK, user)
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	user, err := h.profiles.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to load user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *Handler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var form profileForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	update, err := form.toUpdate(time.Now())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	user, provisioned, err := h.profiles.SubmitForm(r.Context(), userID, update)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to save profile")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"user":        user,
		"provisioned": provisioned,
	})
}
