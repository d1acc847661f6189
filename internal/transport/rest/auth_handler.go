package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"brainsimp-server/internal/domain"
	"brainsimp-server/internal/logger"
)

type AuthHandler struct {
	svc domain.AuthService
	log logger.Logger
}

func NewAuthHandler(svc domain.AuthService, log logger.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: log}
}

type registerResponse struct {
	Message  string `json:"message"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type loginResponse struct {
	Message      string `json:"message"`
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	Level        int    `json:"level"`
	Token        string `json:"token"`
	Theme        string `json:"theme"`
	SoundEnabled bool   `json:"sound_enabled"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONValidationError(w, validationErrors)
		return
	}

	res, err := h.svc.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, "register", err)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		Message:  "User registered successfully",
		UserID:   res.UserID,
		Username: res.Username,
		Token:    res.Token,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONValidationError(w, validationErrors)
		return
	}

	res, err := h.svc.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, "login", err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message:      "Login successful",
		UserID:       res.UserID,
		Username:     res.Username,
		Level:        res.Level,
		Token:        res.Token,
		Theme:        res.Theme,
		SoundEnabled: res.SoundEnabled,
	})
}

// writeError maps domain errors onto the HTTP contract. Internal detail never
// reaches the response body, only the log.
func (h *AuthHandler) writeError(w http.ResponseWriter, op string, err error) {
	var vErr *domain.ValidationError

	switch {
	case errors.As(err, &vErr):
		JSONError(w, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, domain.ErrDuplicateUser):
		JSONError(w, http.StatusConflict, "Username or email already taken")
	case errors.Is(err, domain.ErrInvalidCredentials):
		JSONError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrStoreUnavailable):
		h.log.Warn("rest: store unavailable", "op", op, "error", err)
		JSONError(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
	default:
		h.log.Error("rest: unexpected error", "op", op, "error", err)
		JSONError(w, http.StatusInternalServerError, "Something went wrong")
	}
}
