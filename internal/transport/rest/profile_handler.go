package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"brainsimp-server/internal/domain"
	"brainsimp-server/internal/logger"
	"brainsimp-server/internal/transport/rest/middleware"
)

type ProfileHandler struct {
	svc domain.AuthService
	log logger.Logger
}

func NewProfileHandler(svc domain.AuthService, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: log}
}

type profileUser struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Level    int    `json:"level"`
}

type profileResponse struct {
	Message string      `json:"message"`
	User    profileUser `json:"user"`
}

func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		JSONError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{
		Message: "Authenticated",
		User: profileUser{
			UserID:   claims.UserID,
			Username: claims.Username,
			Level:    claims.Level,
		},
	})
}

func (h *ProfileHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		JSONError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	var req domain.PreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONValidationError(w, validationErrors)
		return
	}

	if err := h.svc.UpdatePreferences(r.Context(), claims.UserID, req); err != nil {
		var vErr *domain.ValidationError

		switch {
		case errors.As(err, &vErr):
			JSONError(w, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, domain.ErrUserNotFound):
			JSONError(w, http.StatusUnauthorized, "Invalid or expired token")
		case errors.Is(err, domain.ErrStoreUnavailable):
			h.log.Warn("rest: store unavailable", "op", "preferences", "error", err)
			JSONError(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
		default:
			h.log.Error("rest: unexpected error", "op", "preferences", "error", err)
			JSONError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Preferences updated"})
}
