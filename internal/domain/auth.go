package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
)

// ValidationError carries a client-fixable input problem. The message is safe
// to return to the caller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type PreferencesRequest struct {
	Theme        string `json:"theme" validate:"required,oneof=light dark"`
	SoundEnabled *bool  `json:"sound_enabled" validate:"required"`
}

type RegisterResult struct {
	UserID   int64
	Username string
	Token    string
}

type LoginResult struct {
	UserID       int64
	Username     string
	Level        int
	Token        string
	Theme        string
	SoundEnabled bool
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	UpdatePreferences(ctx context.Context, userID int64, req PreferencesRequest) error
}
