// Package domain
package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateUser    = errors.New("username or email already taken")
	ErrStoreUnavailable = errors.New("credential store unavailable")
)

// Preference defaults applied when the stored value is NULL.
const (
	DefaultTheme        = "light"
	DefaultSoundEnabled = true
)

type User struct {
	UserID       int64      `json:"user_id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Level        int        `json:"level"`
	LastLogin    *time.Time `json:"last_login"`
	Theme        *string    `json:"theme"`
	SoundEnabled *bool      `json:"sound_enabled"`
	CreatedAt    time.Time  `json:"created_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
	UpdatePreferences(ctx context.Context, userID int64, theme string, soundEnabled bool) error
}
