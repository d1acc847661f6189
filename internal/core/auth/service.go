// Package auth
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"brainsimp-server/internal/domain"
	"brainsimp-server/internal/logger"
	"brainsimp-server/pkg/token"
)

const hashCost = 10

type service struct {
	repo        domain.UserRepository
	log         logger.Logger
	jwtSecret   string
	tokenExpiry time.Duration
}

func NewService(repo domain.UserRepository, log logger.Logger, secret string, expiry time.Duration) domain.AuthService {
	return &service{
		repo:        repo,
		log:         log,
		jwtSecret:   secret,
		tokenExpiry: expiry,
	}
}

func (s *service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResult, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, domain.NewValidationError("Username, email and password required")
	}
	if len(req.Password) < 8 {
		return nil, domain.NewValidationError("Password must be at least 8 characters")
	}

	taken, err := s.repo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if taken {
		return nil, domain.ErrDuplicateUser
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Level:        1,
	}

	// The pre-check above races against concurrent registrations; the unique
	// constraints on users(username) and users(email) are the authority.
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	signed, err := token.Generate(user.UserID, user.Username, user.Level, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		return nil, err
	}

	return &domain.RegisterResult{
		UserID:   user.UserID,
		Username: user.Username,
		Token:    signed,
	}, nil
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, domain.NewValidationError("Email and password required")
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Best effort. Losing the audit timestamp must not fail the login.
	if err := s.repo.UpdateLastLogin(ctx, user.UserID, time.Now().UTC()); err != nil {
		s.log.Error("auth: failed to update last_login", "user_id", user.UserID, "error", err)
	}

	signed, err := token.Generate(user.UserID, user.Username, user.Level, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		return nil, err
	}

	res := &domain.LoginResult{
		UserID:       user.UserID,
		Username:     user.Username,
		Level:        user.Level,
		Token:        signed,
		Theme:        domain.DefaultTheme,
		SoundEnabled: domain.DefaultSoundEnabled,
	}

	if user.Theme != nil {
		res.Theme = *user.Theme
	}
	if user.SoundEnabled != nil {
		res.SoundEnabled = *user.SoundEnabled
	}

	return res, nil
}

func (s *service) UpdatePreferences(ctx context.Context, userID int64, req domain.PreferencesRequest) error {
	if req.Theme != "light" && req.Theme != "dark" {
		return domain.NewValidationError("Theme must be light or dark")
	}
	if req.SoundEnabled == nil {
		return domain.NewValidationError("Sound preference required")
	}

	return s.repo.UpdatePreferences(ctx, userID, req.Theme, *req.SoundEnabled)
}
