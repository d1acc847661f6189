package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"brainsimp-server/internal/domain"
)

const uniqueViolation = "23505"

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, level, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id
	`

	now := time.Now().UTC()

	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Level,
		now,
	).Scan(&user.UserID)
	if err != nil {
		return translateErr("insert user", err)
	}

	user.CreatedAt = now
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT
			user_id,
			username,
			email,
			password_hash,
			level,
			last_login,
			theme,
			sound_enabled,
			created_at
		FROM users
		WHERE email = $1
	`

	var user domain.User

	if err := r.db.QueryRow(ctx, query, email).Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Level,
		&user.LastLogin,
		&user.Theme,
		&user.SoundEnabled,
		&user.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, translateErr("query user by email", err)
	}

	return &user, nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, username, email).Scan(&exists); err != nil {
		return false, translateErr("check user existence", err)
	}

	return exists, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	query := `UPDATE users SET last_login = $1 WHERE user_id = $2`

	ct, err := r.db.Exec(ctx, query, at, userID)
	if err != nil {
		return translateErr("update last_login", err)
	}

	if ct.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) UpdatePreferences(ctx context.Context, userID int64, theme string, soundEnabled bool) error {
	query := `UPDATE users SET theme = $1, sound_enabled = $2 WHERE user_id = $3`

	ct, err := r.db.Exec(ctx, query, theme, soundEnabled, userID)
	if err != nil {
		return translateErr("update preferences", err)
	}

	if ct.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// translateErr maps store-level failures onto the domain taxonomy. Unique
// violations become the conflict error (the constraints back up the racy
// pre-insert check), timeouts and dead connections become the retryable
// unavailability error.
func translateErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrDuplicateUser
	}

	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
	}

	return fmt.Errorf("failed to %s: %w", op, err)
}
