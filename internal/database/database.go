package database

import (
	"context"
	"fmt"
	"time"

	"supafix/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Database is a direct connection to the Supabase project's Postgres
// instance, used when the auth admin API is not an option.
type Database struct {
	Pool *pgxpool.Pool
}

func NewConnection(ctx context.Context, cfg *config.Config) (*Database, error) {
	pool, err := pgxpool.New(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	return &Database{Pool: pool}, nil
}

func (db *Database) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

type AuthUser struct {
	ID               string
	Email            string
	EmailConfirmedAt *time.Time
}

func (u *AuthUser) Confirmed() bool {
	return u.EmailConfirmedAt != nil
}

// ListAuthUsers reads user records straight from the auth schema.
func (db *Database) ListAuthUsers(ctx context.Context) ([]AuthUser, error) {
	rows, err := db.Pool.Query(ctx,
		"SELECT id, COALESCE(email, ''), email_confirmed_at FROM auth.users ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to query auth.users: %w", err)
	}
	defer rows.Close()

	var users []AuthUser
	for rows.Next() {
		var u AuthUser
		if err := rows.Scan(&u.ID, &u.Email, &u.EmailConfirmedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// SetUserPassword writes a bcrypt hash of the new password directly into
// auth.users, the same hashing GoTrue itself applies on the API path.
// Returns the number of rows updated; zero means no user has that email.
func (db *Database) SetUserPassword(ctx context.Context, email, newPassword string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	tag, err := db.Pool.Exec(ctx,
		"UPDATE auth.users SET encrypted_password = $1, updated_at = now() WHERE email = $2",
		string(hash), email)
	if err != nil {
		return 0, fmt.Errorf("failed to update password: %w", err)
	}

	return tag.RowsAffected(), nil
}
