package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when inserting a user whose email already exists.
	ErrEmailTaken = errors.New("email already registered")
)

// UserStore persists users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, user *User) error
}

// PgUserStore is the PostgreSQL UserStore.
type PgUserStore struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

// NewPgUserStore creates a UserStore backed by pool.
func NewPgUserStore(pool *pgxpool.Pool, log *zap.Logger) *PgUserStore {
	return &PgUserStore{db: pool, log: log}
}

// GetByEmail looks a user up by exact (already normalized) email.
func (s *PgUserStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	const query = `SELECT id, email, password, created_at FROM users WHERE email = $1`
	return s.getOne(ctx, query, email)
}

// GetByID looks a user up by primary key.
func (s *PgUserStore) GetByID(ctx context.Context, id int64) (*User, error) {
	const query = `SELECT id, email, password, created_at FROM users WHERE id = $1`
	return s.getOne(ctx, query, id)
}

func (s *PgUserStore) getOne(ctx context.Context, query string, arg interface{}) (*User, error) {
	var user User
	err := s.db.QueryRow(ctx, query, arg).Scan(&user.ID, &user.Email, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		s.log.Error("Failed to get user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// Create inserts user and fills in ID and CreatedAt.
func (s *PgUserStore) Create(ctx context.Context, user *User) error {
	const query = `INSERT INTO users (email, password)
	               VALUES ($1, $2)
	               RETURNING id, created_at`

	err := s.db.QueryRow(ctx, query, user.Email, user.HashedPassword).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrEmailTaken
		}
		s.log.Error("Failed to create user", zap.Error(err))
		return err
	}

	s.log.Info("User created", zap.Int64("user_id", user.ID))
	return nil
}
