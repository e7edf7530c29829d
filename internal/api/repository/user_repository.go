package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"ctchen222/Movie-Catalog/internal/api/models"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("repository")

var (
	// ErrDuplicateUsername is returned when an insert hits the users.username
	// UNIQUE constraint. The constraint, not the application pre-check, is the
	// final arbiter for concurrent signups.
	ErrDuplicateUsername = errors.New("username already registered")
	// ErrDuplicateEmail is returned when an insert hits the users.email
	// UNIQUE constraint.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type sqliteUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new SQLite-based UserRepository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

// Create inserts a new user and fills in its generated ID.
func (r *sqliteUserRepository) Create(ctx context.Context, user *models.User) error {
	ctx, span := tracer.Start(ctx, "UserRepository.Create")
	defer span.End()

	query := `INSERT INTO users (username, email, hashed_password) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, user.Username, user.Email, user.HashedPassword)
	if err != nil {
		if constraintErr := translateConstraint(err); constraintErr != nil {
			return constraintErr
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new user id: %w", err)
	}
	user.ID = id
	return nil
}

// GetByUsername retrieves a user by their unique username. A missing user is
// a normal outcome and returns (nil, nil), not an error.
func (r *sqliteUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.GetByUsername")
	defer span.End()

	var user models.User
	query := `SELECT id, username, email, hashed_password FROM users WHERE username = ?`
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

// translateConstraint maps SQLite UNIQUE violations on the users table to
// their domain errors. Returns nil for anything else.
func translateConstraint(err error) error {
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return nil
	}
	switch {
	case strings.Contains(msg, "users.username"):
		return ErrDuplicateUsername
	case strings.Contains(msg, "users.email"):
		return ErrDuplicateEmail
	}
	return nil
}
