package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/helix90/list-handler/internal/api/models"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	CreateUser(ctx context.Context, username, email, hashedPassword string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type sqliteUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new SQLite-based UserRepository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

// CreateUser inserts a new user. The password must already be hashed; this
// layer never sees plaintext.
func (r *sqliteUserRepository) CreateUser(ctx context.Context, username, email, hashedPassword string) (*models.User, error) {
	query := `INSERT INTO users (username, email, hashed_password, is_active) VALUES (?, ?, ?, 1)`
	res, err := r.db.ExecContext(ctx, query, username, email, hashedPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new user id: %w", err)
	}
	return &models.User{
		ID:             id,
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
		IsActive:       true,
	}, nil
}

// GetUserByUsername retrieves a user by username. A missing user is not an
// application error; it returns (nil, nil).
func (r *sqliteUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	query := `SELECT id, username, email, hashed_password, is_active FROM users WHERE username = ?`
	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email, returning (nil, nil) when absent.
func (r *sqliteUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := `SELECT id, username, email, hashed_password, is_active FROM users WHERE email = ?`
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}
