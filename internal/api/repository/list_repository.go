package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/helix90/list-handler/internal/api/apperrors"
	"github.com/helix90/list-handler/internal/api/models"
)

// ListRepository defines the interface for list persistence. Every
// operation is scoped to an owner: a list that does not exist and a list
// owned by someone else both surface as apperrors.ErrNotFound.
type ListRepository interface {
	CreateList(ctx context.Context, ownerID int64, name string, description *string) (*models.List, error)
	ListLists(ctx context.Context, ownerID int64) ([]models.List, error)
	GetList(ctx context.Context, ownerID, listID int64) (*models.ListWithItems, error)
	UpdateList(ctx context.Context, ownerID, listID int64, name, description *string) (*models.List, error)
	DeleteList(ctx context.Context, ownerID, listID int64) error
}

type sqliteListRepository struct {
	db *sqlx.DB
}

// NewListRepository creates a new SQLite-based ListRepository.
func NewListRepository(db *sqlx.DB) ListRepository {
	return &sqliteListRepository{db: db}
}

func (r *sqliteListRepository) CreateList(ctx context.Context, ownerID int64, name string, description *string) (*models.List, error) {
	now := time.Now().UTC()
	query := `INSERT INTO lists (owner_id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, NULL)`
	res, err := r.db.ExecContext(ctx, query, ownerID, name, description, now)
	if err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new list id: %w", err)
	}
	return &models.List{
		ID:          id,
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
	}, nil
}

func (r *sqliteListRepository) ListLists(ctx context.Context, ownerID int64) ([]models.List, error) {
	lists := []models.List{}
	query := `SELECT id, owner_id, name, description, created_at, updated_at
	          FROM lists WHERE owner_id = ? ORDER BY id`
	if err := r.db.SelectContext(ctx, &lists, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	return lists, nil
}

// GetList returns the list with all its items materialized, in insertion
// order.
func (r *sqliteListRepository) GetList(ctx context.Context, ownerID, listID int64) (*models.ListWithItems, error) {
	var list models.List
	query := `SELECT id, owner_id, name, description, created_at, updated_at
	          FROM lists WHERE id = ? AND owner_id = ?`
	err := r.db.GetContext(ctx, &list, query, listID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get list: %w", err)
	}

	items := []models.Item{}
	itemQuery := `SELECT id, list_id, content, is_completed, created_at, updated_at
	              FROM list_items WHERE list_id = ? ORDER BY id`
	if err := r.db.SelectContext(ctx, &items, itemQuery, listID); err != nil {
		return nil, fmt.Errorf("failed to get list items: %w", err)
	}

	return &models.ListWithItems{List: list, Items: items}, nil
}

// UpdateList applies a partial update. Absent fields keep their current
// value; updated_at is always set.
func (r *sqliteListRepository) UpdateList(ctx context.Context, ownerID, listID int64, name, description *string) (*models.List, error) {
	now := time.Now().UTC()
	query := `UPDATE lists
	          SET name = COALESCE(?, name),
	              description = COALESCE(?, description),
	              updated_at = ?
	          WHERE id = ? AND owner_id = ?`
	res, err := r.db.ExecContext(ctx, query, name, description, now, listID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to update list: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check list update: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.ErrNotFound
	}

	var list models.List
	getQuery := `SELECT id, owner_id, name, description, created_at, updated_at
	             FROM lists WHERE id = ? AND owner_id = ?`
	if err := r.db.GetContext(ctx, &list, getQuery, listID, ownerID); err != nil {
		return nil, fmt.Errorf("failed to reload list: %w", err)
	}
	return &list, nil
}

// DeleteList removes the list and all its items in one transaction.
// Deleting an absent (or foreign) list fails with ErrNotFound, so repeated
// deletes always report the same way.
func (r *sqliteListRepository) DeleteList(ctx context.Context, ownerID, listID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM lists WHERE id = ? AND owner_id = ?`, listID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check list delete: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}

	// The FK cascade covers this, but the invariant that no item may
	// reference a missing list is enforced here rather than assumed.
	if _, err := tx.ExecContext(ctx, `DELETE FROM list_items WHERE list_id = ?`, listID); err != nil {
		return fmt.Errorf("failed to delete list items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit list delete: %w", err)
	}
	return nil
}
