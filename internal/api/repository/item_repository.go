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

// ItemRepository defines the interface for item persistence. Ownership of
// the parent list is checked inside every query; a missing item and an
// item behind someone else's list are both apperrors.ErrNotFound.
type ItemRepository interface {
	ListItems(ctx context.Context, ownerID, listID int64) ([]models.Item, error)
	AddItem(ctx context.Context, ownerID, listID int64, content string, isCompleted int) (*models.Item, error)
	UpdateItem(ctx context.Context, ownerID, listID, itemID int64, content *string, isCompleted *int) (*models.Item, error)
	DeleteItem(ctx context.Context, ownerID, listID, itemID int64) error
	ToggleItem(ctx context.Context, ownerID, listID, itemID int64) (*models.Item, error)
}

type sqliteItemRepository struct {
	db *sqlx.DB
}

// NewItemRepository creates a new SQLite-based ItemRepository.
func NewItemRepository(db *sqlx.DB) ItemRepository {
	return &sqliteItemRepository{db: db}
}

// ownedList matches a list id only when the given owner holds it.
const ownedList = `SELECT id FROM lists WHERE id = ? AND owner_id = ?`

func (r *sqliteItemRepository) listOwned(ctx context.Context, q sqlx.QueryerContext, ownerID, listID int64) error {
	var id int64
	err := sqlx.GetContext(ctx, q, &id, ownedList, listID, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check list ownership: %w", err)
	}
	return nil
}

func (r *sqliteItemRepository) ListItems(ctx context.Context, ownerID, listID int64) ([]models.Item, error) {
	if err := r.listOwned(ctx, r.db, ownerID, listID); err != nil {
		return nil, err
	}
	items := []models.Item{}
	query := `SELECT id, list_id, content, is_completed, created_at, updated_at
	          FROM list_items WHERE list_id = ? ORDER BY id`
	if err := r.db.SelectContext(ctx, &items, query, listID); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (r *sqliteItemRepository) AddItem(ctx context.Context, ownerID, listID int64, content string, isCompleted int) (*models.Item, error) {
	if err := r.listOwned(ctx, r.db, ownerID, listID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	query := `INSERT INTO list_items (list_id, content, is_completed, created_at, updated_at)
	          VALUES (?, ?, ?, ?, NULL)`
	res, err := r.db.ExecContext(ctx, query, listID, content, isCompleted, now)
	if err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new item id: %w", err)
	}
	return &models.Item{
		ID:          id,
		ListID:      listID,
		Content:     content,
		IsCompleted: isCompleted,
		CreatedAt:   now,
	}, nil
}

// UpdateItem applies a partial update inside a single statement; the
// ownership subquery keeps the check and the write atomic.
func (r *sqliteItemRepository) UpdateItem(ctx context.Context, ownerID, listID, itemID int64, content *string, isCompleted *int) (*models.Item, error) {
	now := time.Now().UTC()
	query := `UPDATE list_items
	          SET content = COALESCE(?, content),
	              is_completed = COALESCE(?, is_completed),
	              updated_at = ?
	          WHERE id = ? AND list_id = (` + ownedList + `)`
	res, err := r.db.ExecContext(ctx, query, content, isCompleted, now, itemID, listID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check item update: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.getItem(ctx, listID, itemID)
}

func (r *sqliteItemRepository) DeleteItem(ctx context.Context, ownerID, listID, itemID int64) error {
	query := `DELETE FROM list_items
	          WHERE id = ? AND list_id = (` + ownedList + `)`
	res, err := r.db.ExecContext(ctx, query, itemID, listID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check item delete: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ToggleItem flips is_completed in one atomic conditional update. Two
// concurrent toggles serialize at the store; neither read-modify-write
// spans statements, so no toggle can be lost.
func (r *sqliteItemRepository) ToggleItem(ctx context.Context, ownerID, listID, itemID int64) (*models.Item, error) {
	now := time.Now().UTC()
	query := `UPDATE list_items
	          SET is_completed = 1 - is_completed,
	              updated_at = ?
	          WHERE id = ? AND list_id = (` + ownedList + `)`
	res, err := r.db.ExecContext(ctx, query, now, itemID, listID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check item toggle: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.ErrNotFound
	}
	return r.getItem(ctx, listID, itemID)
}

func (r *sqliteItemRepository) getItem(ctx context.Context, listID, itemID int64) (*models.Item, error) {
	var item models.Item
	query := `SELECT id, list_id, content, is_completed, created_at, updated_at
	          FROM list_items WHERE id = ? AND list_id = ?`
	err := r.db.GetContext(ctx, &item, query, itemID, listID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return &item, nil
}
