package models

import "time"

// List represents a list row in the database. OwnerID is immutable after
// creation; UpdatedAt stays null until the first update.
type List struct {
	ID          int64      `db:"id" json:"id"`
	OwnerID     int64      `db:"owner_id" json:"owner_id"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at"`
}

// ListWithItems is a fully-materialized aggregate: the list plus all its
// items in insertion order.
type ListWithItems struct {
	List
	Items []Item `json:"items"`
}

// Item represents a list item row. IsCompleted is 0 or 1.
type Item struct {
	ID          int64      `db:"id" json:"id"`
	ListID      int64      `db:"list_id" json:"list_id"`
	Content     string     `db:"content" json:"content"`
	IsCompleted int        `db:"is_completed" json:"is_completed"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at"`
}

// CreateListRequest defines the body for creating a list.
type CreateListRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// UpdateListRequest defines the body for a partial list update. Only the
// provided fields change.
type UpdateListRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// CreateItemRequest defines the body for adding an item to a list.
type CreateItemRequest struct {
	Content     string `json:"content" binding:"required,min=1,max=500"`
	IsCompleted int    `json:"is_completed" binding:"omitempty,bit"`
}

// UpdateItemRequest defines the body for a partial item update.
type UpdateItemRequest struct {
	Content     *string `json:"content" binding:"omitempty,min=1,max=500"`
	IsCompleted *int    `json:"is_completed" binding:"omitempty,bit"`
}
