package model

import (
	"context"
	"time"
)

// ItemStore defines persistence operations for items.
type ItemStore interface {
	GetByID(ctx context.Context, id int64) (Item, error)
	List(ctx context.Context, filter ItemFilter) ([]Item, error)
	Create(ctx context.Context, item Item) (Item, error)
	Update(ctx context.Context, item Item) (Item, error)
	Delete(ctx context.Context, id int64) error
}

// Item represents a stored item owned by a user.
type Item struct {
	ID          int64
	Title       *string
	Description *string
	PostedOn    time.Time
	OwnerID     int64
}

// ItemFilter narrows item listings. Zero values match everything.
type ItemFilter struct {
	TitleLike       string
	DescriptionLike string
	OwnerID         int64
}

// CreateItemParams contains parameters to create an item.
// OwnerID defaults to the caller when zero.
type CreateItemParams struct {
	OwnerID     int64
	Title       *string
	Description *string
	PostedOn    *time.Time
}

// ItemUpdate lists the fields of a partial item update. Nil fields are left untouched.
type ItemUpdate struct {
	Title       *string
	Description *string
	PostedOn    *time.Time
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
