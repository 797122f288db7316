package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	List(ctx context.Context, filter UserFilter) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id int64) error
}

// User represents a stored user with its credential hash and role flags.
type User struct {
	ID             int64
	Name           string
	Email          string
	HashedPassword string
	IsActive       bool
	IsSuperuser    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserFilter narrows user listings. Zero values match everything.
type UserFilter struct {
	NameLike string
	Email    string
}

// CreateUserParams contains parameters to register a user.
type CreateUserParams struct {
	Email    string
	Name     string
	Password string
}

// UserUpdate lists the fields of a partial user update. Nil fields are left untouched.
type UserUpdate struct {
	Name        *string
	Password    *string
	IsActive    *bool
	IsSuperuser *bool
}
