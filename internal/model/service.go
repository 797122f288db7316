package model

import "context"

// AuthService resolves caller identity and performs login.
type AuthService interface {
	Resolve(ctx context.Context, header string) Auth
	Login(ctx context.Context, email, password string) (string, User, error)
}

// UserService performs user operations on behalf of a caller.
type UserService interface {
	Get(ctx context.Context, id int64) (User, error)
	List(ctx context.Context, filter UserFilter) ([]User, error)
	Create(ctx context.Context, params CreateUserParams) (User, error)
	Update(ctx context.Context, auth Auth, id int64, upd UserUpdate) (User, error)
	Delete(ctx context.Context, auth Auth, id int64) error
}

// ItemService performs item operations on behalf of a caller.
type ItemService interface {
	Get(ctx context.Context, id int64) (Item, error)
	List(ctx context.Context, filter ItemFilter) ([]Item, error)
	Create(ctx context.Context, auth Auth, params CreateItemParams) (Item, error)
	Update(ctx context.Context, auth Auth, id int64, upd ItemUpdate) (Item, error)
	Delete(ctx context.Context, auth Auth, id int64) error
}
