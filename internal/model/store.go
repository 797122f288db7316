package model

import "context"

// Store is the data-access handle handed to every operation.
// InTx runs fn against a transactional Store that is committed when fn
// returns nil and rolled back otherwise.
type Store interface {
	Users() UserStore
	Items() ItemStore
	InTx(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}
