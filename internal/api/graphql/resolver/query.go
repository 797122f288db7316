package resolver

import (
	"context"
	"errors"

	"github.com/graph-gophers/graphql-go"

	"github.com/dtroode/itemgraph/internal/model"
)

// Me returns the caller, or null when anonymous.
func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	auth := r.auth(ctx)
	if !auth.Authenticated {
		return nil, nil
	}

	user, err := r.userService.Get(ctx, auth.UserID())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		return nil, r.publicError("me", err)
	}

	return r.newUser(auth, user), nil
}

func (r *Resolver) Users(ctx context.Context, args struct{ Filter *userFilterInput }) ([]*userResolver, error) {
	auth := r.auth(ctx)

	filter, err := r.userFilter(auth, args.Filter)
	if err != nil {
		return nil, err
	}

	users, err := r.userService.List(ctx, filter)
	if err != nil {
		return nil, r.publicError("users", err)
	}

	return r.newUsers(auth, users), nil
}

func (r *Resolver) User(ctx context.Context, args struct{ ID graphql.ID }) (*userResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	user, err := r.userService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		return nil, r.publicError("user", err)
	}

	return r.newUser(r.auth(ctx), user), nil
}

func (r *Resolver) Items(ctx context.Context, args struct{ Filter *itemFilterInput }) ([]*itemResolver, error) {
	auth := r.auth(ctx)

	filter, err := r.itemFilter(auth, args.Filter)
	if err != nil {
		return nil, err
	}

	items, err := r.itemService.List(ctx, filter)
	if err != nil {
		return nil, r.publicError("items", err)
	}

	return r.newItems(auth, items), nil
}

func (r *Resolver) Item(ctx context.Context, args struct{ ID graphql.ID }) (*itemResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	item, err := r.itemService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		return nil, r.publicError("item", err)
	}

	return r.newItem(r.auth(ctx), item), nil
}
