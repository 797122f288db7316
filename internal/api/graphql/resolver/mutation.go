package resolver

import (
	"context"
	"errors"
	"time"

	"github.com/graph-gophers/graphql-go"

	"github.com/dtroode/itemgraph/internal/model"
)

type loginInput struct {
	Email    string
	Password string
}

type createUserInput struct {
	Email    string
	Name     *string
	Password string
}

type updateMeInput struct {
	Name     *string
	Password *string
	IsActive *bool
}

type updateUserInput struct {
	Name        *string
	Password    *string
	IsActive    *bool
	IsSuperuser *bool
}

type createItemInput struct {
	Title       *string
	Description *string
	PostedOn    *Date
	OwnerID     *graphql.ID
}

type updateItemInput struct {
	Title       *string
	Description *string
	PostedOn    *Date
}

func (r *Resolver) Login(ctx context.Context, args struct{ Input loginInput }) *loginPayload {
	token, user, err := r.authService.Login(ctx, args.Input.Email, args.Input.Password)
	if err != nil {
		if errors.Is(err, model.ErrAuthFailed) {
			r.observer.ObserveLogin("failure")
		} else {
			r.observer.ObserveLogin("error")
		}
		return &loginPayload{err: r.failureMessage("login", err)}
	}
	r.observer.ObserveLogin("success")

	// The token is not yet on the request, so the caller's own view uses the fresh identity.
	auth := model.Authenticated(user)
	return &loginPayload{
		status: true,
		token:  &token,
		me:     r.newUser(auth, user),
	}
}

func (r *Resolver) CreateUser(ctx context.Context, args struct{ Input createUserInput }) *userPayload {
	params := model.CreateUserParams{
		Email:    args.Input.Email,
		Password: args.Input.Password,
	}
	if args.Input.Name != nil {
		params.Name = *args.Input.Name
	}

	user, err := r.userService.Create(ctx, params)
	if err != nil {
		return &userPayload{err: r.failureMessage("createUser", err)}
	}

	return &userPayload{status: true, user: r.newUser(r.auth(ctx), user)}
}

func (r *Resolver) UpdateMe(ctx context.Context, args struct{ Input updateMeInput }) *userPayload {
	auth := r.auth(ctx)
	if !auth.Authenticated {
		return &userPayload{err: r.failureMessage("updateMe", model.ErrUnauthorized)}
	}

	user, err := r.userService.Update(ctx, auth, auth.UserID(), model.UserUpdate{
		Name:     args.Input.Name,
		Password: args.Input.Password,
		IsActive: args.Input.IsActive,
	})
	if err != nil {
		return &userPayload{err: r.failureMessage("updateMe", err)}
	}

	return &userPayload{status: true, user: r.newUser(auth, user)}
}

func (r *Resolver) UpdateUser(ctx context.Context, args struct {
	ID    graphql.ID
	Input updateUserInput
}) *userPayload {
	id, err := parseID(args.ID)
	if err != nil {
		return &userPayload{err: r.failureMessage("updateUser", err)}
	}

	auth := r.auth(ctx)
	user, err := r.userService.Update(ctx, auth, id, model.UserUpdate{
		Name:        args.Input.Name,
		Password:    args.Input.Password,
		IsActive:    args.Input.IsActive,
		IsSuperuser: args.Input.IsSuperuser,
	})
	if err != nil {
		return &userPayload{err: r.failureMessage("updateUser", err)}
	}

	return &userPayload{status: true, user: r.newUser(auth, user)}
}

func (r *Resolver) DeleteUser(ctx context.Context, args struct{ ID graphql.ID }) *deletePayload {
	id, err := parseID(args.ID)
	if err == nil {
		err = r.userService.Delete(ctx, r.auth(ctx), id)
	}
	if err != nil {
		return &deletePayload{err: r.failureMessage("deleteUser", err)}
	}
	return &deletePayload{status: true}
}

func (r *Resolver) CreateItem(ctx context.Context, args struct{ Input createItemInput }) *itemPayload {
	params := model.CreateItemParams{
		Title:       args.Input.Title,
		Description: args.Input.Description,
	}
	if args.Input.PostedOn != nil {
		postedOn := args.Input.PostedOn.Time
		params.PostedOn = &postedOn
	}
	if args.Input.OwnerID != nil {
		ownerID, err := parseID(*args.Input.OwnerID)
		if err != nil {
			return &itemPayload{err: r.failureMessage("createItem", err)}
		}
		params.OwnerID = ownerID
	}

	auth := r.auth(ctx)
	item, err := r.itemService.Create(ctx, auth, params)
	if err != nil {
		return &itemPayload{err: r.failureMessage("createItem", err)}
	}

	return &itemPayload{status: true, item: r.newItem(auth, item)}
}

func (r *Resolver) UpdateItem(ctx context.Context, args struct {
	ID    graphql.ID
	Input updateItemInput
}) *itemPayload {
	id, err := parseID(args.ID)
	if err != nil {
		return &itemPayload{err: r.failureMessage("updateItem", err)}
	}

	var postedOn *time.Time
	if args.Input.PostedOn != nil {
		postedOn = &args.Input.PostedOn.Time
	}

	auth := r.auth(ctx)
	item, err := r.itemService.Update(ctx, auth, id, model.ItemUpdate{
		Title:       args.Input.Title,
		Description: args.Input.Description,
		PostedOn:    postedOn,
	})
	if err != nil {
		return &itemPayload{err: r.failureMessage("updateItem", err)}
	}

	return &itemPayload{status: true, item: r.newItem(auth, item)}
}

func (r *Resolver) DeleteItem(ctx context.Context, args struct{ ID graphql.ID }) *deletePayload {
	id, err := parseID(args.ID)
	if err == nil {
		err = r.itemService.Delete(ctx, r.auth(ctx), id)
	}
	if err != nil {
		return &deletePayload{err: r.failureMessage("deleteItem", err)}
	}
	return &deletePayload{status: true}
}
