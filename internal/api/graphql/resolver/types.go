package resolver

import (
	"context"
	"errors"

	"github.com/graph-gophers/graphql-go"

	"github.com/dtroode/itemgraph/internal/model"
	"github.com/dtroode/itemgraph/internal/policy"
)

type userResolver struct {
	root *Resolver
	auth model.Auth
	view policy.UserView
}

func (u *userResolver) ID() graphql.ID          { return toID(u.view.ID) }
func (u *userResolver) Name() *string           { return u.view.Name }
func (u *userResolver) Email() *string          { return u.view.Email }
func (u *userResolver) HashedPassword() *string { return u.view.HashedPassword }
func (u *userResolver) IsActive() *bool         { return u.view.IsActive }
func (u *userResolver) IsSuperuser() *bool      { return u.view.IsSuperuser }

func (u *userResolver) Items(ctx context.Context, args struct{ Filter *itemFilterInput }) (*[]*itemResolver, error) {
	if !u.root.policy.Visible(u.auth, policy.KindItem, policy.FieldItemOwner) {
		return nil, nil
	}

	filter, err := u.root.itemFilter(u.auth, args.Filter)
	if err != nil {
		return nil, err
	}
	filter.OwnerID = u.view.ID

	items, err := u.root.itemService.List(ctx, filter)
	if err != nil {
		return nil, u.root.publicError("User.items", err)
	}

	out := u.root.newItems(u.auth, items)
	return &out, nil
}

type itemResolver struct {
	root *Resolver
	auth model.Auth
	view policy.ItemView
}

func (i *itemResolver) ID() graphql.ID       { return toID(i.view.ID) }
func (i *itemResolver) Title() *string       { return i.view.Title }
func (i *itemResolver) Description() *string { return i.view.Description }

func (i *itemResolver) PostedOn() *Date {
	if i.view.PostedOn == nil {
		return nil
	}
	return &Date{Time: *i.view.PostedOn}
}

func (i *itemResolver) Owner(ctx context.Context) (*userResolver, error) {
	if i.view.OwnerID == nil {
		return nil, nil
	}

	user, err := i.root.userService.Get(ctx, *i.view.OwnerID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		return nil, i.root.publicError("Item.owner", err)
	}

	return i.root.newUser(i.auth, user), nil
}

type userFilterInput struct {
	NameLike *string
	Email    *string
}

type itemFilterInput struct {
	TitleLike       *string
	DescriptionLike *string
}

// userFilter converts in, refusing filters on fields the caller may not see.
func (r *Resolver) userFilter(auth model.Auth, in *userFilterInput) (model.UserFilter, error) {
	var f model.UserFilter
	if in == nil {
		return f, nil
	}
	if in.NameLike != nil {
		if !r.policy.Visible(auth, policy.KindUser, policy.FieldUserName) {
			return f, model.ErrForbidden
		}
		f.NameLike = *in.NameLike
	}
	if in.Email != nil {
		if !r.policy.Visible(auth, policy.KindUser, policy.FieldUserEmail) {
			return f, model.ErrForbidden
		}
		f.Email = *in.Email
	}
	return f, nil
}

func (r *Resolver) itemFilter(auth model.Auth, in *itemFilterInput) (model.ItemFilter, error) {
	var f model.ItemFilter
	if in == nil {
		return f, nil
	}
	if in.TitleLike != nil {
		if !r.policy.Visible(auth, policy.KindItem, policy.FieldItemTitle) {
			return f, model.ErrForbidden
		}
		f.TitleLike = *in.TitleLike
	}
	if in.DescriptionLike != nil {
		if !r.policy.Visible(auth, policy.KindItem, policy.FieldItemDescription) {
			return f, model.ErrForbidden
		}
		f.DescriptionLike = *in.DescriptionLike
	}
	return f, nil
}
