package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/itemgraph/internal/logger"
	"github.com/dtroode/itemgraph/internal/model"
)

var _ model.ItemService = (*Items)(nil)

type Items struct {
	store          model.Store
	logger         *logger.Logger
	clientPostedOn bool
	now            func() time.Time
}

// NewItems creates the item service. With clientPostedOn set, callers may
// choose the posted-on date; otherwise it is always the server date.
func NewItems(store model.Store, logger *logger.Logger, clientPostedOn bool) *Items {
	return &Items{
		store:          store,
		logger:         logger,
		clientPostedOn: clientPostedOn,
		now:            time.Now,
	}
}

func (s *Items) Get(ctx context.Context, id int64) (model.Item, error) {
	item, err := s.store.Items().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Item{}, itemNotFound(id)
		}
		s.logger.Error("Items service: failed to get item",
			"item_id", id,
			"error", err.Error())
		return model.Item{}, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

func (s *Items) List(ctx context.Context, filter model.ItemFilter) ([]model.Item, error) {
	items, err := s.store.Items().List(ctx, filter)
	if err != nil {
		s.logger.Error("Items service: failed to list items",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return items, nil
}

// Create stores a new item. The owner defaults to the caller; only superusers
// may create items for another user.
func (s *Items) Create(ctx context.Context, auth model.Auth, params model.CreateItemParams) (model.Item, error) {
	if !auth.Authenticated {
		return model.Item{}, model.ErrUnauthorized
	}

	ownerID := params.OwnerID
	if ownerID == 0 {
		ownerID = auth.UserID()
	}
	if ownerID != auth.UserID() && !auth.IsSuperuser() {
		return model.Item{}, model.ErrForbidden
	}

	postedOn := s.now()
	if s.clientPostedOn && params.PostedOn != nil {
		postedOn = *params.PostedOn
	}

	var created model.Item
	err := s.store.InTx(ctx, func(ctx context.Context, tx model.Store) error {
		if _, err := tx.Users().GetByID(ctx, ownerID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return fmt.Errorf("%w: owner with id %d", model.ErrNotFound, ownerID)
			}
			return fmt.Errorf("failed to get owner: %w", err)
		}

		var err error
		created, err = tx.Items().Create(ctx, model.Item{
			Title:       params.Title,
			Description: params.Description,
			PostedOn:    model.DateOnly(postedOn),
			OwnerID:     ownerID,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			s.logger.Error("Items service: failed to create item",
				"owner_id", ownerID,
				"error", err.Error())
		}
		return model.Item{}, err
	}

	s.logger.Info("Items service: item created",
		"item_id", created.ID,
		"owner_id", ownerID)

	return created, nil
}

// Update applies the supplied fields of upd to an item owned by the caller.
// An item owned by someone else is reported exactly like a missing one.
func (s *Items) Update(ctx context.Context, auth model.Auth, id int64, upd model.ItemUpdate) (model.Item, error) {
	if !auth.Authenticated {
		return model.Item{}, model.ErrUnauthorized
	}

	var updated model.Item
	err := s.store.InTx(ctx, func(ctx context.Context, tx model.Store) error {
		item, err := tx.Items().GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return itemNotFound(id)
			}
			return fmt.Errorf("failed to get item: %w", err)
		}
		if item.OwnerID != auth.UserID() {
			return itemNotFound(id)
		}

		if upd.Title != nil {
			item.Title = upd.Title
		}
		if upd.Description != nil {
			item.Description = upd.Description
		}
		if upd.PostedOn != nil && s.clientPostedOn {
			item.PostedOn = model.DateOnly(*upd.PostedOn)
		}

		updated, err = tx.Items().Update(ctx, item)
		return err
	})
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			s.logger.Error("Items service: failed to update item",
				"item_id", id,
				"error", err.Error())
		}
		return model.Item{}, err
	}

	s.logger.Info("Items service: item updated",
		"item_id", id)

	return updated, nil
}

// Delete removes item id. Only superusers may delete.
func (s *Items) Delete(ctx context.Context, auth model.Auth, id int64) error {
	if err := requireSuperuser(auth); err != nil {
		return err
	}

	err := s.store.InTx(ctx, func(ctx context.Context, tx model.Store) error {
		err := tx.Items().Delete(ctx, id)
		if errors.Is(err, model.ErrNotFound) {
			return itemNotFound(id)
		}
		return err
	})
	if err != nil {
		return err
	}

	s.logger.Info("Items service: item deleted",
		"item_id", id,
		"by", auth.UserID())

	return nil
}

func itemNotFound(id int64) error {
	return fmt.Errorf("%w: item with id %d", model.ErrNotFound, id)
}
