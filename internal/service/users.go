package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/itemgraph/internal/logger"
	"github.com/dtroode/itemgraph/internal/model"
)

var _ model.UserService = (*Users)(nil)

// MinCredentialLength is the shortest accepted email and password.
const MinCredentialLength = 4

type Users struct {
	store  model.Store
	hasher model.Hasher
	logger *logger.Logger
}

func NewUsers(store model.Store, hasher model.Hasher, logger *logger.Logger) *Users {
	return &Users{
		store:  store,
		hasher: hasher,
		logger: logger,
	}
}

func (s *Users) Get(ctx context.Context, id int64) (model.User, error) {
	user, err := s.store.Users().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, fmt.Errorf("%w: user with id %d", model.ErrNotFound, id)
		}
		s.logger.Error("Users service: failed to get user",
			"user_id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (s *Users) List(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	users, err := s.store.Users().List(ctx, filter)
	if err != nil {
		s.logger.Error("Users service: failed to list users",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// Create registers an active, non-superuser account.
func (s *Users) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	if len(params.Email) < MinCredentialLength {
		return model.User{}, fmt.Errorf("%w: email must be at least %d characters long", model.ErrInvalidInput, MinCredentialLength)
	}
	if len(params.Password) < MinCredentialLength {
		return model.User{}, fmt.Errorf("%w: password must be at least %d characters long", model.ErrInvalidInput, MinCredentialLength)
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		s.logger.Error("Users service: failed to hash password",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created model.User
	err = s.store.InTx(ctx, func(ctx context.Context, tx model.Store) error {
		_, err := tx.Users().GetByEmail(ctx, params.Email)
		if err == nil {
			return fmt.Errorf("%w: user with email %s", model.ErrExists, params.Email)
		}
		if !errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("failed to get user by email: %w", err)
		}

		created, err = tx.Users().Create(ctx, model.User{
			Name:           params.Name,
			Email:          params.Email,
			HashedPassword: hash,
			IsActive:       true,
			IsSuperuser:    false,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			s.logger.Info("Users service: email already taken",
				"email", params.Email)
		} else {
			s.logger.Error("Users service: failed to create user",
				"email", params.Email,
				"error", err.Error())
		}
		return model.User{}, err
	}

	s.logger.Info("Users service: user created",
		"user_id", created.ID)

	return created, nil
}

// Update applies the supplied fields of upd to user id.
// Callers may update themselves; superusers may update anyone and grant or revoke superuser rights.
func (s *Users) Update(ctx context.Context, auth model.Auth, id int64, upd model.UserUpdate) (model.User, error) {
	if !auth.Authenticated {
		return model.User{}, model.ErrUnauthorized
	}
	if !auth.IsSuperuser() {
		if auth.UserID() != id || upd.IsSuperuser != nil {
			return model.User{}, model.ErrForbidden
		}
	}

	var hash *string
	if upd.Password != nil {
		if len(*upd.Password) < MinCredentialLength {
			return model.User{}, fmt.Errorf("%w: password must be at least %d characters long", model.ErrInvalidInput, MinCredentialLength)
		}
		h, err := s.hasher.Hash(*upd.Password)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hash = &h
	}

	var updated model.User
	err := s.store.InTx(ctx, func(ctx context.Context, tx model.Store) error {
		user, err := tx.Users().GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return fmt.Errorf("%w: user with id %d", model.ErrNotFound, id)
			}
			return fmt.Errorf("failed to get user: %w", err)
		}

		if upd.Name != nil {
			user.Name = *upd.Name
		}
		if hash != nil {
			user.HashedPassword = *hash
		}
		if upd.IsActive != nil {
			user.IsActive = *upd.IsActive
		}
		if upd.IsSuperuser != nil {
			user.IsSuperuser = *upd.IsSuperuser
		}

		updated, err = tx.Users().Update(ctx, user)
		return err
	})
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			s.logger.Error("Users service: failed to update user",
				"user_id", id,
				"error", err.Error())
		}
		return model.User{}, err
	}

	s.logger.Info("Users service: user updated",
		"user_id", id,
		"by", auth.UserID())

	return updated, nil
}

// Delete removes user id and its items. Only superusers may delete.
func (s *Users) Delete(ctx context.Context, auth model.Auth, id int64) error {
	if err := requireSuperuser(auth); err != nil {
		return err
	}

	err := s.store.InTx(ctx, func(ctx context.Context, tx model.Store) error {
		err := tx.Users().Delete(ctx, id)
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("%w: user with id %d", model.ErrNotFound, id)
		}
		return err
	})
	if err != nil {
		return err
	}

	s.logger.Info("Users service: user deleted",
		"user_id", id,
		"by", auth.UserID())

	return nil
}

func requireSuperuser(auth model.Auth) error {
	if !auth.Authenticated {
		return model.ErrUnauthorized
	}
	if !auth.IsSuperuser() {
		return model.ErrForbidden
	}
	return nil
}
