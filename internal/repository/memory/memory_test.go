package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/itemgraph/internal/model"
)

func strPtr(s string) *string { return &s }

func TestStore_Users(t *testing.T) {
	ctx := context.Background()
	s := New()
	users := s.Users()

	harry, err := users.Create(ctx, model.User{Name: "Active Harry", Email: "active.harry@gmail.com", HashedPassword: "h", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), harry.ID)
	assert.False(t, harry.CreatedAt.IsZero())

	_, err = users.Create(ctx, model.User{Name: "Clone", Email: "active.harry@gmail.com"})
	require.ErrorIs(t, err, model.ErrExists)

	// Uniqueness is case-sensitive.
	_, err = users.Create(ctx, model.User{Name: "Upper", Email: "ACTIVE.HARRY@gmail.com"})
	require.NoError(t, err)

	got, err := users.GetByEmail(ctx, "active.harry@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, harry.ID, got.ID)

	_, err = users.GetByEmail(ctx, "nobody@gmail.com")
	require.ErrorIs(t, err, model.ErrNotFound)

	list, err := users.List(ctx, model.UserFilter{NameLike: "harry"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, harry.ID, list[0].ID)

	harry.Name = "Renamed Harry"
	updated, err := users.Update(ctx, harry)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Harry", updated.Name)
	assert.Equal(t, harry.CreatedAt, updated.CreatedAt)

	_, err = users.Update(ctx, model.User{ID: 99, Email: "x@y.z"})
	require.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, users.Delete(ctx, harry.ID))
	require.ErrorIs(t, users.Delete(ctx, harry.ID), model.ErrNotFound)
}

func TestStore_Items(t *testing.T) {
	ctx := context.Background()
	s := New()

	owner, err := s.Users().Create(ctx, model.User{Name: "Joe", Email: "joe@gmail.com"})
	require.NoError(t, err)

	_, err = s.Items().Create(ctx, model.Item{OwnerID: 42, PostedOn: time.Now()})
	require.ErrorIs(t, err, model.ErrNotFound)

	posted := time.Date(2001, 7, 1, 15, 30, 0, 0, time.UTC)
	pen, err := s.Items().Create(ctx, model.Item{OwnerID: owner.ID, Title: strPtr("Joe's pen"), Description: strPtr("Long forgotten"), PostedOn: posted})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2001, 7, 1, 0, 0, 0, 0, time.UTC), pen.PostedOn)

	_, err = s.Items().Create(ctx, model.Item{OwnerID: owner.ID, PostedOn: posted})
	require.NoError(t, err)

	list, err := s.Items().List(ctx, model.ItemFilter{TitleLike: "PEN"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, pen.ID, list[0].ID)

	list, err = s.Items().List(ctx, model.ItemFilter{OwnerID: owner.ID})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, s.Users().Delete(ctx, owner.ID))
	list, err = s.Items().List(ctx, model.ItemFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_InTx(t *testing.T) {
	ctx := context.Background()
	s := New()

	err := s.InTx(ctx, func(ctx context.Context, tx model.Store) error {
		_, err := tx.Users().Create(ctx, model.User{Email: "rolled@back.com"})
		require.NoError(t, err)
		return errors.New("boom")
	})
	require.Error(t, err)

	_, err = s.Users().GetByEmail(ctx, "rolled@back.com")
	require.ErrorIs(t, err, model.ErrNotFound)

	err = s.InTx(ctx, func(ctx context.Context, tx model.Store) error {
		_, err := tx.Users().Create(ctx, model.User{Email: "committed@gmail.com"})
		return err
	})
	require.NoError(t, err)

	u, err := s.Users().GetByEmail(ctx, "committed@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
}
