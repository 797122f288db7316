package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/itemgraph/internal/mocks"
	"github.com/dtroode/itemgraph/internal/model"
	"github.com/dtroode/itemgraph/internal/password"
	"github.com/dtroode/itemgraph/internal/repository/memory"
	"github.com/dtroode/itemgraph/internal/testutil"
)

func ptr[T any](v T) *T { return &v }

func newUsersFixture(t *testing.T) (*Users, *memory.Store) {
	t.Helper()
	store := memory.New()
	return NewUsers(store, password.NewBcrypt(bcrypt.MinCost), testutil.MakeNoopLogger()), store
}

func TestUsers_Create(t *testing.T) {
	s, store := newUsersFixture(t)
	ctx := context.Background()

	user, err := s.Create(ctx, model.CreateUserParams{Email: "harry@example.com", Name: "Harry", Password: "asdf1"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsSuperuser)
	assert.NotEqual(t, "asdf1", user.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("asdf1")))

	_, err = s.Create(ctx, model.CreateUserParams{Email: "harry@example.com", Name: "Other", Password: "qwer1"})
	assert.ErrorIs(t, err, model.ErrExists)

	_, err = s.Create(ctx, model.CreateUserParams{Email: "Harry@example.com", Name: "Case", Password: "qwer1"})
	assert.NoError(t, err, "email uniqueness is case sensitive")

	users, err := store.Users().List(ctx, model.UserFilter{})
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUsers_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		params model.CreateUserParams
	}{
		{name: "short email", params: model.CreateUserParams{Email: "a@b", Password: "asdf1"}},
		{name: "short password", params: model.CreateUserParams{Email: "a@b.c", Password: "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewUsers(mocks.NewStore(t), mocks.NewHasher(t), testutil.MakeNoopLogger())

			_, err := s.Create(context.Background(), tt.params)

			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestUsers_Update(t *testing.T) {
	s, _ := newUsersFixture(t)
	ctx := context.Background()

	harry, err := s.Create(ctx, model.CreateUserParams{Email: "harry@example.com", Name: "Harry", Password: "asdf1"})
	require.NoError(t, err)
	joe, err := s.Create(ctx, model.CreateUserParams{Email: "joe@example.com", Name: "Joe", Password: "asdf2"})
	require.NoError(t, err)
	susi := model.User{ID: 99, IsSuperuser: true}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		updated, err := s.Update(ctx, model.Authenticated(harry), harry.ID, model.UserUpdate{Name: ptr("Active Harry")})
		require.NoError(t, err)
		assert.Equal(t, "Active Harry", updated.Name)
		assert.Equal(t, harry.Email, updated.Email)
		assert.Equal(t, harry.HashedPassword, updated.HashedPassword)
		assert.True(t, updated.IsActive)
	})

	t.Run("password is rehashed", func(t *testing.T) {
		updated, err := s.Update(ctx, model.Authenticated(harry), harry.ID, model.UserUpdate{Password: ptr("newpass")})
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.HashedPassword), []byte("newpass")))
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := s.Update(ctx, model.Anonymous(), harry.ID, model.UserUpdate{Name: ptr("x")})
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("other user", func(t *testing.T) {
		_, err := s.Update(ctx, model.Authenticated(joe), harry.ID, model.UserUpdate{Name: ptr("x")})
		assert.ErrorIs(t, err, model.ErrForbidden)
	})

	t.Run("self promotion", func(t *testing.T) {
		_, err := s.Update(ctx, model.Authenticated(joe), joe.ID, model.UserUpdate{IsSuperuser: ptr(true)})
		assert.ErrorIs(t, err, model.ErrForbidden)
	})

	t.Run("superuser deactivates someone", func(t *testing.T) {
		updated, err := s.Update(ctx, model.Authenticated(susi), joe.ID, model.UserUpdate{IsActive: ptr(false)})
		require.NoError(t, err)
		assert.False(t, updated.IsActive)
		assert.Equal(t, "Joe", updated.Name)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := s.Update(ctx, model.Authenticated(susi), 12345, model.UserUpdate{Name: ptr("x")})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestUsers_Delete(t *testing.T) {
	t.Run("non superuser fails before storage access", func(t *testing.T) {
		s := NewUsers(mocks.NewStore(t), mocks.NewHasher(t), testutil.MakeNoopLogger())

		err := s.Delete(context.Background(), model.Authenticated(model.User{ID: 1}), 2)
		assert.ErrorIs(t, err, model.ErrForbidden)

		err = s.Delete(context.Background(), model.Anonymous(), 2)
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("superuser", func(t *testing.T) {
		s, store := newUsersFixture(t)
		ctx := context.Background()
		admin := model.Authenticated(model.User{ID: 100, IsSuperuser: true})

		joe, err := s.Create(ctx, model.CreateUserParams{Email: "joe@example.com", Password: "asdf2"})
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, admin, joe.ID))

		_, err = store.Users().GetByID(ctx, joe.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)

		assert.ErrorIs(t, s.Delete(ctx, admin, joe.ID), model.ErrNotFound)
	})
}

func TestUsers_GetAndList(t *testing.T) {
	s, _ := newUsersFixture(t)
	ctx := context.Background()

	harry, err := s.Create(ctx, model.CreateUserParams{Email: "harry@example.com", Name: "Active Harry", Password: "asdf1"})
	require.NoError(t, err)
	_, err = s.Create(ctx, model.CreateUserParams{Email: "joe@example.com", Name: "Inactive Joe", Password: "asdf2"})
	require.NoError(t, err)

	got, err := s.Get(ctx, harry.ID)
	require.NoError(t, err)
	assert.Equal(t, harry.Email, got.Email)

	_, err = s.Get(ctx, 999)
	assert.ErrorIs(t, err, model.ErrNotFound)

	list, err := s.List(ctx, model.UserFilter{NameLike: "harry"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, harry.ID, list[0].ID)
}
