package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/itemgraph/internal/model"
)

func TestManager_Auth(t *testing.T) {
	m := NewManager()

	t.Run("missing auth is anonymous", func(t *testing.T) {
		auth := m.GetAuthFromContext(context.Background())
		assert.False(t, auth.Authenticated)
		assert.Nil(t, auth.User)
	})

	t.Run("round trip", func(t *testing.T) {
		user := model.User{ID: 3, Email: "susi@example.com", IsSuperuser: true}
		ctx := m.SetAuthToContext(context.Background(), model.Authenticated(user))

		auth := m.GetAuthFromContext(ctx)
		require.True(t, auth.Authenticated)
		assert.Equal(t, int64(3), auth.UserID())
		assert.True(t, auth.IsSuperuser())
	})

	t.Run("foreign value under a string key is ignored", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), "auth", model.Authenticated(model.User{ID: 1}))
		assert.False(t, m.GetAuthFromContext(ctx).Authenticated)
	})
}

func TestManager_RequestID(t *testing.T) {
	m := NewManager()

	_, ok := m.GetRequestIDFromContext(context.Background())
	assert.False(t, ok)

	id, ok := m.GetRequestIDFromContext(m.SetRequestIDToContext(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}
