package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/itemgraph/internal/model"
	"github.com/dtroode/itemgraph/internal/password"
	"github.com/dtroode/itemgraph/internal/repository/memory"
	"github.com/dtroode/itemgraph/internal/testutil"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	hasher := password.NewBcrypt(bcrypt.MinCost)

	res, err := Run(ctx, store, hasher, testutil.MakeNoopLogger())
	require.NoError(t, err)
	assert.Equal(t, Result{Users: 3, Items: 4}, res)

	susi, err := store.Users().GetByEmail(ctx, "super.susi@example.com")
	require.NoError(t, err)
	assert.True(t, susi.IsSuperuser)
	assert.True(t, hasher.Verify("asdf3", susi.HashedPassword))

	joe, err := store.Users().GetByEmail(ctx, "inactive.joe@example.com")
	require.NoError(t, err)
	assert.False(t, joe.IsActive)

	harry, err := store.Users().GetByEmail(ctx, "active.harry@example.com")
	require.NoError(t, err)
	harrysItems, err := store.Items().List(ctx, model.ItemFilter{OwnerID: harry.ID})
	require.NoError(t, err)
	assert.Len(t, harrysItems, 2)

	again, err := Run(ctx, store, hasher, testutil.MakeNoopLogger())
	require.NoError(t, err)
	assert.Equal(t, Result{}, again)

	all, err := store.Items().List(ctx, model.ItemFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
