package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/p-rusnak/supER/internal/store"
	pgstore "github.com/p-rusnak/supER/internal/store/postgres"
	"github.com/p-rusnak/supER/testutil"
)

// compile-time check: postgres.Store must satisfy store.Store.
var _ store.Store = (*pgstore.Store)(nil)

// newTxStore migrates the test database, then opens a transaction-scoped
// Store. Rolling back the transaction on cleanup undoes every write, so
// tests are isolated without manual table truncation.
func newTxStore(t *testing.T) *pgstore.Store {
	t.Helper()
	ctx := context.Background()

	sqlDB := testutil.NewSQLDB(t)
	require.NoError(t, pgstore.Migrate(ctx, sqlDB))

	pool := testutil.NewPool(t)
	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })

	return pgstore.New(tx)
}

func TestStore_Get_MissingKey(t *testing.T) {
	s := newTxStore(t)

	v, ok, err := s.Get(context.Background(), "escapeRooms")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestStore_SetThenGet_RoundTrip(t *testing.T) {
	s := newTxStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "escapeRooms", `[{"id":1}]`))

	v, ok, err := s.Get(ctx, "escapeRooms")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, v)
}

func TestStore_Set_UpsertsExistingKey(t *testing.T) {
	s := newTxStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "first"))
	require.NoError(t, s.Set(ctx, "k", "second"))

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", v)
}
