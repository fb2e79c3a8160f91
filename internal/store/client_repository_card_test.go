package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharemycard/cardsync/internal/config"
	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/models"
)

func newTestCache(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.ClientDB{
		DSN: filepath.Join(t.TempDir(), "cache.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func localCard(id string) *models.BusinessCard {
	return &models.BusinessCard{
		SyncMeta: models.SyncMeta{
			ID:          id,
			CreatedAt:   1000,
			UpdatedAt:   1000,
			PendingSync: true,
		},
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}
}

func TestClientCardRepository_UpsertAndGet(t *testing.T) {
	repo := NewClientCardRepository(newTestCache(t), logger.Nop())
	ctx := context.Background()

	card := localCard("local-1")
	require.NoError(t, repo.Upsert(ctx, card))

	got, err := repo.Get(ctx, "local-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
	assert.True(t, got.PendingSync)

	// upsert with the same identifier replaces, not duplicates
	card.FirstName = "Augusta"
	card.UpdatedAt = 2000
	require.NoError(t, repo.Upsert(ctx, card))

	got, err = repo.Get(ctx, "local-1")
	require.NoError(t, err)
	assert.Equal(t, "Augusta", got.FirstName)
	assert.Equal(t, models.Timestamp(2000), got.UpdatedAt)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestClientCardRepository_Get_NotFound(t *testing.T) {
	repo := NewClientCardRepository(newTestCache(t), logger.Nop())

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestClientCardRepository_MarkSynced(t *testing.T) {
	repo := NewClientCardRepository(newTestCache(t), logger.Nop())
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, localCard("local-1")))

	pending, err := repo.ListPendingSync(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	require.NoError(t, repo.MarkSynced(ctx, "local-1", "srv-1"))

	pending, err = repo.ListPendingSync(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	got, err := repo.GetByServerID(ctx, "srv-1")
	require.NoError(t, err)
	assert.Equal(t, "local-1", got.ID)
	assert.False(t, got.PendingSync)
}

func TestClientCardRepository_MarkSynced_Unknown(t *testing.T) {
	repo := NewClientCardRepository(newTestCache(t), logger.Nop())

	err := repo.MarkSynced(context.Background(), "missing", "srv-1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestClientCardRepository_SoftDelete(t *testing.T) {
	repo := NewClientCardRepository(newTestCache(t), logger.Nop())
	ctx := context.Background()

	card := localCard("local-1")
	card.PendingSync = false
	require.NoError(t, repo.Upsert(ctx, card))

	require.NoError(t, repo.SoftDelete(ctx, "local-1"))

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	// the tombstone is pending so the deletion reaches the server
	pending, err := repo.ListPendingSync(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.True(t, pending[0].Deleted)

	assert.ErrorIs(t, repo.SoftDelete(ctx, "local-1"), ErrRecordNotFound)
}

func TestClientCheckpointRepository(t *testing.T) {
	repo := NewClientCheckpointRepository(newTestCache(t), logger.Nop())
	ctx := context.Background()

	// an entity never pulled starts from zero
	ts, err := repo.LastPulledAt(ctx, "cards")
	require.NoError(t, err)
	assert.True(t, ts.IsZero())

	require.NoError(t, repo.SetLastPulledAt(ctx, "cards", 7000))
	require.NoError(t, repo.SetLastPulledAt(ctx, "cards", 9000))

	ts, err = repo.LastPulledAt(ctx, "cards")
	require.NoError(t, err)
	assert.Equal(t, models.Timestamp(9000), ts)

	// watermarks are independent per entity
	ts, err = repo.LastPulledAt(ctx, "leads")
	require.NoError(t, err)
	assert.True(t, ts.IsZero())
}
