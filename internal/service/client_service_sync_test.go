package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharemycard/cardsync/internal/adapter"
	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/internal/store"
	"github.com/sharemycard/cardsync/models"
)

// Hand-rolled fakes: the sync engine's collaborators are generic, so
// mockgen is of no help here.

type fakeLocalStore[T Syncable] struct {
	records map[string]T
}

func newFakeLocalStore[T Syncable]() *fakeLocalStore[T] {
	return &fakeLocalStore[T]{records: map[string]T{}}
}

func (f *fakeLocalStore[T]) Get(_ context.Context, id string) (T, error) {
	rec, ok := f.records[id]
	if !ok {
		var zero T
		return zero, store.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeLocalStore[T]) GetByServerID(_ context.Context, serverID string) (T, error) {
	for _, rec := range f.records {
		if rec.Meta().ServerID == serverID {
			return rec, nil
		}
	}
	var zero T
	return zero, store.ErrRecordNotFound
}

func (f *fakeLocalStore[T]) Upsert(_ context.Context, rec T) error {
	f.records[rec.Meta().ID] = rec
	return nil
}

func (f *fakeLocalStore[T]) ListActive(_ context.Context) ([]T, error) {
	var out []T
	for _, rec := range f.records {
		if !rec.Meta().Deleted {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeLocalStore[T]) ListPendingSync(_ context.Context) ([]T, error) {
	var out []T
	for _, rec := range f.records {
		if rec.Meta().PendingSync {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeLocalStore[T]) SoftDelete(_ context.Context, id string) error {
	rec, ok := f.records[id]
	if !ok {
		return store.ErrRecordNotFound
	}
	rec.Meta().Deleted = true
	rec.Meta().PendingSync = true
	return nil
}

func (f *fakeLocalStore[T]) MarkSynced(_ context.Context, id, serverID string) error {
	rec, ok := f.records[id]
	if !ok {
		return store.ErrRecordNotFound
	}
	rec.Meta().ServerID = serverID
	rec.Meta().PendingSync = false
	return nil
}

type fakeRemote[T Syncable] struct {
	createFn func(ctx context.Context, rec T) (T, error)
	updateFn func(ctx context.Context, rec T) (T, error)
	listFn   func(ctx context.Context, since models.Timestamp) ([]T, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeRemote[T]) Create(ctx context.Context, rec T) (T, error) {
	if f.createFn != nil {
		return f.createFn(ctx, rec)
	}
	return rec, nil
}

func (f *fakeRemote[T]) Update(ctx context.Context, rec T) (T, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, rec)
	}
	return rec, nil
}

func (f *fakeRemote[T]) Get(_ context.Context, _ string) (T, error) {
	var zero T
	return zero, adapter.ErrNotFound
}

func (f *fakeRemote[T]) List(ctx context.Context, since models.Timestamp) ([]T, error) {
	if f.listFn != nil {
		return f.listFn(ctx, since)
	}
	return nil, nil
}

func (f *fakeRemote[T]) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeLeadRemote struct {
	listFn    func(ctx context.Context, since models.Timestamp) ([]*models.Lead, error)
	convertFn func(ctx context.Context, id string) (models.ConversionResult, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (f *fakeLeadRemote) Get(_ context.Context, _ string) (*models.Lead, error) {
	return nil, adapter.ErrNotFound
}

func (f *fakeLeadRemote) List(ctx context.Context, since models.Timestamp) ([]*models.Lead, error) {
	if f.listFn != nil {
		return f.listFn(ctx, since)
	}
	return nil, nil
}

func (f *fakeLeadRemote) Convert(ctx context.Context, id string) (models.ConversionResult, error) {
	if f.convertFn != nil {
		return f.convertFn(ctx, id)
	}
	return models.ConversionResult{}, adapter.ErrNotFound
}

func (f *fakeLeadRemote) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeServerAdapter struct {
	cards    *fakeRemote[*models.BusinessCard]
	contacts *fakeRemote[*models.Contact]
	leads    *fakeLeadRemote

	deleteContactFn func(ctx context.Context, contactID string) (models.DeleteContactResult, error)
}

func (f *fakeServerAdapter) SetToken(string) {}
func (f *fakeServerAdapter) Token() string   { return "test-token" }

func (f *fakeServerAdapter) Login(_ context.Context, _ models.User) error { return nil }

func (f *fakeServerAdapter) Cards() adapter.EntityRemote[*models.BusinessCard] { return f.cards }
func (f *fakeServerAdapter) Contacts() adapter.EntityRemote[*models.Contact]   { return f.contacts }
func (f *fakeServerAdapter) Leads() adapter.LeadRemote                         { return f.leads }

func (f *fakeServerAdapter) DeleteContact(ctx context.Context, contactID string) (models.DeleteContactResult, error) {
	if f.deleteContactFn != nil {
		return f.deleteContactFn(ctx, contactID)
	}
	return models.DeleteContactResult{}, nil
}

func newTestSyncSvc(t *testing.T) (*syncService, *fakeServerAdapter, *store.ClientStorages) {
	t.Helper()

	server := &fakeServerAdapter{
		cards:    &fakeRemote[*models.BusinessCard]{},
		contacts: &fakeRemote[*models.Contact]{},
		leads:    &fakeLeadRemote{},
	}
	cache := &store.ClientStorages{
		Cards:       newFakeLocalStore[*models.BusinessCard](),
		Contacts:    newFakeLocalStore[*models.Contact](),
		Leads:       newFakeLocalStore[*models.Lead](),
		Checkpoints: &fakeCheckpoints{marks: map[string]models.Timestamp{}},
	}

	svc := NewSyncService(server, cache, logger.Nop()).(*syncService)
	return svc, server, cache
}

type fakeCheckpoints struct {
	marks map[string]models.Timestamp
}

func (f *fakeCheckpoints) LastPulledAt(_ context.Context, entity string) (models.Timestamp, error) {
	return f.marks[entity], nil
}

func (f *fakeCheckpoints) SetLastPulledAt(_ context.Context, entity string, ts models.Timestamp) error {
	f.marks[entity] = ts
	return nil
}

func card(id string, updatedAt models.Timestamp, pending bool) *models.BusinessCard {
	return &models.BusinessCard{
		SyncMeta: models.SyncMeta{
			ID:          id,
			CreatedAt:   updatedAt,
			UpdatedAt:   updatedAt,
			PendingSync: pending,
		},
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

// ── Push ─────────────────────────────────────────────────────────────────────

func TestSync_PushCreate_MapsServerIdentity(t *testing.T) {
	svc, server, cache := newTestSyncSvc(t)
	ctx := context.Background()

	local := card("local-1", 1000, true)
	require.NoError(t, cache.Cards.Upsert(ctx, local))

	var createCalls int
	server.cards.createFn = func(_ context.Context, rec *models.BusinessCard) (*models.BusinessCard, error) {
		createCalls++
		created := *rec
		created.ID = "srv-1"
		return &created, nil
	}
	// the freshly created record comes back on the pull with the same
	// revision
	server.cards.listFn = func(_ context.Context, _ models.Timestamp) ([]*models.BusinessCard, error) {
		remote := *local
		remote.ID = "srv-1"
		remote.ServerID = ""
		return []*models.BusinessCard{&remote}, nil
	}

	res, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Pushed)
	assert.Equal(t, 0, res.Pulled)

	got, err := cache.Cards.Get(ctx, "local-1")
	require.NoError(t, err)
	assert.Equal(t, "srv-1", got.ServerID)
	assert.False(t, got.PendingSync)

	// no duplicate materialized from the pull
	all, err := cache.Cards.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// the second cycle has nothing to push: the create is not repeated
	_, err = svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, createCalls)
}

func TestSync_PushUpdate_UsesServerID(t *testing.T) {
	svc, server, cache := newTestSyncSvc(t)
	ctx := context.Background()

	local := card("local-1", 2000, true)
	local.ServerID = "srv-1"
	require.NoError(t, cache.Cards.Upsert(ctx, local))

	var updated *models.BusinessCard
	server.cards.updateFn = func(_ context.Context, rec *models.BusinessCard) (*models.BusinessCard, error) {
		updated = rec
		return rec, nil
	}

	res, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pushed)
	require.NotNil(t, updated)
	assert.Equal(t, "srv-1", updated.RemoteID())

	got, _ := cache.Cards.Get(ctx, "local-1")
	assert.False(t, got.PendingSync)
}

func TestSync_PushValidationError_IsolatedPerRecord(t *testing.T) {
	svc, server, cache := newTestSyncSvc(t)
	ctx := context.Background()

	bad := card("bad", 1000, true)
	good := card("good", 1000, true)
	require.NoError(t, cache.Cards.Upsert(ctx, bad))
	require.NoError(t, cache.Cards.Upsert(ctx, good))

	server.cards.createFn = func(_ context.Context, rec *models.BusinessCard) (*models.BusinessCard, error) {
		if rec.ID == "bad" {
			return nil, fmt.Errorf("%w: empty name", adapter.ErrValidation)
		}
		created := *rec
		created.ID = "srv-" + rec.ID
		return &created, nil
	}

	res, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 1, res.Pushed)

	gotBad, _ := cache.Cards.Get(ctx, "bad")
	assert.True(t, gotBad.PendingSync, "rejected record stays pending")
	gotGood, _ := cache.Cards.Get(ctx, "good")
	assert.False(t, gotGood.PendingSync)
}

func TestSync_PushConflict_CountedAndKeptPending(t *testing.T) {
	svc, server, cache := newTestSyncSvc(t)
	ctx := context.Background()

	local := card("local-1", 1000, true)
	local.ServerID = "srv-1"
	require.NoError(t, cache.Cards.Upsert(ctx, local))

	server.cards.updateFn = func(_ context.Context, _ *models.BusinessCard) (*models.BusinessCard, error) {
		return nil, fmt.Errorf("%w: concurrent edit", adapter.ErrConflict)
	}

	res, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, 1, res.Conflicts)

	got, _ := cache.Cards.Get(ctx, "local-1")
	assert.True(t, got.PendingSync)
}

func TestSync_NetworkError_AbortsWholeCycle(t *testing.T) {
	svc, server, cache := newTestSyncSvc(t)
	ctx := context.Background()

	require.NoError(t, cache.Cards.Upsert(ctx, card("local-1", 1000, true)))

	server.cards.createFn = func(_ context.Context, _ *models.BusinessCard) (*models.BusinessCard, error) {
		return nil, fmt.Errorf("create card request: %w: connection refused", adapter.ErrNetwork)
	}
	var pullCalled bool
	server.cards.listFn = func(_ context.Context, _ models.Timestamp) ([]*models.BusinessCard, error) {
		pullCalled = true
		return nil, nil
	}

	res, err := svc.Sync(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrNetwork)
	assert.False(t, res.Success)
	assert.False(t, pullCalled, "pull must not run after a transport failure")

	got, _ := cache.Cards.Get(ctx, "local-1")
	assert.True(t, got.PendingSync)
}

func TestSync_DeleteNeverPushed_RetiredLocally(t *testing.T) {
	svc, server, cache := newTestSyncSvc(t)
	ctx := context.Background()

	local := card("local-1", 1000, true)
	local.Deleted = true
	require.NoError(t, cache.Cards.Upsert(ctx, local))

	var deleteCalled bool
	server.cards.deleteFn = func(_ context.Context, _ string) error {
		deleteCalled = true
		return nil
	}

	res, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.False(t, deleteCalled, "a record the server never saw needs no remote delete")

	got, _ := cache.Cards.Get(ctx, "local-1")
	assert.False(t, got.PendingSync)
}

func TestSync_ContactDeletion_TravelsThroughRevertEndpoint(t *testing.T) {
	svc, server, cache := newTestSyncSvc(t)
	ctx := context.Background()

	contact := &models.Contact{SyncMeta: models.SyncMeta{
		ID:          "c-1",
		ServerID:    "srv-c-1",
		UpdatedAt:   1000,
		Deleted:     true,
		PendingSync: true,
	}}
	require.NoError(t, cache.Contacts.Upsert(ctx, contact))

	var deletedID string
	server.deleteContactFn = func(_ context.Context, contactID string) (models.DeleteContactResult, error) {
		deletedID = contactID
		return models.DeleteContactResult{LeadReverted: true, LeadID: "lead-7"}, nil
	}

	res, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "srv-c-1", deletedID)
}

// ── Pull ─────────────────────────────────────────────────────────────────────

func TestSync_PullRemoteNewer_OverwritesKeepingLocalIdentity(t *testing.T) {
	svc, server, cache := newTestSyncSvc(t)
	ctx := context.Background()

	local := card("local-1", 1000, false)
	local.ServerID = "srv-1"
	local.FirstName = "Old"
	require.NoError(t, cache.Cards.Upsert(ctx, local))

	server.cards.listFn = func(_ context.Context, _ models.Timestamp) ([]*models.BusinessCard, error) {
		return []*models.BusinessCard{{
			SyncMeta:  models.SyncMeta{ID: "srv-1", UpdatedAt: 5000},
			FirstName: "New",
		}}, nil
	}

	res, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.Pulled)

	got, err := cache.Cards.Get(ctx, "local-1")
	require.NoError(t, err)
	assert.Equal(t, "New", got.FirstName)
	assert.Equal(t, "srv-1", got.ServerID)
	assert.Equal(t, models.Timestamp(5000), got.UpdatedAt)
}

func TestSync_PullLocalNewer_RemoteIgnored(t *testing.T) {
	svc, server, cache := newTestSyncSvc(t)
	ctx := context.Background()

	local := card("local-1", 9000, false)
	local.ServerID = "srv-1"
	local.FirstName = "Fresh"
	require.NoError(t, cache.Cards.Upsert(ctx, local))

	server.cards.listFn = func(_ context.Context, _ models.Timestamp) ([]*models.BusinessCard, error) {
		return []*models.BusinessCard{{
			SyncMeta:  models.SyncMeta{ID: "srv-1", UpdatedAt: 5000},
			FirstName: "Stale",
		}}, nil
	}

	res, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Pulled)

	got, _ := cache.Cards.Get(ctx, "local-1")
	assert.Equal(t, "Fresh", got.FirstName)
}

func TestSync_PullUnknownRecord_CreatedWithServerIdentity(t *testing.T) {
	svc, server, cache := newTestSyncSvc(t)
	ctx := context.Background()

	server.cards.listFn = func(_ context.Context, _ models.Timestamp) ([]*models.BusinessCard, error) {
		return []*models.BusinessCard{{
			SyncMeta:  models.SyncMeta{ID: "srv-9", UpdatedAt: 4000},
			FirstName: "Grace",
		}}, nil
	}

	res, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pulled)

	// pull-created records use the server identifier as the local one
	got, err := cache.Cards.Get(ctx, "srv-9")
	require.NoError(t, err)
	assert.Equal(t, "srv-9", got.ServerID)
	assert.False(t, got.PendingSync)
}

func TestSync_PullTombstoneForUnknownRecord_Skipped(t *testing.T) {
	svc, server, cache := newTestSyncSvc(t)
	ctx := context.Background()

	server.cards.listFn = func(_ context.Context, _ models.Timestamp) ([]*models.BusinessCard, error) {
		return []*models.BusinessCard{{
			SyncMeta: models.SyncMeta{ID: "srv-gone", UpdatedAt: 4000, Deleted: true},
		}}, nil
	}

	res, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Pulled)

	_, err = cache.Cards.Get(ctx, "srv-gone")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestSync_PullAdvancesWatermark(t *testing.T) {
	svc, server, _ := newTestSyncSvc(t)
	ctx := context.Background()

	var seenSince []models.Timestamp
	server.cards.listFn = func(_ context.Context, since models.Timestamp) ([]*models.BusinessCard, error) {
		seenSince = append(seenSince, since)
		if since.IsZero() {
			return []*models.BusinessCard{
				{SyncMeta: models.SyncMeta{ID: "srv-1", UpdatedAt: 3000}},
				{SyncMeta: models.SyncMeta{ID: "srv-2", UpdatedAt: 7000}},
			}, nil
		}
		return nil, nil
	}

	_, err := svc.Sync(ctx)
	require.NoError(t, err)
	_, err = svc.Sync(ctx)
	require.NoError(t, err)

	require.Len(t, seenSince, 2)
	assert.Equal(t, models.Timestamp(0), seenSince[0])
	assert.Equal(t, models.Timestamp(7000), seenSince[1], "second pull starts from the highest seen revision")
}

func TestSync_PullLeads(t *testing.T) {
	svc, server, cache := newTestSyncSvc(t)
	ctx := context.Background()

	server.leads.listFn = func(_ context.Context, _ models.Timestamp) ([]*models.Lead, error) {
		return []*models.Lead{{
			SyncMeta:  models.SyncMeta{ID: "lead-1", UpdatedAt: 2000},
			CardID:    "srv-card",
			FirstName: "Curious",
			Status:    models.LeadStatusNew,
		}}, nil
	}

	res, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pulled)

	got, err := cache.Leads.Get(ctx, "lead-1")
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusNew, got.Status)
}

// ── Single flight ────────────────────────────────────────────────────────────

func TestSync_SecondCallWhileRunning_FailsFast(t *testing.T) {
	svc, _, _ := newTestSyncSvc(t)

	svc.mu.Lock()
	defer svc.mu.Unlock()

	res, err := svc.Sync(context.Background())
	assert.ErrorIs(t, err, ErrSyncInFlight)
	assert.False(t, res.Success)
}
