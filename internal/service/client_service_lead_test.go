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

func cachedLead(id, serverID string, status models.LeadStatus) *models.Lead {
	return &models.Lead{
		SyncMeta: models.SyncMeta{ID: id, ServerID: serverID, UpdatedAt: 1000},
		CardID:   "card-1",
		Status:   status,
	}
}

func TestClientLeadService_Convert(t *testing.T) {
	cache := newFakeLocalStore[*models.Lead]()
	remote := &fakeLeadRemote{}
	svc := NewClientLeadService(cache, remote, logger.Nop())
	ctx := context.Background()

	require.NoError(t, cache.Upsert(ctx, cachedLead("lead-1", "srv-lead-1", models.LeadStatusNew)))

	var convertedID string
	remote.convertFn = func(_ context.Context, id string) (models.ConversionResult, error) {
		convertedID = id
		return models.ConversionResult{ContactID: "srv-contact-1", LeadID: id}, nil
	}

	result, err := svc.Convert(ctx, "lead-1")
	require.NoError(t, err)
	assert.Equal(t, "srv-contact-1", result.ContactID)
	assert.Equal(t, "srv-lead-1", convertedID, "remote call uses the server identifier")

	got, err := cache.Get(ctx, "lead-1")
	require.NoError(t, err)
	assert.Equal(t, models.LeadStatusConverted, got.Status)
}

func TestClientLeadService_Convert_AlreadyConvertedLocally(t *testing.T) {
	cache := newFakeLocalStore[*models.Lead]()
	remote := &fakeLeadRemote{}
	svc := NewClientLeadService(cache, remote, logger.Nop())
	ctx := context.Background()

	require.NoError(t, cache.Upsert(ctx, cachedLead("lead-1", "srv-lead-1", models.LeadStatusConverted)))

	remote.convertFn = func(_ context.Context, _ string) (models.ConversionResult, error) {
		t.Fatal("remote must not be called for a lead already converted")
		return models.ConversionResult{}, nil
	}

	_, err := svc.Convert(ctx, "lead-1")
	assert.ErrorIs(t, err, store.ErrLeadAlreadyConverted)
}

func TestClientLeadService_Convert_LostRaceOnServer(t *testing.T) {
	cache := newFakeLocalStore[*models.Lead]()
	remote := &fakeLeadRemote{}
	svc := NewClientLeadService(cache, remote, logger.Nop())
	ctx := context.Background()

	require.NoError(t, cache.Upsert(ctx, cachedLead("lead-1", "srv-lead-1", models.LeadStatusNew)))

	remote.convertFn = func(_ context.Context, _ string) (models.ConversionResult, error) {
		return models.ConversionResult{}, fmt.Errorf("%w: lead already converted", adapter.ErrConflict)
	}

	_, err := svc.Convert(ctx, "lead-1")
	assert.ErrorIs(t, err, store.ErrLeadAlreadyConverted)

	// the cached status is left for the next pull to settle
	got, _ := cache.Get(ctx, "lead-1")
	assert.Equal(t, models.LeadStatusNew, got.Status)
}

func TestClientLeadService_Convert_UnknownLead(t *testing.T) {
	svc := NewClientLeadService(newFakeLocalStore[*models.Lead](), &fakeLeadRemote{}, logger.Nop())

	_, err := svc.Convert(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestClientLeadService_Delete(t *testing.T) {
	cache := newFakeLocalStore[*models.Lead]()
	remote := &fakeLeadRemote{}
	svc := NewClientLeadService(cache, remote, logger.Nop())
	ctx := context.Background()

	require.NoError(t, cache.Upsert(ctx, cachedLead("lead-1", "srv-lead-1", models.LeadStatusNew)))

	var deletedID string
	remote.deleteFn = func(_ context.Context, id string) error {
		deletedID = id
		return nil
	}

	require.NoError(t, svc.Delete(ctx, "lead-1"))
	assert.Equal(t, "srv-lead-1", deletedID)

	got, _ := cache.Get(ctx, "lead-1")
	assert.True(t, got.Deleted)
}

func TestClientLeadService_Delete_GoneOnServer(t *testing.T) {
	cache := newFakeLocalStore[*models.Lead]()
	remote := &fakeLeadRemote{
		deleteFn: func(_ context.Context, _ string) error {
			return fmt.Errorf("delete lead: %w", adapter.ErrNotFound)
		},
	}
	svc := NewClientLeadService(cache, remote, logger.Nop())
	ctx := context.Background()

	require.NoError(t, cache.Upsert(ctx, cachedLead("lead-1", "srv-lead-1", models.LeadStatusNew)))

	require.NoError(t, svc.Delete(ctx, "lead-1"))

	got, _ := cache.Get(ctx, "lead-1")
	assert.True(t, got.Deleted, "a lead already gone remotely still disappears locally")
}
