package store

import (
	"context"

	"github.com/sharemycard/cardsync/models"
)

// LocalStore is the minimal per-entity contract the pull phase needs
// from the client cache: counterpart lookup and whole-record writes.
type LocalStore[T any] interface {
	// Get fetches a record by its local identifier. Returns
	// [ErrRecordNotFound] when absent.
	Get(ctx context.Context, id string) (T, error)

	// GetByServerID fetches a record by its stored server identifier.
	// Returns [ErrRecordNotFound] when absent.
	GetByServerID(ctx context.Context, serverID string) (T, error)

	// Upsert inserts or replaces the record, writing every column
	// including the sync bookkeeping.
	Upsert(ctx context.Context, rec T) error

	// ListActive returns all records not soft-deleted, for UI reads.
	ListActive(ctx context.Context) ([]T, error)

	// SoftDelete marks the record deleted and pending so the deletion
	// propagates on the next push.
	SoftDelete(ctx context.Context, id string) error
}

// LocalSyncStore extends [LocalStore] with the bookkeeping the push
// phase needs. Leads are pull-only on the client and implement only
// [LocalStore].
type LocalSyncStore[T any] interface {
	LocalStore[T]

	// ListPendingSync returns records with unpushed local changes.
	ListPendingSync(ctx context.Context) ([]T, error)

	// MarkSynced records a confirmed server accept: stores serverID
	// against the record and clears the pending flag. Called before any
	// further use of the server identifier, so a lost response followed
	// by a retry can never duplicate the create.
	MarkSynced(ctx context.Context, id, serverID string) error
}

// SyncCheckpointStore persists the per-entity delta-pull watermark: the
// server timestamp of the last fully processed pull.
type SyncCheckpointStore interface {
	LastPulledAt(ctx context.Context, entity string) (models.Timestamp, error)
	SetLastPulledAt(ctx context.Context, entity string, ts models.Timestamp) error
}
