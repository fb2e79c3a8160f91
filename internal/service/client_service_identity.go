package service

import (
	"context"
	"errors"

	"github.com/sharemycard/cardsync/internal/store"
	"github.com/sharemycard/cardsync/models"
)

// identityMapper resolves which cached record corresponds to a record
// arriving from the server, and grafts the local identity onto adopted
// remote records so the stable local identifier never changes.
type identityMapper[T Syncable] struct {
	local store.LocalStore[T]
}

// findLocal locates the cached counterpart of a pulled record. The
// stored server identifier is authoritative; matching by raw identifier
// is the fallback for records created from an earlier pull, where the
// two coincide.
func (m identityMapper[T]) findLocal(ctx context.Context, remote T) (T, bool, error) {
	var zero T
	serverID := remote.Meta().ID

	rec, err := m.local.GetByServerID(ctx, serverID)
	if err == nil {
		return rec, true, nil
	}
	if !errors.Is(err, store.ErrRecordNotFound) {
		return zero, false, err
	}

	rec, err = m.local.Get(ctx, serverID)
	if err == nil {
		return rec, true, nil
	}
	if !errors.Is(err, store.ErrRecordNotFound) {
		return zero, false, err
	}

	return zero, false, nil
}

// adopt rewrites the pulled record's bookkeeping for local storage:
// the wire identifier becomes the server identifier, the local
// identifier is inherited from the counterpart when one exists, and the
// record lands clean (nothing pending).
func (identityMapper[T]) adopt(remote T, local *models.SyncMeta) {
	meta := remote.Meta()
	meta.ServerID = meta.ID
	if local != nil {
		meta.ID = local.ID
	}
	meta.PendingSync = false
}
