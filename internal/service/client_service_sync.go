package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sharemycard/cardsync/internal/adapter"
	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/internal/store"
	"github.com/sharemycard/cardsync/models"
)

// Checkpoint keys, one delta-pull watermark per entity.
const (
	entityCards    = "cards"
	entityContacts = "contacts"
	entityLeads    = "leads"
)

type syncService struct {
	server adapter.ServerAdapter
	cache  *store.ClientStorages

	resolver mergeResolver

	// mu serializes cycles; TryLock makes concurrent callers fail fast
	// instead of queueing up.
	mu sync.Mutex

	logger *logger.Logger
}

func NewSyncService(server adapter.ServerAdapter, cache *store.ClientStorages, logger *logger.Logger) SyncService {
	return &syncService{server: server, cache: cache, logger: logger}
}

// Sync implements [SyncService]. The cycle pushes local changes first
// (cards, then contacts), then pulls server changes (cards, contacts,
// leads), so a freshly pushed record comes back with its server
// identity already mapped and is not duplicated.
//
// An unreachable or rejecting-authentication server aborts the whole
// cycle; everything already pushed stays pushed and the rest stays
// pending. Per-record rejections never abort: the record is skipped,
// counted, and retried on the next cycle.
func (s *syncService) Sync(ctx context.Context) (models.SyncResult, error) {
	if !s.mu.TryLock() {
		return models.SyncResult{Message: ErrSyncInFlight.Error()}, ErrSyncInFlight
	}
	defer s.mu.Unlock()

	log := s.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("component", "sync")
	})
	log.Info().Msg("sync cycle started")

	var res models.SyncResult
	var failed int

	cards := s.server.Cards()
	contacts := s.server.Contacts()
	leads := s.server.Leads()

	// Contact deletions must travel through the dedicated endpoint so a
	// converted lead is reverted together with the removal.
	deleteContact := func(ctx context.Context, serverID string) error {
		result, err := s.server.DeleteContact(ctx, serverID)
		if err == nil && result.LeadReverted {
			log.Info().Str("lead_id", result.LeadID).Msg("lead reverted by contact deletion")
		}
		return err
	}

	pushes := []func() (int, error){
		func() (int, error) { return pushEntity(ctx, entityCards, cards, cards.Delete, s.cache.Cards, &res, log) },
		func() (int, error) {
			return pushEntity(ctx, entityContacts, contacts, deleteContact, s.cache.Contacts, &res, log)
		},
	}
	for _, push := range pushes {
		n, err := push()
		failed += n
		if err != nil {
			return s.aborted(res, err)
		}
	}

	pulls := []func() error{
		func() error {
			return pullEntity(ctx, entityCards, cards.List, s.cache.Cards, s.cache.Checkpoints, s.resolver, &res, log)
		},
		func() error {
			return pullEntity(ctx, entityContacts, contacts.List, s.cache.Contacts, s.cache.Checkpoints, s.resolver, &res, log)
		},
		func() error {
			return pullEntity(ctx, entityLeads, leads.List, s.cache.Leads, s.cache.Checkpoints, s.resolver, &res, log)
		},
	}
	for _, pull := range pulls {
		if err := pull(); err != nil {
			return s.aborted(res, err)
		}
	}

	res.Success = failed == 0 && res.Conflicts == 0
	if !res.Success {
		res.Message = fmt.Sprintf("%d record(s) rejected, %d conflict(s); will retry next cycle", failed, res.Conflicts)
	}
	log.Info().
		Int("pushed", res.Pushed).Int("pulled", res.Pulled).
		Int("conflicts", res.Conflicts).Int("failed", failed).
		Msg("sync cycle finished")

	return res, nil
}

func (s *syncService) aborted(res models.SyncResult, err error) (models.SyncResult, error) {
	s.logger.Err(err).Str("func", "syncService.Sync").Msg("sync cycle aborted")
	res.Success = false
	res.Message = err.Error()
	return res, err
}

// fatalSyncError reports whether err must abort the whole cycle rather
// than skip one record.
func fatalSyncError(err error) bool {
	return errors.Is(err, adapter.ErrNetwork) || errors.Is(err, adapter.ErrUnauthorized)
}

// pushEntity uploads every pending record of one entity. It returns the
// number of per-record failures left pending, and a non-nil error only
// for conditions that abort the cycle (transport, auth, or a broken
// local cache).
func pushEntity[T Syncable](
	ctx context.Context,
	kind string,
	remote adapter.EntityRemote[T],
	deleteFn func(ctx context.Context, serverID string) error,
	local store.LocalSyncStore[T],
	res *models.SyncResult,
	log *logger.Logger,
) (int, error) {
	pending, err := local.ListPendingSync(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pending %s: %w", kind, err)
	}

	var failed int
	for _, rec := range pending {
		meta := rec.Meta()

		var pushErr error
		switch {
		case meta.Deleted && meta.ServerID == "":
			// Created and deleted between syncs; the server never saw it.
			if err = local.MarkSynced(ctx, meta.ID, ""); err != nil {
				return failed, fmt.Errorf("retire local-only %s: %w", kind, err)
			}
			continue

		case meta.Deleted:
			pushErr = deleteFn(ctx, meta.ServerID)
			if errors.Is(pushErr, adapter.ErrNotFound) {
				// Already gone on the server; converging, not failing.
				pushErr = nil
			}
			if pushErr == nil {
				if err = local.MarkSynced(ctx, meta.ID, meta.ServerID); err != nil {
					return failed, fmt.Errorf("mark %s synced: %w", kind, err)
				}
			}

		case meta.ServerID == "":
			var created T
			created, pushErr = remote.Create(ctx, rec)
			if pushErr == nil {
				// The server identity is durable before it is ever used,
				// so a crash here cannot lead to a duplicate create.
				if err = local.MarkSynced(ctx, meta.ID, created.Meta().ID); err != nil {
					return failed, fmt.Errorf("mark %s synced: %w", kind, err)
				}
			}

		default:
			_, pushErr = remote.Update(ctx, rec)
			if pushErr == nil {
				if err = local.MarkSynced(ctx, meta.ID, meta.ServerID); err != nil {
					return failed, fmt.Errorf("mark %s synced: %w", kind, err)
				}
			}
		}

		switch {
		case pushErr == nil:
			res.Pushed++
		case fatalSyncError(pushErr):
			return failed, pushErr
		case errors.Is(pushErr, adapter.ErrConflict):
			res.Conflicts++
			log.Warn().Str("entity", kind).Str("id", meta.ID).Err(pushErr).Msg("push conflict, record stays pending")
		default:
			failed++
			log.Warn().Str("entity", kind).Str("id", meta.ID).Err(pushErr).Msg("push rejected, record stays pending")
		}
	}

	return failed, nil
}

// pullEntity downloads records changed since the stored watermark and
// folds them into the cache through the merge resolver. The watermark
// advances only after the whole page is processed, so an aborted pull
// repeats records instead of losing them.
func pullEntity[T Syncable](
	ctx context.Context,
	kind string,
	list func(ctx context.Context, since models.Timestamp) ([]T, error),
	local store.LocalStore[T],
	checkpoints store.SyncCheckpointStore,
	resolver mergeResolver,
	res *models.SyncResult,
	log *logger.Logger,
) error {
	since, err := checkpoints.LastPulledAt(ctx, kind)
	if err != nil {
		return fmt.Errorf("read %s checkpoint: %w", kind, err)
	}

	items, err := list(ctx, since)
	if err != nil {
		return fmt.Errorf("pull %s: %w", kind, err)
	}

	ids := identityMapper[T]{local: local}
	watermark := since

	for _, rec := range items {
		rmeta := rec.Meta()
		if rmeta.UpdatedAt.After(watermark) {
			watermark = rmeta.UpdatedAt
		}

		counterpart, found, err := ids.findLocal(ctx, rec)
		if err != nil {
			return fmt.Errorf("match pulled %s: %w", kind, err)
		}
		var localMeta *models.SyncMeta
		if found {
			localMeta = counterpart.Meta()
		}

		switch resolver.Resolve(localMeta, rmeta) {
		case CreateLocal:
			if rmeta.Deleted {
				// A tombstone for a record this device never had.
				continue
			}
			ids.adopt(rec, nil)
			if err = local.Upsert(ctx, rec); err != nil {
				return fmt.Errorf("store pulled %s: %w", kind, err)
			}
			res.Pulled++

		case TakeRemote:
			ids.adopt(rec, localMeta)
			if err = local.Upsert(ctx, rec); err != nil {
				return fmt.Errorf("store pulled %s: %w", kind, err)
			}
			res.Pulled++

		case KeepLocal:
			// The local revision is newer; it goes up on the next push.
			log.Debug().Str("entity", kind).Str("id", rmeta.ID).Msg("local revision newer, remote ignored")

		case NoChange:
		}
	}

	if err = checkpoints.SetLastPulledAt(ctx, kind, watermark); err != nil {
		return fmt.Errorf("advance %s checkpoint: %w", kind, err)
	}
	return nil
}
