package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/models"
)

// ClientCheckpointRepository keeps the per-entity delta-pull watermarks
// in the local cache. A missing row means "never pulled" and reads as
// the zero timestamp, which makes the first pull a full pull.
type ClientCheckpointRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewClientCheckpointRepository(db *DB, log *logger.Logger) *ClientCheckpointRepository {
	return &ClientCheckpointRepository{db: db, logger: log}
}

// LastPulledAt implements [SyncCheckpointStore].
func (r *ClientCheckpointRepository) LastPulledAt(ctx context.Context, entity string) (models.Timestamp, error) {
	var ts models.Timestamp
	err := r.db.QueryRowContext(ctx, clientGetCheckpointQuery, entity).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get checkpoint for %s: %w", entity, err)
	}
	return ts, nil
}

// SetLastPulledAt implements [SyncCheckpointStore].
func (r *ClientCheckpointRepository) SetLastPulledAt(ctx context.Context, entity string, ts models.Timestamp) error {
	if _, err := r.db.ExecContext(ctx, clientSetCheckpointQuery, entity, ts); err != nil {
		r.logger.Err(err).Str("func", "ClientCheckpointRepository.SetLastPulledAt").Msg("error saving checkpoint")
		return fmt.Errorf("set checkpoint for %s: %w", entity, err)
	}
	return nil
}
