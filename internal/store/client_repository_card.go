package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/models"
)

// ClientCardRepository is the SQLite-backed local cache of business
// cards.
type ClientCardRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewClientCardRepository(db *DB, log *logger.Logger) *ClientCardRepository {
	return &ClientCardRepository{db: db, logger: log}
}

// Get implements [LocalStore].
func (r *ClientCardRepository) Get(ctx context.Context, id string) (*models.BusinessCard, error) {
	return r.queryOne(ctx, clientGetCardQuery, id)
}

// GetByServerID implements [LocalStore].
func (r *ClientCardRepository) GetByServerID(ctx context.Context, serverID string) (*models.BusinessCard, error) {
	return r.queryOne(ctx, clientGetCardByServerIDQuery, serverID)
}

// Upsert implements [LocalStore].
func (r *ClientCardRepository) Upsert(ctx context.Context, card *models.BusinessCard) error {
	_, err := r.db.ExecContext(ctx, clientUpsertCardQuery,
		card.ID, card.ServerID, card.UserID,
		card.FirstName, card.LastName, card.CompanyName, card.JobTitle,
		card.Email, card.Phone, card.Website, card.Bio, card.Theme,
		card.CreatedAt, card.UpdatedAt, card.Deleted, card.PendingSync,
	)
	if err != nil {
		r.logger.Err(err).Str("func", "ClientCardRepository.Upsert").Msg("error upserting card")
		return fmt.Errorf("upsert card: %w", err)
	}
	return nil
}

// ListActive implements [LocalStore].
func (r *ClientCardRepository) ListActive(ctx context.Context) ([]*models.BusinessCard, error) {
	return r.queryMany(ctx, clientListActiveCardsQuery)
}

// ListPendingSync implements [LocalSyncStore].
func (r *ClientCardRepository) ListPendingSync(ctx context.Context) ([]*models.BusinessCard, error) {
	return r.queryMany(ctx, clientListPendingCardsQuery)
}

// SoftDelete implements [LocalStore].
func (r *ClientCardRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, clientSoftDeleteCardQuery, models.Now(), id)
	if err != nil {
		return fmt.Errorf("soft delete card: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// MarkSynced implements [LocalSyncStore].
func (r *ClientCardRepository) MarkSynced(ctx context.Context, id, serverID string) error {
	res, err := r.db.ExecContext(ctx, clientMarkCardSyncedQuery, serverID, id)
	if err != nil {
		return fmt.Errorf("mark card synced: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *ClientCardRepository) queryOne(ctx context.Context, query string, arg any) (*models.BusinessCard, error) {
	card, err := scanCard(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	return card, nil
}

func (r *ClientCardRepository) queryMany(ctx context.Context, query string) ([]*models.BusinessCard, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var cards []*models.BusinessCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*models.BusinessCard, error) {
	var card models.BusinessCard
	err := row.Scan(
		&card.ID, &card.ServerID, &card.UserID,
		&card.FirstName, &card.LastName, &card.CompanyName, &card.JobTitle,
		&card.Email, &card.Phone, &card.Website, &card.Bio, &card.Theme,
		&card.CreatedAt, &card.UpdatedAt, &card.Deleted, &card.PendingSync,
	)
	if err != nil {
		return nil, err
	}
	return &card, nil
}
