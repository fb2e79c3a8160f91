package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/models"
)

// PostgresCardRepository is the PostgreSQL implementation of
// [CardRepository].
type PostgresCardRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPostgresCardRepository(db *DB, log *logger.Logger) *PostgresCardRepository {
	return &PostgresCardRepository{db: db, logger: log}
}

// Create implements [CardRepository].
func (r *PostgresCardRepository) Create(ctx context.Context, card *models.BusinessCard) (*models.BusinessCard, error) {
	row := r.db.QueryRowContext(ctx, createCardQuery,
		card.ID, card.UserID, card.FirstName, card.LastName, card.CompanyName, card.JobTitle,
		card.Email, card.Phone, card.Website, card.Bio, card.Theme,
		card.CreatedAt, card.UpdatedAt, card.Deleted,
	)
	created, err := scanServerCard(row)
	if isUniqueViolation(err, "") {
		return nil, ErrRecordAlreadyExists
	}
	if err != nil {
		r.logger.Err(err).Str("func", "PostgresCardRepository.Create").Msg("error creating card")
		return nil, fmt.Errorf("create card: %w", err)
	}
	return created, nil
}

// Update implements [CardRepository].
func (r *PostgresCardRepository) Update(ctx context.Context, card *models.BusinessCard) (*models.BusinessCard, error) {
	row := r.db.QueryRowContext(ctx, updateCardQuery,
		card.FirstName, card.LastName, card.CompanyName, card.JobTitle,
		card.Email, card.Phone, card.Website, card.Bio, card.Theme,
		card.UpdatedAt, card.Deleted,
		card.ID, card.UserID,
	)
	updated, err := scanServerCard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "PostgresCardRepository.Update").Msg("error updating card")
		return nil, fmt.Errorf("update card: %w", err)
	}
	return updated, nil
}

// Get implements [CardRepository].
func (r *PostgresCardRepository) Get(ctx context.Context, userID int64, id string) (*models.BusinessCard, error) {
	card, err := scanServerCard(r.db.QueryRowContext(ctx, getCardQuery, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	return card, nil
}

// GetAny implements [CardRepository].
func (r *PostgresCardRepository) GetAny(ctx context.Context, id string) (*models.BusinessCard, error) {
	card, err := scanServerCard(r.db.QueryRowContext(ctx, getAnyCardQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	return card, nil
}

// List implements [CardRepository].
func (r *PostgresCardRepository) List(ctx context.Context, userID int64, since models.Timestamp) ([]*models.BusinessCard, error) {
	query, args, err := listCardsSQL(userID, since)
	if err != nil {
		return nil, fmt.Errorf("build list cards query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var cards []*models.BusinessCard
	for rows.Next() {
		card, err := scanServerCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// Delete implements [CardRepository].
func (r *PostgresCardRepository) Delete(ctx context.Context, userID int64, id string) error {
	res, err := r.db.ExecContext(ctx, softDeleteCardQuery, models.Now(), id, userID)
	if err != nil {
		r.logger.Err(err).Str("func", "PostgresCardRepository.Delete").Msg("error deleting card")
		return fmt.Errorf("delete card: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func scanServerCard(row rowScanner) (*models.BusinessCard, error) {
	var card models.BusinessCard
	err := row.Scan(
		&card.ID, &card.UserID, &card.FirstName, &card.LastName, &card.CompanyName, &card.JobTitle,
		&card.Email, &card.Phone, &card.Website, &card.Bio, &card.Theme,
		&card.CreatedAt, &card.UpdatedAt, &card.Deleted,
	)
	if err != nil {
		return nil, err
	}
	return &card, nil
}
