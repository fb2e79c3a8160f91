package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/models"
)

// PostgresLeadRepository is the PostgreSQL implementation of
// [LeadRepository].
type PostgresLeadRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPostgresLeadRepository(db *DB, log *logger.Logger) *PostgresLeadRepository {
	return &PostgresLeadRepository{db: db, logger: log}
}

// Create implements [LeadRepository].
func (r *PostgresLeadRepository) Create(ctx context.Context, lead *models.Lead) (*models.Lead, error) {
	_, err := r.db.ExecContext(ctx, createLeadQuery,
		lead.ID, lead.CardID, lead.UserID,
		lead.FirstName, lead.LastName, lead.Email, lead.WorkPhone, lead.MobilePhone,
		lead.OrganizationName, lead.JobTitle, lead.Website, lead.Comments, lead.Status,
		lead.CreatedAt, lead.UpdatedAt, lead.Deleted,
	)
	if isUniqueViolation(err, "") {
		return nil, ErrRecordAlreadyExists
	}
	if err != nil {
		r.logger.Err(err).Str("func", "PostgresLeadRepository.Create").Msg("error creating lead")
		return nil, fmt.Errorf("create lead: %w", err)
	}
	return lead, nil
}

// Get implements [LeadRepository].
func (r *PostgresLeadRepository) Get(ctx context.Context, userID int64, id string) (*models.Lead, error) {
	lead, err := scanServerLead(r.db.QueryRowContext(ctx, getLeadQuery, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return lead, nil
}

// List implements [LeadRepository].
func (r *PostgresLeadRepository) List(ctx context.Context, userID int64, since models.Timestamp) ([]*models.Lead, error) {
	query, args, err := listLeadsSQL(userID, since)
	if err != nil {
		return nil, fmt.Errorf("build list leads query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []*models.Lead
	for rows.Next() {
		lead, err := scanServerLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

// Convert implements [LeadRepository]. The lead row is locked first so
// concurrent conversions serialize; whichever transaction sees the lead
// already converted, or loses the unique lead-link index race, reports
// [ErrLeadAlreadyConverted] without side effects.
func (r *PostgresLeadRepository) Convert(ctx context.Context, userID int64, leadID string, contact *models.Contact) (*models.Contact, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin convert tx: %w", err)
	}
	defer tx.Rollback()

	var status models.LeadStatus
	err = tx.QueryRowContext(ctx, getLeadForConvertQuery, leadID, userID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock lead for convert: %w", err)
	}
	if status == models.LeadStatusConverted {
		return nil, ErrLeadAlreadyConverted
	}

	created, err := insertContact(ctx, tx, contact)
	if err != nil {
		r.logger.Err(err).Str("func", "PostgresLeadRepository.Convert").Msg("error inserting converted contact")
		return nil, err
	}

	if _, err = tx.ExecContext(ctx, markLeadConvertedQuery,
		models.LeadStatusConverted, models.Now(), leadID, userID); err != nil {
		r.logger.Err(err).Str("func", "PostgresLeadRepository.Convert").Msg("error marking lead converted")
		return nil, fmt.Errorf("mark lead converted: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit convert tx: %w", err)
	}
	return created, nil
}

// Delete implements [LeadRepository].
func (r *PostgresLeadRepository) Delete(ctx context.Context, userID int64, id string) error {
	res, err := r.db.ExecContext(ctx, softDeleteLeadQuery, models.Now(), id, userID)
	if err != nil {
		r.logger.Err(err).Str("func", "PostgresLeadRepository.Delete").Msg("error deleting lead")
		return fmt.Errorf("delete lead: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func scanServerLead(row rowScanner) (*models.Lead, error) {
	var lead models.Lead
	err := row.Scan(
		&lead.ID, &lead.CardID, &lead.UserID,
		&lead.FirstName, &lead.LastName, &lead.Email, &lead.WorkPhone, &lead.MobilePhone,
		&lead.OrganizationName, &lead.JobTitle, &lead.Website, &lead.Comments, &lead.Status,
		&lead.CreatedAt, &lead.UpdatedAt, &lead.Deleted,
		&lead.CardFirstName, &lead.CardLastName, &lead.CardCompany,
	)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}
