package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/models"
)

// ClientLeadRepository is the SQLite-backed local cache of leads. Leads
// originate on the server (public card scans), so the cache is
// pull-only and keeps no pending-sync bookkeeping.
type ClientLeadRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewClientLeadRepository(db *DB, log *logger.Logger) *ClientLeadRepository {
	return &ClientLeadRepository{db: db, logger: log}
}

// Get implements [LocalStore].
func (r *ClientLeadRepository) Get(ctx context.Context, id string) (*models.Lead, error) {
	return r.queryOne(ctx, clientGetLeadQuery, id)
}

// GetByServerID implements [LocalStore].
func (r *ClientLeadRepository) GetByServerID(ctx context.Context, serverID string) (*models.Lead, error) {
	return r.queryOne(ctx, clientGetLeadByServerIDQuery, serverID)
}

// Upsert implements [LocalStore].
func (r *ClientLeadRepository) Upsert(ctx context.Context, lead *models.Lead) error {
	_, err := r.db.ExecContext(ctx, clientUpsertLeadQuery,
		lead.ID, lead.ServerID, lead.UserID, lead.CardID,
		lead.FirstName, lead.LastName, lead.Email, lead.WorkPhone, lead.MobilePhone,
		lead.OrganizationName, lead.JobTitle, lead.Website, lead.Comments, lead.Status,
		lead.CreatedAt, lead.UpdatedAt, lead.Deleted,
	)
	if err != nil {
		r.logger.Err(err).Str("func", "ClientLeadRepository.Upsert").Msg("error upserting lead")
		return fmt.Errorf("upsert lead: %w", err)
	}
	return nil
}

// ListActive implements [LocalStore].
func (r *ClientLeadRepository) ListActive(ctx context.Context) ([]*models.Lead, error) {
	rows, err := r.db.QueryContext(ctx, clientListActiveLeadsQuery)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []*models.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

// SoftDelete implements [LocalStore].
func (r *ClientLeadRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, clientSoftDeleteLeadQuery, models.Now(), id)
	if err != nil {
		return fmt.Errorf("soft delete lead: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *ClientLeadRepository) queryOne(ctx context.Context, query string, arg any) (*models.Lead, error) {
	lead, err := scanLead(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return lead, nil
}

func scanLead(row rowScanner) (*models.Lead, error) {
	var lead models.Lead
	err := row.Scan(
		&lead.ID, &lead.ServerID, &lead.UserID, &lead.CardID,
		&lead.FirstName, &lead.LastName, &lead.Email, &lead.WorkPhone, &lead.MobilePhone,
		&lead.OrganizationName, &lead.JobTitle, &lead.Website, &lead.Comments, &lead.Status,
		&lead.CreatedAt, &lead.UpdatedAt, &lead.Deleted,
	)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}
