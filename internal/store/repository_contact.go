package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/models"
)

// uniqueLeadLinkConstraint guards the one-contact-per-lead invariant in
// the contacts table. Racing conversions lose on this index.
const uniqueLeadLinkConstraint = "idx_contacts_lead_id"

// PostgresContactRepository is the PostgreSQL implementation of
// [ContactRepository].
type PostgresContactRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPostgresContactRepository(db *DB, log *logger.Logger) *PostgresContactRepository {
	return &PostgresContactRepository{db: db, logger: log}
}

// Create implements [ContactRepository].
func (r *PostgresContactRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	created, err := insertContact(ctx, r.db.DB, contact)
	if err != nil {
		r.logger.Err(err).Str("func", "PostgresContactRepository.Create").Msg("error creating contact")
		return nil, err
	}
	return created, nil
}

// Update implements [ContactRepository].
func (r *PostgresContactRepository) Update(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	row := r.db.QueryRowContext(ctx, updateContactQuery,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone,
		contact.CompanyName, contact.JobTitle, contact.City, contact.Country,
		contact.Website, contact.Notes, contact.UpdatedAt, contact.Deleted,
		contact.ID, contact.UserID,
	)
	updated, err := scanServerContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "PostgresContactRepository.Update").Msg("error updating contact")
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return updated, nil
}

// Get implements [ContactRepository].
func (r *PostgresContactRepository) Get(ctx context.Context, userID int64, id string) (*models.Contact, error) {
	contact, err := scanServerContact(r.db.QueryRowContext(ctx, getContactQuery, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return contact, nil
}

// List implements [ContactRepository].
func (r *PostgresContactRepository) List(ctx context.Context, userID int64, since models.Timestamp) ([]*models.Contact, error) {
	query, args, err := listContactsSQL(userID, since)
	if err != nil {
		return nil, fmt.Errorf("build list contacts query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*models.Contact
	for rows.Next() {
		contact, err := scanServerContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}

// Delete implements [ContactRepository]. The soft delete and the lead
// revert commit together or not at all, so a converted lead can never
// end up pointing at a deleted contact while still marked converted.
func (r *PostgresContactRepository) Delete(ctx context.Context, userID int64, id string) (models.DeleteContactResult, error) {
	var result models.DeleteContactResult

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("begin delete contact tx: %w", err)
	}
	defer tx.Rollback()

	var leadID string
	err = tx.QueryRowContext(ctx, softDeleteContactQuery, models.Now(), id, userID).Scan(&leadID)
	if errors.Is(err, sql.ErrNoRows) {
		return result, ErrRecordNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "PostgresContactRepository.Delete").Msg("error deleting contact")
		return result, fmt.Errorf("delete contact: %w", err)
	}

	if leadID != "" {
		res, err := tx.ExecContext(ctx, revertLeadQuery,
			models.LeadStatusNew, models.Now(), leadID, userID, models.LeadStatusConverted)
		if err != nil {
			r.logger.Err(err).Str("func", "PostgresContactRepository.Delete").Msg("error reverting lead")
			return result, fmt.Errorf("revert lead: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			result.LeadReverted = true
			result.LeadID = leadID
		}
	}

	if err = tx.Commit(); err != nil {
		return models.DeleteContactResult{}, fmt.Errorf("commit delete contact tx: %w", err)
	}
	return result, nil
}

// insertContact runs the contact insert on any executor so the
// conversion transaction in the lead repository can reuse it.
func insertContact(ctx context.Context, execer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}, contact *models.Contact) (*models.Contact, error) {
	row := execer.QueryRowContext(ctx, createContactQuery,
		contact.ID, contact.UserID, contact.LeadID,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone,
		contact.CompanyName, contact.JobTitle, contact.City, contact.Country,
		contact.Website, contact.Notes, contact.Source,
		contact.CreatedAt, contact.UpdatedAt, contact.Deleted,
	)
	created, err := scanServerContact(row)
	if isUniqueViolation(err, uniqueLeadLinkConstraint) {
		return nil, ErrLeadAlreadyConverted
	}
	if isUniqueViolation(err, "") {
		return nil, ErrRecordAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return created, nil
}

func scanServerContact(row rowScanner) (*models.Contact, error) {
	var contact models.Contact
	err := row.Scan(
		&contact.ID, &contact.UserID, &contact.LeadID,
		&contact.FirstName, &contact.LastName, &contact.Email, &contact.Phone,
		&contact.CompanyName, &contact.JobTitle, &contact.City, &contact.Country,
		&contact.Website, &contact.Notes, &contact.Source,
		&contact.CreatedAt, &contact.UpdatedAt, &contact.Deleted,
	)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}
