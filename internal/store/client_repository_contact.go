package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/models"
)

// ClientContactRepository is the SQLite-backed local cache of contacts.
type ClientContactRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewClientContactRepository(db *DB, log *logger.Logger) *ClientContactRepository {
	return &ClientContactRepository{db: db, logger: log}
}

// Get implements [LocalStore].
func (r *ClientContactRepository) Get(ctx context.Context, id string) (*models.Contact, error) {
	return r.queryOne(ctx, clientGetContactQuery, id)
}

// GetByServerID implements [LocalStore].
func (r *ClientContactRepository) GetByServerID(ctx context.Context, serverID string) (*models.Contact, error) {
	return r.queryOne(ctx, clientGetContactByServerIDQuery, serverID)
}

// Upsert implements [LocalStore].
func (r *ClientContactRepository) Upsert(ctx context.Context, contact *models.Contact) error {
	_, err := r.db.ExecContext(ctx, clientUpsertContactQuery,
		contact.ID, contact.ServerID, contact.UserID, contact.LeadID,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone,
		contact.CompanyName, contact.JobTitle, contact.City, contact.Country,
		contact.Website, contact.Notes, contact.Source,
		contact.CreatedAt, contact.UpdatedAt, contact.Deleted, contact.PendingSync,
	)
	if err != nil {
		r.logger.Err(err).Str("func", "ClientContactRepository.Upsert").Msg("error upserting contact")
		return fmt.Errorf("upsert contact: %w", err)
	}
	return nil
}

// ListActive implements [LocalStore].
func (r *ClientContactRepository) ListActive(ctx context.Context) ([]*models.Contact, error) {
	return r.queryMany(ctx, clientListActiveContactsQuery)
}

// ListPendingSync implements [LocalSyncStore].
func (r *ClientContactRepository) ListPendingSync(ctx context.Context) ([]*models.Contact, error) {
	return r.queryMany(ctx, clientListPendingContactsQuery)
}

// SoftDelete implements [LocalStore].
func (r *ClientContactRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, clientSoftDeleteContactQuery, models.Now(), id)
	if err != nil {
		return fmt.Errorf("soft delete contact: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// MarkSynced implements [LocalSyncStore].
func (r *ClientContactRepository) MarkSynced(ctx context.Context, id, serverID string) error {
	res, err := r.db.ExecContext(ctx, clientMarkContactSyncedQuery, serverID, id)
	if err != nil {
		return fmt.Errorf("mark contact synced: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *ClientContactRepository) queryOne(ctx context.Context, query string, arg any) (*models.Contact, error) {
	contact, err := scanContact(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return contact, nil
}

func (r *ClientContactRepository) queryMany(ctx context.Context, query string) ([]*models.Contact, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*models.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}

func scanContact(row rowScanner) (*models.Contact, error) {
	var contact models.Contact
	err := row.Scan(
		&contact.ID, &contact.ServerID, &contact.UserID, &contact.LeadID,
		&contact.FirstName, &contact.LastName, &contact.Email, &contact.Phone,
		&contact.CompanyName, &contact.JobTitle, &contact.City, &contact.Country,
		&contact.Website, &contact.Notes, &contact.Source,
		&contact.CreatedAt, &contact.UpdatedAt, &contact.Deleted, &contact.PendingSync,
	)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}
