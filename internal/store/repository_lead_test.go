package store

import (
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharemycard/cardsync/internal/logger"
	"github.com/sharemycard/cardsync/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	return &DB{DB: mockDB, logger: logger.Nop()}, mock
}

func contactRows() *sqlmock.Rows {
	cols := strings.Split("id,user_id,lead_id,first_name,last_name,email_primary,phone_primary,company_name,job_title,city,country,website,notes,source,created_at,updated_at,deleted", ",")
	return sqlmock.NewRows(cols)
}

func TestPostgresLeadRepository_Convert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLeadRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery(getLeadForConvertQuery).
		WithArgs("lead-1", int64(77)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("new"))
	mock.ExpectQuery(createContactQuery).
		WillReturnRows(contactRows().AddRow(
			"contact-1", int64(77), "lead-1", "Grace", "Hopper", "grace@example.com", "",
			"Navy", "", "", "", "", "", "converted",
			int64(1000), int64(1000), false,
		))
	mock.ExpectExec(markLeadConvertedQuery).
		WithArgs(models.LeadStatusConverted, sqlmock.AnyArg(), "lead-1", int64(77)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	contact, err := repo.Convert(context.Background(), 77, "lead-1", &models.Contact{
		SyncMeta:  models.SyncMeta{ID: "contact-1"},
		UserID:    77,
		LeadID:    "lead-1",
		FirstName: "Grace",
		Source:    models.SourceConverted,
	})
	require.NoError(t, err)
	assert.Equal(t, "contact-1", contact.ID)
	assert.Equal(t, "lead-1", contact.LeadID)
	assert.Equal(t, models.SourceConverted, contact.Source)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLeadRepository_Convert_AlreadyConvertedStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLeadRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery(getLeadForConvertQuery).
		WithArgs("lead-1", int64(77)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("converted"))
	mock.ExpectRollback()

	_, err := repo.Convert(context.Background(), 77, "lead-1", &models.Contact{})
	assert.ErrorIs(t, err, ErrLeadAlreadyConverted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLeadRepository_Convert_LosesUniqueLinkRace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLeadRepository(db, logger.Nop())

	// the status read can pass before the competing transaction commits;
	// the partial unique index on contacts.lead_id is the backstop
	mock.ExpectBegin()
	mock.ExpectQuery(getLeadForConvertQuery).
		WithArgs("lead-1", int64(77)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("new"))
	mock.ExpectQuery(createContactQuery).
		WillReturnError(&pgconn.PgError{
			Code:           pgerrcode.UniqueViolation,
			ConstraintName: uniqueLeadLinkConstraint,
		})
	mock.ExpectRollback()

	_, err := repo.Convert(context.Background(), 77, "lead-1", &models.Contact{LeadID: "lead-1"})
	assert.ErrorIs(t, err, ErrLeadAlreadyConverted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLeadRepository_Convert_UnknownLead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLeadRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery(getLeadForConvertQuery).
		WithArgs("missing", int64(77)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}))
	mock.ExpectRollback()

	_, err := repo.Convert(context.Background(), 77, "missing", &models.Contact{})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLeadRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLeadRepository(db, logger.Nop())

	mock.ExpectExec(softDeleteLeadQuery).
		WithArgs(sqlmock.AnyArg(), "lead-1", int64(77)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 77, "lead-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLeadRepository_Delete_AlreadyGone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgresLeadRepository(db, logger.Nop())

	mock.ExpectExec(softDeleteLeadQuery).
		WithArgs(sqlmock.AnyArg(), "lead-1", int64(77)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 77, "lead-1"), ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
