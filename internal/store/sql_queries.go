package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/sharemycard/cardsync/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	createUserQuery = `
		INSERT INTO users (login, password_hash, created_at)
		VALUES ($1, $2, $3)
		RETURNING user_id`
	getUserByLoginQuery = `
		SELECT user_id, login, password_hash, created_at
		FROM users
		WHERE login = $1`

	cardColumns = `id, user_id, first_name, last_name, company_name, job_title,
		email, phone, website, bio, theme, created_at, updated_at, deleted`

	createCardQuery = `
		INSERT INTO business_cards
		    (id, user_id, first_name, last_name, company_name, job_title,
		     email, phone, website, bio, theme, created_at, updated_at, deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + cardColumns
	updateCardQuery = `
		UPDATE business_cards
		SET first_name = $1, last_name = $2, company_name = $3, job_title = $4,
		    email = $5, phone = $6, website = $7, bio = $8, theme = $9,
		    updated_at = $10, deleted = $11
		WHERE id = $12 AND user_id = $13
		RETURNING ` + cardColumns
	getCardQuery = `
		SELECT ` + cardColumns + `
		FROM business_cards
		WHERE id = $1 AND user_id = $2`
	getAnyCardQuery = `
		SELECT ` + cardColumns + `
		FROM business_cards
		WHERE id = $1`
	softDeleteCardQuery = `
		UPDATE business_cards
		SET deleted = TRUE, updated_at = $1
		WHERE id = $2 AND user_id = $3 AND NOT deleted`

	contactColumns = `id, user_id, lead_id, first_name, last_name, email_primary, phone_primary,
		company_name, job_title, city, country, website, notes, source,
		created_at, updated_at, deleted`

	createContactQuery = `
		INSERT INTO contacts
		    (id, user_id, lead_id, first_name, last_name, email_primary, phone_primary,
		     company_name, job_title, city, country, website, notes, source,
		     created_at, updated_at, deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + contactColumns
	updateContactQuery = `
		UPDATE contacts
		SET first_name = $1, last_name = $2, email_primary = $3, phone_primary = $4,
		    company_name = $5, job_title = $6, city = $7, country = $8,
		    website = $9, notes = $10, updated_at = $11, deleted = $12
		WHERE id = $13 AND user_id = $14
		RETURNING ` + contactColumns
	getContactQuery = `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE id = $1 AND user_id = $2`
	softDeleteContactQuery = `
		UPDATE contacts
		SET deleted = TRUE, updated_at = $1
		WHERE id = $2 AND user_id = $3 AND NOT deleted
		RETURNING lead_id`

	leadColumns = `l.id, l.card_id, l.user_id, l.first_name, l.last_name, l.email,
		l.work_phone, l.mobile_phone, l.organization_name, l.job_title, l.website,
		l.comments, l.status, l.created_at, l.updated_at, l.deleted,
		c.first_name, c.last_name, c.company_name`

	createLeadQuery = `
		INSERT INTO leads
		    (id, card_id, user_id, first_name, last_name, email, work_phone, mobile_phone,
		     organization_name, job_title, website, comments, status, created_at, updated_at, deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	getLeadQuery = `
		SELECT ` + leadColumns + `
		FROM leads l
		JOIN business_cards c ON c.id = l.card_id
		WHERE l.id = $1 AND l.user_id = $2`
	getLeadForConvertQuery = `
		SELECT status
		FROM leads
		WHERE id = $1 AND user_id = $2 AND NOT deleted
		FOR UPDATE`
	markLeadConvertedQuery = `
		UPDATE leads
		SET status = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4`
	revertLeadQuery = `
		UPDATE leads
		SET status = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4 AND status = $5`
	softDeleteLeadQuery = `
		UPDATE leads
		SET deleted = TRUE, updated_at = $1
		WHERE id = $2 AND user_id = $3 AND NOT deleted`
)

// listCardsSQL builds the delta listing for cards: everything the user
// changed strictly after since, soft-deleted rows included.
func listCardsSQL(userID int64, since models.Timestamp) (string, []any, error) {
	builder := psql.
		Select("id", "user_id", "first_name", "last_name", "company_name", "job_title",
			"email", "phone", "website", "bio", "theme", "created_at", "updated_at", "deleted").
		From("business_cards").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at ASC")
	if !since.IsZero() {
		builder = builder.Where(sq.Gt{"updated_at": int64(since)})
	}
	return builder.ToSql()
}

func listContactsSQL(userID int64, since models.Timestamp) (string, []any, error) {
	builder := psql.
		Select("id", "user_id", "lead_id", "first_name", "last_name", "email_primary", "phone_primary",
			"company_name", "job_title", "city", "country", "website", "notes", "source",
			"created_at", "updated_at", "deleted").
		From("contacts").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at ASC")
	if !since.IsZero() {
		builder = builder.Where(sq.Gt{"updated_at": int64(since)})
	}
	return builder.ToSql()
}

func listLeadsSQL(userID int64, since models.Timestamp) (string, []any, error) {
	builder := psql.
		Select("l.id", "l.card_id", "l.user_id", "l.first_name", "l.last_name", "l.email",
			"l.work_phone", "l.mobile_phone", "l.organization_name", "l.job_title", "l.website",
			"l.comments", "l.status", "l.created_at", "l.updated_at", "l.deleted",
			"c.first_name", "c.last_name", "c.company_name").
		From("leads l").
		Join("business_cards c ON c.id = l.card_id").
		Where(sq.Eq{"l.user_id": userID}).
		OrderBy("l.updated_at ASC")
	if !since.IsZero() {
		builder = builder.Where(sq.Gt{"l.updated_at": int64(since)})
	}
	return builder.ToSql()
}
