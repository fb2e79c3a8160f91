package store

// clientSchema bootstraps the local cache. The cache mirrors the server
// entities plus sync bookkeeping: server_id maps local records to their
// server counterparts, pending_sync flags unpushed changes, and
// sync_checkpoints keeps the per-entity delta-pull watermark.
const clientSchema = `
CREATE TABLE IF NOT EXISTS business_cards (
    id           TEXT PRIMARY KEY,
    server_id    TEXT    NOT NULL DEFAULT '',
    user_id      INTEGER NOT NULL DEFAULT 0,
    first_name   TEXT    NOT NULL DEFAULT '',
    last_name    TEXT    NOT NULL DEFAULT '',
    company_name TEXT    NOT NULL DEFAULT '',
    job_title    TEXT    NOT NULL DEFAULT '',
    email        TEXT    NOT NULL DEFAULT '',
    phone        TEXT    NOT NULL DEFAULT '',
    website      TEXT    NOT NULL DEFAULT '',
    bio          TEXT    NOT NULL DEFAULT '',
    theme        TEXT    NOT NULL DEFAULT '',
    created_at   INTEGER NOT NULL DEFAULT 0,
    updated_at   INTEGER NOT NULL DEFAULT 0,
    deleted      INTEGER NOT NULL DEFAULT 0,
    pending_sync INTEGER NOT NULL DEFAULT 0
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_business_cards_server_id
    ON business_cards (server_id) WHERE server_id <> '';

CREATE TABLE IF NOT EXISTS contacts (
    id            TEXT PRIMARY KEY,
    server_id     TEXT    NOT NULL DEFAULT '',
    user_id       INTEGER NOT NULL DEFAULT 0,
    lead_id       TEXT    NOT NULL DEFAULT '',
    first_name    TEXT    NOT NULL DEFAULT '',
    last_name     TEXT    NOT NULL DEFAULT '',
    email_primary TEXT    NOT NULL DEFAULT '',
    phone_primary TEXT    NOT NULL DEFAULT '',
    company_name  TEXT    NOT NULL DEFAULT '',
    job_title     TEXT    NOT NULL DEFAULT '',
    city          TEXT    NOT NULL DEFAULT '',
    country       TEXT    NOT NULL DEFAULT '',
    website       TEXT    NOT NULL DEFAULT '',
    notes         TEXT    NOT NULL DEFAULT '',
    source        TEXT    NOT NULL DEFAULT 'manual',
    created_at    INTEGER NOT NULL DEFAULT 0,
    updated_at    INTEGER NOT NULL DEFAULT 0,
    deleted       INTEGER NOT NULL DEFAULT 0,
    pending_sync  INTEGER NOT NULL DEFAULT 0
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_contacts_server_id
    ON contacts (server_id) WHERE server_id <> '';

CREATE TABLE IF NOT EXISTS leads (
    id                TEXT PRIMARY KEY,
    server_id         TEXT    NOT NULL DEFAULT '',
    user_id           INTEGER NOT NULL DEFAULT 0,
    card_id           TEXT    NOT NULL DEFAULT '',
    first_name        TEXT    NOT NULL DEFAULT '',
    last_name         TEXT    NOT NULL DEFAULT '',
    email             TEXT    NOT NULL DEFAULT '',
    work_phone        TEXT    NOT NULL DEFAULT '',
    mobile_phone      TEXT    NOT NULL DEFAULT '',
    organization_name TEXT    NOT NULL DEFAULT '',
    job_title         TEXT    NOT NULL DEFAULT '',
    website           TEXT    NOT NULL DEFAULT '',
    comments          TEXT    NOT NULL DEFAULT '',
    status            TEXT    NOT NULL DEFAULT 'new',
    created_at        INTEGER NOT NULL DEFAULT 0,
    updated_at        INTEGER NOT NULL DEFAULT 0,
    deleted           INTEGER NOT NULL DEFAULT 0
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_leads_server_id
    ON leads (server_id) WHERE server_id <> '';

CREATE TABLE IF NOT EXISTS sync_checkpoints (
    entity         TEXT PRIMARY KEY,
    last_pulled_at INTEGER NOT NULL DEFAULT 0
);
`

const (
	clientUpsertCardQuery = `
		INSERT INTO business_cards
		    (id, server_id, user_id, first_name, last_name, company_name, job_title,
		     email, phone, website, bio, theme, created_at, updated_at, deleted, pending_sync)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
		    server_id = excluded.server_id, user_id = excluded.user_id,
		    first_name = excluded.first_name, last_name = excluded.last_name,
		    company_name = excluded.company_name, job_title = excluded.job_title,
		    email = excluded.email, phone = excluded.phone, website = excluded.website,
		    bio = excluded.bio, theme = excluded.theme,
		    created_at = excluded.created_at, updated_at = excluded.updated_at,
		    deleted = excluded.deleted, pending_sync = excluded.pending_sync`

	clientSelectCardColumns = `
		SELECT id, server_id, user_id, first_name, last_name, company_name, job_title,
		       email, phone, website, bio, theme, created_at, updated_at, deleted, pending_sync
		FROM business_cards`

	clientGetCardQuery            = clientSelectCardColumns + ` WHERE id = ?`
	clientGetCardByServerIDQuery  = clientSelectCardColumns + ` WHERE server_id = ?`
	clientListActiveCardsQuery    = clientSelectCardColumns + ` WHERE deleted = 0 ORDER BY updated_at DESC`
	clientListPendingCardsQuery   = clientSelectCardColumns + ` WHERE pending_sync = 1 ORDER BY updated_at ASC`
	clientSoftDeleteCardQuery     = `UPDATE business_cards SET deleted = 1, pending_sync = 1, updated_at = ? WHERE id = ?`
	clientMarkCardSyncedQuery     = `UPDATE business_cards SET server_id = ?, pending_sync = 0 WHERE id = ?`

	clientUpsertContactQuery = `
		INSERT INTO contacts
		    (id, server_id, user_id, lead_id, first_name, last_name, email_primary, phone_primary,
		     company_name, job_title, city, country, website, notes, source,
		     created_at, updated_at, deleted, pending_sync)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
		    server_id = excluded.server_id, user_id = excluded.user_id, lead_id = excluded.lead_id,
		    first_name = excluded.first_name, last_name = excluded.last_name,
		    email_primary = excluded.email_primary, phone_primary = excluded.phone_primary,
		    company_name = excluded.company_name, job_title = excluded.job_title,
		    city = excluded.city, country = excluded.country, website = excluded.website,
		    notes = excluded.notes, source = excluded.source,
		    created_at = excluded.created_at, updated_at = excluded.updated_at,
		    deleted = excluded.deleted, pending_sync = excluded.pending_sync`

	clientSelectContactColumns = `
		SELECT id, server_id, user_id, lead_id, first_name, last_name, email_primary, phone_primary,
		       company_name, job_title, city, country, website, notes, source,
		       created_at, updated_at, deleted, pending_sync
		FROM contacts`

	clientGetContactQuery           = clientSelectContactColumns + ` WHERE id = ?`
	clientGetContactByServerIDQuery = clientSelectContactColumns + ` WHERE server_id = ?`
	clientListActiveContactsQuery   = clientSelectContactColumns + ` WHERE deleted = 0 ORDER BY updated_at DESC`
	clientListPendingContactsQuery  = clientSelectContactColumns + ` WHERE pending_sync = 1 ORDER BY updated_at ASC`
	clientSoftDeleteContactQuery    = `UPDATE contacts SET deleted = 1, pending_sync = 1, updated_at = ? WHERE id = ?`
	clientMarkContactSyncedQuery    = `UPDATE contacts SET server_id = ?, pending_sync = 0 WHERE id = ?`

	clientUpsertLeadQuery = `
		INSERT INTO leads
		    (id, server_id, user_id, card_id, first_name, last_name, email, work_phone, mobile_phone,
		     organization_name, job_title, website, comments, status, created_at, updated_at, deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
		    server_id = excluded.server_id, user_id = excluded.user_id, card_id = excluded.card_id,
		    first_name = excluded.first_name, last_name = excluded.last_name,
		    email = excluded.email, work_phone = excluded.work_phone,
		    mobile_phone = excluded.mobile_phone, organization_name = excluded.organization_name,
		    job_title = excluded.job_title, website = excluded.website, comments = excluded.comments,
		    status = excluded.status, created_at = excluded.created_at,
		    updated_at = excluded.updated_at, deleted = excluded.deleted`

	clientSelectLeadColumns = `
		SELECT id, server_id, user_id, card_id, first_name, last_name, email, work_phone, mobile_phone,
		       organization_name, job_title, website, comments, status, created_at, updated_at, deleted
		FROM leads`

	clientGetLeadQuery           = clientSelectLeadColumns + ` WHERE id = ?`
	clientGetLeadByServerIDQuery = clientSelectLeadColumns + ` WHERE server_id = ?`
	clientListActiveLeadsQuery   = clientSelectLeadColumns + ` WHERE deleted = 0 ORDER BY updated_at DESC`
	clientSoftDeleteLeadQuery    = `UPDATE leads SET deleted = 1, updated_at = ? WHERE id = ?`

	clientGetCheckpointQuery = `SELECT last_pulled_at FROM sync_checkpoints WHERE entity = ?`
	clientSetCheckpointQuery = `
		INSERT INTO sync_checkpoints (entity, last_pulled_at) VALUES (?, ?)
		ON CONFLICT (entity) DO UPDATE SET last_pulled_at = excluded.last_pulled_at`
)
