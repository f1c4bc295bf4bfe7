package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. The four catalog tables are
// structurally different on purpose: items share no base record, only the
// (kind, id) pair that favorites and labels key on.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    username      TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'viewer' CHECK (role IN ('admin', 'editor', 'viewer')),
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at    DATETIME
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_active
    ON users(username) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS tools (
    id             INTEGER PRIMARY KEY,
    name           TEXT NOT NULL,
    category       TEXT,
    brand          TEXT,
    model          TEXT,
    purchase_date  TEXT,
    purchase_price REAL,
    condition      TEXT,
    location       TEXT,
    notes          TEXT,
    purchase_url   TEXT,
    manual_url     TEXT,
    image          BLOB,
    image_mime     TEXT,
    created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS consumables (
    id              INTEGER PRIMARY KEY,
    name            TEXT NOT NULL,
    category        TEXT,
    quantity        INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    unit            TEXT,
    min_quantity    INTEGER,
    location        TEXT,
    compatible_with TEXT,
    notes           TEXT,
    purchase_url    TEXT,
    image           BLOB,
    image_mime      TEXT,
    created_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS materials (
    id             INTEGER PRIMARY KEY,
    name           TEXT NOT NULL,
    category       TEXT,
    material_type  TEXT,
    quantity       REAL NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    unit           TEXT,
    length         REAL,
    width          REAL,
    thickness      REAL,
    dimension_unit TEXT,
    grade          TEXT,
    finish         TEXT,
    color          TEXT,
    cost_per_unit  REAL,
    supplier       TEXT,
    min_quantity   REAL,
    location       TEXT,
    notes          TEXT,
    image          BLOB,
    image_mime     TEXT,
    created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS fasteners (
    id           INTEGER PRIMARY KEY,
    category     TEXT NOT NULL,
    size         TEXT,
    length       TEXT,
    material     TEXT,
    head_type    TEXT,
    thread_type  TEXT,
    quantity     INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
    min_quantity INTEGER,
    location     TEXT,
    notes        TEXT,
    created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS favorites (
    kind       TEXT NOT NULL CHECK (kind IN ('tool', 'consumable', 'material', 'fastener')),
    item_id    INTEGER NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (kind, item_id)
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
