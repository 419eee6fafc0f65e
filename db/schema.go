// ABOUTME: Database schema definitions and migrations
// ABOUTME: Handles SQLite table creation and initialization
package db

import (
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id TEXT PRIMARY KEY,
	deal_id TEXT NOT NULL,
	rank TEXT,
	stage TEXT NOT NULL,
	address TEXT NOT NULL,
	city TEXT,
	state TEXT,
	asking_price REAL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_submissions_deal_id ON submissions(deal_id);
CREATE INDEX IF NOT EXISTS idx_submissions_created_at ON submissions(created_at);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
