package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list is re-applied on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_profile (
		user_id     TEXT PRIMARY KEY,
		traits      TEXT NOT NULL DEFAULT '[]',
		platform    TEXT NOT NULL DEFAULT '',
		mentors     TEXT NOT NULL DEFAULT '',
		serendipity TEXT NOT NULL DEFAULT '',
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS career_targets (
		id                  TEXT PRIMARY KEY,
		user_id             TEXT NOT NULL,
		name                TEXT NOT NULL,
		status              TEXT NOT NULL DEFAULT 'researching'
		                    CHECK(status IN ('researching','active','paused','planning_done')),
		research_report     TEXT NOT NULL DEFAULT '',
		research_chart_data TEXT,
		validation_plan     TEXT NOT NULL DEFAULT '',
		action_plan         TEXT,
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_targets_user_name ON career_targets(user_id, name)`,
	`CREATE INDEX IF NOT EXISTS idx_targets_status ON career_targets(status)`,

	// Progress logs reference their target by name on purpose: abandoning a
	// target must not erase its historical record.
	`CREATE TABLE IF NOT EXISTS progress_logs (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		target_name TEXT NOT NULL DEFAULT '',
		body        TEXT NOT NULL,
		logged_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_logs_user ON progress_logs(user_id, logged_at)`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		mode       TEXT NOT NULL CHECK(mode IN ('mode1','mode2','mode3','mode4')),
		role       TEXT NOT NULL CHECK(role IN ('user','assistant')),
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_chat_user_mode ON chat_messages(user_id, mode)`,
}
