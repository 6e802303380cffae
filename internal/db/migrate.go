package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// duplicates from re-runs are tolerated.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Tasks and announcements reference teams only by a denormalized team_id
// string, without a foreign key: the repository contract does no server-side
// cross-collection validation, and the team-delete cascade is issued
// explicitly by the service layer inside one transaction.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		description     TEXT NOT NULL,
		assignee        TEXT NOT NULL DEFAULT '',
		priority        TEXT NOT NULL
		                CHECK(priority IN ('High','Medium','Low')),
		department      TEXT NOT NULL DEFAULT '',
		deadline        TEXT NOT NULL DEFAULT 'no deadline',
		completed       INTEGER NOT NULL DEFAULT 0,
		source          TEXT NOT NULL
		                CHECK(source IN ('personal','team')),
		team_id         TEXT NOT NULL DEFAULT '',
		related_summary TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_team ON tasks(team_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks(assignee)`,

	`CREATE TABLE IF NOT EXISTS teams (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_by TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS team_members (
		team_id  TEXT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		entry    TEXT NOT NULL,
		PRIMARY KEY (team_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS announcements (
		id         TEXT PRIMARY KEY,
		team_id    TEXT NOT NULL,
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL,
		author     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_announcements_team ON announcements(team_id)`,

	`CREATE TABLE IF NOT EXISTS decisions (
		id          TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id              TEXT PRIMARY KEY,
		username        TEXT NOT NULL UNIQUE,
		name            TEXT NOT NULL,
		invitation_code TEXT NOT NULL UNIQUE
	)`,

	`CREATE TABLE IF NOT EXISTS session (
		id      INTEGER PRIMARY KEY CHECK(id = 1),
		user_id TEXT REFERENCES users(id) ON DELETE CASCADE
	)`,
}
