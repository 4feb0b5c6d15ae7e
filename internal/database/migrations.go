package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaVersion is stored in PRAGMA user_version
const schemaVersion = 1

var schema = []string{
	`CREATE TABLE IF NOT EXISTS organizations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS boards (
		id TEXT PRIMARY KEY,
		org_id TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		FOREIGN KEY (org_id) REFERENCES organizations(id) ON DELETE CASCADE
	)`,
	// lane_id is intentionally not a foreign key: it holds built-in lane keys
	// as well as tag ids, and deleting a tag leaves the reference dangling.
	// transition_at is the last-write-wins clock for the lane/order/completion
	// field group; updated_at is refreshed by every write.
	`CREATE TABLE IF NOT EXISTS items (
		id TEXT PRIMARY KEY,
		board_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		votes INTEGER NOT NULL DEFAULT 0,
		lane_id TEXT,
		order_key REAL,
		completed_at INTEGER,
		transition_at INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		FOREIGN KEY (board_id) REFERENCES boards(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_board_lane ON items(board_id, lane_id, order_key)`,
	`CREATE TABLE IF NOT EXISTS tags (
		id TEXT PRIMARY KEY,
		org_id TEXT NOT NULL,
		name TEXT NOT NULL,
		color TEXT NOT NULL,
		is_roadmap_lane BOOLEAN NOT NULL DEFAULT 0,
		display_order REAL NOT NULL DEFAULT 0,
		is_done_status BOOLEAN NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		FOREIGN KEY (org_id) REFERENCES organizations(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tags_org ON tags(org_id, is_roadmap_lane, display_order)`,
}

// RunMigrations creates the schema if needed. It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version >= schemaVersion {
		return nil
	}

	return withTx(ctx, db, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}
		}
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
			return fmt.Errorf("failed to set schema version: %w", err)
		}
		return nil
	})
}
