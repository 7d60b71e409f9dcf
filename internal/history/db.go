// Package history keeps a log of completed downloads in a local sqlite
// database so the windows can list what was saved in earlier runs.
package history

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite
const DriverName = "sqlite"

// DB wraps the sqlite connection
type DB struct {
	*sql.DB
}

// Open opens (or creates) the database at path and runs migrations.
// Use ":memory:" for a throwaway database.
func Open(path string) (*DB, error) {
	conn, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db: %w", err)
	}
	// sqlite allows a single writer; serialise through one connection
	conn.SetMaxOpenConns(1)

	db := &DB{DB: conn}
	if err := db.Migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return db, nil
}

// Migrate runs all database migrations
func (db *DB) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS downloads (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			video_id TEXT NOT NULL,
			video_url TEXT NOT NULL,
			title TEXT,
			stream_kind TEXT NOT NULL,
			stream_label TEXT,
			output_path TEXT NOT NULL,
			file_size_bytes INTEGER,
			completed_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_downloads_video_id ON downloads(video_id)`,
		`CREATE INDEX IF NOT EXISTS idx_downloads_completed_at ON downloads(completed_at)`,
	}

	for i, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
