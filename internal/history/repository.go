package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ytget/yt-streams/internal/model"
)

// Repository handles download history persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository
func NewRepository(db *DB) *Repository {
	return &Repository{db: db.DB}
}

// Record stores a completed download and sets its ID
func (r *Repository) Record(ctx context.Context, entry *model.HistoryEntry) error {
	if entry.CompletedAt.IsZero() {
		entry.CompletedAt = time.Now()
	}

	query := `
		INSERT INTO downloads
		(video_id, video_url, title, stream_kind, stream_label, output_path, file_size_bytes, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(ctx, query,
		entry.VideoID,
		entry.VideoURL,
		entry.Title,
		string(entry.Kind),
		entry.StreamLabel,
		entry.OutputPath,
		entry.FileSize,
		entry.CompletedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record download: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read download id: %w", err)
	}
	entry.ID = id
	return nil
}

// RecordDownload records a completed task
func (r *Repository) RecordDownload(ctx context.Context, task *model.DownloadTask) error {
	return r.Record(ctx, model.NewHistoryEntry(task))
}

// Recent returns the newest entries first
func (r *Repository) Recent(ctx context.Context, limit int) ([]*model.HistoryEntry, error) {
	query := `
		SELECT id, video_id, video_url, title, stream_kind, stream_label, output_path, file_size_bytes, completed_at
		FROM downloads
		ORDER BY completed_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []*model.HistoryEntry
	for rows.Next() {
		var (
			entry model.HistoryEntry
			title sql.NullString
			label sql.NullString
			kind  string
			size  sql.NullInt64
		)
		if err := rows.Scan(&entry.ID, &entry.VideoID, &entry.VideoURL, &title, &kind,
			&label, &entry.OutputPath, &size, &entry.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.Title = title.String
		entry.StreamLabel = label.String
		entry.Kind = model.StreamKind(kind)
		entry.FileSize = size.Int64
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// Count returns the number of recorded downloads
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM downloads`).Scan(&count)
	return count, err
}

// Clear removes all entries
func (r *Repository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM downloads`); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
