package history_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ytget/yt-streams/internal/history"
	"github.com/ytget/yt-streams/internal/model"
)

func setupTestDB(t *testing.T) *history.DB {
	t.Helper()

	db, err := history.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRepository_RecordAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := history.NewRepository(setupTestDB(t))

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		entry := &model.HistoryEntry{
			VideoID:     "vid" + title,
			VideoURL:    "https://www.youtube.com/watch?v=vid" + title,
			Title:       title,
			Kind:        model.StreamKindAudioOnly,
			StreamLabel: "128kbps - 3.00 MB",
			OutputPath:  filepath.Join("music", title+".mp3"),
			FileSize:    3145728,
			CompletedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Record(ctx, entry); err != nil {
			t.Fatalf("Failed to record download: %v", err)
		}
		if entry.ID == 0 {
			t.Error("Expected ID to be set after Record")
		}
	}

	entries, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to get recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Title != "third" || entries[1].Title != "second" {
		t.Errorf("Expected newest first, got %s, %s", entries[0].Title, entries[1].Title)
	}
	if entries[0].Kind != model.StreamKindAudioOnly {
		t.Errorf("Expected kind audio_only, got %s", entries[0].Kind)
	}
	if entries[0].FileSize != 3145728 {
		t.Errorf("Expected size 3145728, got %d", entries[0].FileSize)
	}
	if !entries[0].CompletedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("Expected completed_at %v, got %v", base.Add(2*time.Minute), entries[0].CompletedAt)
	}
}

func TestRepository_RecordDownload(t *testing.T) {
	ctx := context.Background()
	repo := history.NewRepository(setupTestDB(t))

	task := &model.DownloadTask{
		VideoID:    "dQw4w9WgXcQ",
		URL:        "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Title:      "Test Video",
		Stream:     model.Stream{Kind: model.StreamKindProgressive, Resolution: "720p", FPS: 30, FileSize: 1024},
		OutputPath: filepath.Join("videos", "Test_Video_video_720p.mp4"),
		BytesDone:  1024,
		FinishedAt: time.Now(),
	}

	if err := repo.RecordDownload(ctx, task); err != nil {
		t.Fatalf("Failed to record download: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}

	entries, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Failed to get recent: %v", err)
	}
	if entries[0].StreamLabel != "720p - 30fps - 1.00 KB" {
		t.Errorf("Unexpected stream label %q", entries[0].StreamLabel)
	}
}

func TestRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := history.NewRepository(setupTestDB(t))

	for i := 0; i < 3; i++ {
		repo.Record(ctx, &model.HistoryEntry{
			VideoID:    "v",
			VideoURL:   "u",
			Kind:       model.StreamKindVideoOnly,
			OutputPath: "p",
		})
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Failed to clear: %v", err)
	}

	count, _ := repo.Count(ctx)
	if count != 0 {
		t.Errorf("Expected empty history, got %d", count)
	}
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	db, err := history.Open(path)
	if err != nil {
		t.Fatalf("Failed to open file db: %v", err)
	}
	db.Close()

	// Reopening runs the idempotent migrations again
	db, err = history.Open(path)
	if err != nil {
		t.Fatalf("Failed to reopen file db: %v", err)
	}
	db.Close()
}
