package ui

import (
	"context"
	"image"
	"log/slog"

	"github.com/ytget/yt-streams/internal/config"
	"github.com/ytget/yt-streams/internal/download"
	"github.com/ytget/yt-streams/internal/model"
)

// VideoLookup resolves a pasted URL into metadata and stream lists
type VideoLookup interface {
	Lookup(ctx context.Context, rawURL string) (*model.Video, *model.StreamSet, error)
}

// ThumbnailFetcher downloads a thumbnail already fitted to the panel
type ThumbnailFetcher interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}

// PlaylistResolver expands a playlist URL into its videos
type PlaylistResolver interface {
	Resolve(ctx context.Context, rawURL string) (*model.Playlist, error)
}

// HistoryStore lists and clears completed downloads
type HistoryStore interface {
	Recent(ctx context.Context, limit int) ([]*model.HistoryEntry, error)
	Clear(ctx context.Context) error
}

// Services bundles the back ends a window talks to. Playlists and History
// may be nil; the related menu entries and prompts are then skipped.
type Services struct {
	Catalog    VideoLookup
	Thumbnails ThumbnailFetcher
	Downloads  download.Downloader
	Playlists  PlaylistResolver
	History    HistoryStore
	Settings   *config.Settings
	Logger     *slog.Logger

	// OnSettingsSaved lets main re-apply settings that live outside the UI
	OnSettingsSaved func()
}

func (s *Services) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
