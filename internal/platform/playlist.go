package platform

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-streams/internal/model"
)

// Timeout constants
const (
	DefaultResolveTimeout = 60 * time.Second
)

// Playlist limits and URL parts
const (
	DefaultPlaylistLimit    = 200
	PlaylistParam           = "list"
	VideoParam              = "v"
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
	ShortLinkHost           = "youtu.be"
	EmbeddedPlaylistPath    = "videoseries"
)

// VideoPathPrefixes are the paths that carry a single video ID
var VideoPathPrefixes = []string{"shorts/", "embed/", "live/", "v/"}

var (
	// ErrNotPlaylist is returned for URLs without a list parameter
	ErrNotPlaylist = errors.New("not a playlist URL")

	// ErrEmptyPlaylist is returned when the playlist has no entries
	ErrEmptyPlaylist = errors.New("playlist is empty")
)

// fetchFunc returns the entries of a playlist ID
type fetchFunc func(ctx context.Context, playlistID string, limit int) ([]model.PlaylistVideo, error)

// PlaylistResolver expands playlist URLs into their videos so the user can
// pick one to search
type PlaylistResolver struct {
	timeout time.Duration
	limit   int
	fetch   fetchFunc
}

// NewPlaylistResolver creates a resolver backed by ytdlp
func NewPlaylistResolver() *PlaylistResolver {
	return &PlaylistResolver{
		timeout: DefaultResolveTimeout,
		limit:   DefaultPlaylistLimit,
		fetch:   fetchWithYTDLP,
	}
}

// SetTimeout sets the timeout for resolve operations
func (p *PlaylistResolver) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// Timeout returns the timeout for resolve operations
func (p *PlaylistResolver) Timeout() time.Duration {
	return p.timeout
}

// Resolve lists the videos of the playlist named in rawURL
func (p *PlaylistResolver) Resolve(ctx context.Context, rawURL string) (*model.Playlist, error) {
	playlistID := ExtractPlaylistID(rawURL)
	if playlistID == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotPlaylist, rawURL)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	videos, err := p.fetch(ctx, playlistID, p.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}
	if len(videos) == 0 {
		return nil, ErrEmptyPlaylist
	}

	return &model.Playlist{
		ID:     playlistID,
		Title:  playlistTitle(videos),
		URL:    rawURL,
		Videos: videos,
	}, nil
}

func fetchWithYTDLP(ctx context.Context, playlistID string, limit int) ([]model.PlaylistVideo, error) {
	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, limit)
	if err != nil {
		return nil, err
	}

	videos := make([]model.PlaylistVideo, 0, len(items))
	for i, it := range items {
		index := it.Index
		if index <= 0 {
			index = i + 1
		}
		videos = append(videos, model.PlaylistVideo{
			ID:    it.VideoID,
			Title: it.Title,
			URL:   fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
			Index: index,
		})
	}
	return videos, nil
}

// IsPlaylistURL reports whether rawURL names a playlist and no single video
func IsPlaylistURL(rawURL string) bool {
	parsed, ok := parseURL(rawURL)
	if !ok {
		return false
	}
	query := parsed.Query()
	return query.Get(PlaylistParam) != "" && query.Get(VideoParam) == "" && pathVideoID(parsed) == ""
}

// ExtractPlaylistID returns the first list parameter of rawURL, or ""
func ExtractPlaylistID(rawURL string) string {
	parsed, ok := parseURL(rawURL)
	if !ok {
		return ""
	}
	return parsed.Query().Get(PlaylistParam)
}

// pathVideoID returns the video ID carried in the path of short, shorts,
// embed and live links, or ""
func pathVideoID(parsed *url.URL) string {
	path := strings.Trim(parsed.Path, "/")
	if strings.EqualFold(strings.TrimPrefix(parsed.Hostname(), "www."), ShortLinkHost) {
		id, _, _ := strings.Cut(path, "/")
		return id
	}
	for _, prefix := range VideoPathPrefixes {
		if id, ok := strings.CutPrefix(path, prefix); ok {
			id, _, _ = strings.Cut(id, "/")
			if id == EmbeddedPlaylistPath {
				return ""
			}
			return id
		}
	}
	return ""
}

func parseURL(rawURL string) (*url.URL, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, false
	}
	return parsed, true
}

// playlistTitle names the playlist after its first entry
func playlistTitle(videos []model.PlaylistVideo) string {
	if len(videos) == 0 || videos[0].Title == "" {
		return model.DefaultPlaylistTitle
	}
	return videos[0].Title + " Playlist"
}
