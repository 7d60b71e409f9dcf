package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/kkdai/youtube/v2"

	applog "github.com/ytget/yt-streams/internal/logger"
	"github.com/ytget/yt-streams/internal/model"
)

// Timeout and URL constants
const (
	DefaultHTTPTimeout = 30 * time.Second

	WatchURLTemplate     = "https://www.youtube.com/watch?v=%s"
	ThumbnailURLTemplate = "https://i.ytimg.com/vi/%s/hqdefault.jpg"

	// MaxCachedVideos bounds the looked up videos kept for later downloads
	MaxCachedVideos = 32
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Service resolves videos and opens their streams. The most recently used
// videos are kept by ID so a later download can reuse the same format list.
// An evicted video is fetched again when one of its streams is opened.
type Service struct {
	client youtube.Client
	log    *slog.Logger

	mu     sync.Mutex
	videos map[string]*youtube.Video
	recent []string // least recently used first
}

// NewService creates a catalog backed by the given HTTP client.
// A nil client gets a default one with DefaultHTTPTimeout.
func NewService(httpClient *http.Client, log *slog.Logger) *Service {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		client: youtube.Client{HTTPClient: httpClient},
		log:    log.With("component", "catalog"),
		videos: make(map[string]*youtube.Video),
	}
}

// ExtractVideoID validates user input and returns the video ID it refers to
func ExtractVideoID(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", ErrEmptyURL
	}

	id, err := youtube.ExtractVideoID(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	return id, nil
}

// Lookup fetches metadata and the classified stream lists for a video URL
func (s *Service) Lookup(ctx context.Context, rawURL string) (*model.Video, *model.StreamSet, error) {
	id, err := ExtractVideoID(rawURL)
	if err != nil {
		return nil, nil, err
	}

	started := time.Now()
	video, err := s.client.GetVideoContext(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load video: %w", err)
	}

	s.remember(video)

	info := &model.Video{
		ID:            video.ID,
		URL:           fmt.Sprintf(WatchURLTemplate, video.ID),
		Title:         video.Title,
		Author:        video.Author,
		LengthSeconds: int(video.Duration.Seconds()),
		Views:         video.Views,
		ThumbnailURL:  pickThumbnail(video.Thumbnails),
	}
	if info.ThumbnailURL == "" {
		info.ThumbnailURL = fmt.Sprintf(ThumbnailURLTemplate, video.ID)
	}

	set := BuildStreamSet(video.Formats)

	s.log.Info("video looked up",
		"id", video.ID,
		"formats", len(video.Formats),
		"listed", set.Len(),
		applog.Since(started))

	return info, set, nil
}

// OpenStream starts reading the bytes of one stream of a looked up video.
// The returned size is the total content length reported by the host.
func (s *Service) OpenStream(ctx context.Context, videoID string, itag int) (io.ReadCloser, int64, error) {
	video, ok := s.cached(videoID)
	if !ok {
		if !videoIDPattern.MatchString(videoID) {
			return nil, 0, fmt.Errorf("%w: %s", ErrUnknownVideo, videoID)
		}
		reloaded, err := s.client.GetVideoContext(ctx, videoID)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to reload video: %w", err)
		}
		s.remember(reloaded)
		s.log.Info("video reloaded", "id", videoID)
		video = reloaded
	}

	var format *youtube.Format
	for i := range video.Formats {
		if video.Formats[i].ItagNo == itag {
			format = &video.Formats[i]
			break
		}
	}
	if format == nil {
		return nil, 0, fmt.Errorf("%w: itag %d", ErrUnknownStream, itag)
	}

	stream, size, err := s.client.GetStreamContext(ctx, video, format)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open stream: %w", err)
	}
	return stream, size, nil
}

// remember caches video as the most recently used one and evicts the oldest
// beyond MaxCachedVideos
func (s *Service) remember(video *youtube.Video) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[video.ID]; ok {
		s.touchLocked(video.ID)
	} else {
		s.recent = append(s.recent, video.ID)
	}
	s.videos[video.ID] = video

	for len(s.recent) > MaxCachedVideos {
		delete(s.videos, s.recent[0])
		s.recent = slices.Delete(s.recent, 0, 1)
	}
}

// cached returns a looked up video and marks it as recently used
func (s *Service) cached(videoID string) (*youtube.Video, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	video, ok := s.videos[videoID]
	if ok {
		s.touchLocked(videoID)
	}
	return video, ok
}

func (s *Service) touchLocked(videoID string) {
	if i := slices.Index(s.recent, videoID); i >= 0 {
		s.recent = append(slices.Delete(s.recent, i, i+1), videoID)
	}
}
