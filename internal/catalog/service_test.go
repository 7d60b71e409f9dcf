package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kkdai/youtube/v2"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr error
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", nil},
		{"  https://youtu.be/dQw4w9WgXcQ  ", "dQw4w9WgXcQ", nil},
		{"", "", ErrEmptyURL},
		{"   ", "", ErrEmptyURL},
		{"https://a.b/c?x=1", "", ErrInvalidURL},
	}

	for _, tt := range tests {
		got, err := ExtractVideoID(tt.input)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ExtractVideoID(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("ExtractVideoID(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLookup_EmptyURL(t *testing.T) {
	svc := NewService(nil, nil)
	_, _, err := svc.Lookup(context.Background(), "")
	if !errors.Is(err, ErrEmptyURL) {
		t.Errorf("Lookup(\"\") error = %v, want ErrEmptyURL", err)
	}
}

func TestOpenStream_UnknownVideo(t *testing.T) {
	svc := NewService(nil, nil)
	_, _, err := svc.OpenStream(context.Background(), "missing", 18)
	if !errors.Is(err, ErrUnknownVideo) {
		t.Errorf("OpenStream() error = %v, want ErrUnknownVideo", err)
	}
}

func cacheTestID(i int) string {
	return fmt.Sprintf("video%06d", i)
}

func TestRemember_EvictsLeastRecentlyUsed(t *testing.T) {
	svc := NewService(nil, nil)

	for i := 0; i < MaxCachedVideos; i++ {
		svc.remember(&youtube.Video{ID: cacheTestID(i)})
	}

	// Using the oldest video keeps it
	if _, ok := svc.cached(cacheTestID(0)); !ok {
		t.Fatal("Expected first video to be cached")
	}

	svc.remember(&youtube.Video{ID: cacheTestID(MaxCachedVideos)})

	if len(svc.videos) != MaxCachedVideos {
		t.Errorf("Expected %d cached videos, got %d", MaxCachedVideos, len(svc.videos))
	}
	if len(svc.recent) != MaxCachedVideos {
		t.Errorf("Expected %d recent entries, got %d", MaxCachedVideos, len(svc.recent))
	}
	if _, ok := svc.cached(cacheTestID(0)); !ok {
		t.Error("Expected recently used video to survive eviction")
	}
	if _, ok := svc.cached(cacheTestID(1)); ok {
		t.Error("Expected least recently used video to be evicted")
	}
	if _, ok := svc.cached(cacheTestID(MaxCachedVideos)); !ok {
		t.Error("Expected newest video to be cached")
	}
}

func TestRemember_SameVideoTwice(t *testing.T) {
	svc := NewService(nil, nil)

	svc.remember(&youtube.Video{ID: cacheTestID(0), Title: "old"})
	svc.remember(&youtube.Video{ID: cacheTestID(0), Title: "new"})

	if len(svc.recent) != 1 {
		t.Errorf("Expected 1 recent entry, got %d", len(svc.recent))
	}
	video, ok := svc.cached(cacheTestID(0))
	if !ok || video.Title != "new" {
		t.Errorf("Expected refreshed video, got %v", video)
	}
}

func TestOpenStream_UnknownItag(t *testing.T) {
	svc := NewService(nil, nil)
	svc.remember(&youtube.Video{ID: cacheTestID(0), Formats: youtube.FormatList{{ItagNo: 18}}})

	_, _, err := svc.OpenStream(context.Background(), cacheTestID(0), 22)
	if !errors.Is(err, ErrUnknownStream) {
		t.Errorf("OpenStream() error = %v, want ErrUnknownStream", err)
	}
}
