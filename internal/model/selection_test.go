package model

import (
	"errors"
	"testing"
)

func testStreamSet() *StreamSet {
	return &StreamSet{
		Progressive: []Stream{
			{Itag: 22, Kind: StreamKindProgressive, Resolution: "720p"},
			{Itag: 18, Kind: StreamKindProgressive, Resolution: "360p"},
		},
		VideoOnly: []Stream{
			{Itag: 137, Kind: StreamKindVideoOnly, Resolution: "1080p"},
		},
		Audio: []Stream{
			{Itag: 140, Kind: StreamKindAudioOnly, ABR: "128kbps"},
			{Itag: 139, Kind: StreamKindAudioOnly, ABR: "48kbps"},
		},
	}
}

func TestSelection_Resolve(t *testing.T) {
	set := testStreamSet()

	tests := []struct {
		name     string
		sel      Selection
		wantItag int
		wantErr  error
	}{
		{"nothing selected", EmptySelection(), 0, ErrNoSelection},
		{"progressive", Selection{Progressive: 1, Audio: NoSelection, VideoOnly: NoSelection}, 18, nil},
		{"audio", Selection{Progressive: NoSelection, Audio: 0, VideoOnly: NoSelection}, 140, nil},
		{"video only", Selection{Progressive: NoSelection, Audio: NoSelection, VideoOnly: 0}, 137, nil},
		{"two lists", Selection{Progressive: 0, Audio: 1, VideoOnly: NoSelection}, 0, ErrAmbiguousSelection},
		{"three lists", Selection{Progressive: 0, Audio: 0, VideoOnly: 0}, 0, ErrAmbiguousSelection},
		{"out of range", Selection{Progressive: NoSelection, Audio: NoSelection, VideoOnly: 3}, 0, ErrStaleSelection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, err := tt.sel.Resolve(set)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && stream.Itag != tt.wantItag {
				t.Errorf("Resolve() itag = %d, want %d", stream.Itag, tt.wantItag)
			}
		})
	}
}

func TestSelection_ResolveNilSet(t *testing.T) {
	sel := Selection{Progressive: 0, Audio: NoSelection, VideoOnly: NoSelection}
	if _, err := sel.Resolve(nil); !errors.Is(err, ErrStaleSelection) {
		t.Errorf("Resolve(nil) error = %v, want ErrStaleSelection", err)
	}
}

func TestStreamSet_BestAudio(t *testing.T) {
	set := testStreamSet()
	best, ok := set.BestAudio()
	if !ok || best.Itag != 140 {
		t.Errorf("BestAudio() = %d, %v; want 140, true", best.Itag, ok)
	}

	if _, ok := (&StreamSet{}).BestAudio(); ok {
		t.Error("BestAudio() on empty set should report false")
	}

	if set.Len() != 5 {
		t.Errorf("Len() = %d, want 5", set.Len())
	}
}
