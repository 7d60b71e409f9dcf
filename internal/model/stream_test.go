package model

import (
	"reflect"
	"testing"
)

func TestStream_Label(t *testing.T) {
	tests := []struct {
		name     string
		stream   Stream
		expected string
	}{
		{
			name:     "progressive",
			stream:   Stream{Kind: StreamKindProgressive, Resolution: "360p", FPS: 30, FileSize: 1048576},
			expected: "360p - 30fps - 1.00 MB",
		},
		{
			name:     "video only unknown size",
			stream:   Stream{Kind: StreamKindVideoOnly, Resolution: "1080p", FPS: 60},
			expected: "1080p - 60fps - N/A",
		},
		{
			name:     "audio",
			stream:   Stream{Kind: StreamKindAudioOnly, ABR: "128kbps", FileSize: 1024},
			expected: "128kbps - 1.00 KB",
		},
		{
			name:     "audio without bitrate",
			stream:   Stream{Kind: StreamKindAudioOnly, FileSize: 1023},
			expected: "N/A - 1023.00 B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stream.Label(); got != tt.expected {
				t.Errorf("Label() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStream_MediaTypeAndContainer(t *testing.T) {
	s := Stream{MimeType: `audio/webm; codecs="opus"`}
	if s.MediaType() != "audio" {
		t.Errorf("MediaType() = %q, want audio", s.MediaType())
	}
	if s.Container() != "webm" {
		t.Errorf("Container() = %q, want webm", s.Container())
	}

	empty := Stream{}
	if empty.MediaType() != "" || empty.Container() != "" {
		t.Errorf("empty mime should give empty parts, got %q/%q", empty.MediaType(), empty.Container())
	}
}

func TestStream_DefaultFileName(t *testing.T) {
	tests := []struct {
		name     string
		stream   Stream
		title    string
		expected string
	}{
		{
			name:     "video",
			stream:   Stream{Kind: StreamKindProgressive, MimeType: "video/mp4", Resolution: "720p"},
			title:    "My Great Video",
			expected: "My_Great_Video_video_720p",
		},
		{
			name:     "video without resolution",
			stream:   Stream{Kind: StreamKindVideoOnly, MimeType: "video/mp4"},
			title:    "Clip",
			expected: "Clip_video_unknown",
		},
		{
			name:     "audio",
			stream:   Stream{Kind: StreamKindAudioOnly, MimeType: "audio/mp4", ABR: "128kbps"},
			title:    "Song: Live",
			expected: "Song_Live_audio_128kbps",
		},
		{
			name:     "audio without bitrate",
			stream:   Stream{Kind: StreamKindAudioOnly, MimeType: "audio/webm"},
			title:    "a/b",
			expected: "ab_audio_unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stream.DefaultFileName(tt.title); got != tt.expected {
				t.Errorf("DefaultFileName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestStream_DefaultAudioFileName(t *testing.T) {
	s := Stream{Kind: StreamKindAudioOnly, MimeType: "audio/mp4", ABR: "160kbps"}
	if got := s.DefaultAudioFileName("Lo Fi Beats"); got != "Lo_Fi_Beats_160kbps" {
		t.Errorf("DefaultAudioFileName() = %q", got)
	}
}

func TestStream_Extensions(t *testing.T) {
	video := Stream{Kind: StreamKindVideoOnly}
	audio := Stream{Kind: StreamKindAudioOnly}

	if video.DefaultExtension() != ExtensionMP4 {
		t.Errorf("video default extension = %s", video.DefaultExtension())
	}
	if audio.DefaultExtension() != ExtensionMP3 {
		t.Errorf("audio default extension = %s", audio.DefaultExtension())
	}
	if !reflect.DeepEqual(video.AllowedExtensions(), []string{".mp4"}) {
		t.Errorf("video allowed = %v", video.AllowedExtensions())
	}
	if !reflect.DeepEqual(audio.AllowedExtensions(), []string{".mp3", ".m4a"}) {
		t.Errorf("audio allowed = %v", audio.AllowedExtensions())
	}
}

func TestSafeTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "Hello_World"},
		{"  padded  ", "padded"},
		{`a<b>c:d"e/f\g|h?i*j`, "abcdefghij"},
		{"", ""},
	}

	for _, test := range tests {
		if got := SafeTitle(test.input); got != test.expected {
			t.Errorf("SafeTitle(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}
