package model

import (
	"fmt"
	"strings"
)

// StreamKind groups stream variants the way the windows list them
type StreamKind string

const (
	// StreamKindProgressive carries audio and video in one file
	StreamKindProgressive StreamKind = "progressive"

	// StreamKindVideoOnly carries video without an audio track
	StreamKindVideoOnly StreamKind = "video_only"

	// StreamKindAudioOnly carries audio without video
	StreamKindAudioOnly StreamKind = "audio_only"
)

// Placeholders used when the host does not report a value
const (
	NotAvailable   = "N/A"
	UnknownQuality = "unknown"
)

// File extensions offered by the save dialog
const (
	ExtensionMP4 = "mp4"
	ExtensionMP3 = "mp3"
	ExtensionM4A = "m4a"
)

// String returns the string representation of StreamKind
func (k StreamKind) String() string {
	return string(k)
}

// IsVideo reports whether the kind carries a video track
func (k StreamKind) IsVideo() bool {
	return k == StreamKindProgressive || k == StreamKindVideoOnly
}

// Stream describes a single downloadable variant
type Stream struct {
	Itag          int
	Kind          StreamKind
	MimeType      string // e.g. `video/mp4; codecs="avc1.64001F, mp4a.40.2"`
	Resolution    string // e.g. "720p", empty for audio
	Height        int
	FPS           int
	Bitrate       int    // bits per second
	ABR           string // e.g. "128kbps", empty for video-only
	FileSize      int64  // 0 when unknown
	AudioChannels int
}

// Label returns the text shown for the stream in a list
func (s Stream) Label() string {
	size := NotAvailable
	if s.FileSize > 0 {
		size = FormatFileSize(s.FileSize)
	}

	if s.Kind.IsVideo() {
		return fmt.Sprintf("%s - %dfps - %s", s.Resolution, s.FPS, size)
	}

	abr := s.ABR
	if abr == "" {
		abr = NotAvailable
	}
	return fmt.Sprintf("%s - %s", abr, size)
}

// MediaType returns the part of the MIME type before the slash
func (s Stream) MediaType() string {
	mediaType, _, _ := strings.Cut(s.MimeType, "/")
	return strings.TrimSpace(mediaType)
}

// Container returns the MIME subtype without codec parameters, e.g. "mp4"
func (s Stream) Container() string {
	_, rest, found := strings.Cut(s.MimeType, "/")
	if !found {
		return ""
	}
	subtype, _, _ := strings.Cut(rest, ";")
	return strings.TrimSpace(subtype)
}

// quality returns resolution for video and bitrate for audio
func (s Stream) quality() string {
	if s.Kind.IsVideo() {
		if s.Resolution != "" {
			return s.Resolution
		}
		return UnknownQuality
	}
	if s.ABR != "" {
		return s.ABR
	}
	return UnknownQuality
}

// DefaultFileName builds the name proposed by the save dialog, without extension
func (s Stream) DefaultFileName(title string) string {
	return fmt.Sprintf("%s_%s_%s", SafeTitle(title), s.MediaType(), s.quality())
}

// DefaultAudioFileName builds the music window's proposal: title and bitrate only
func (s Stream) DefaultAudioFileName(title string) string {
	return fmt.Sprintf("%s_%s", SafeTitle(title), s.quality())
}

// DefaultExtension returns the extension appended when the user types none
func (s Stream) DefaultExtension() string {
	if s.Kind.IsVideo() {
		return ExtensionMP4
	}
	return ExtensionMP3
}

// AllowedExtensions returns the save dialog filter for the stream
func (s Stream) AllowedExtensions() []string {
	if s.Kind.IsVideo() {
		return []string{"." + ExtensionMP4}
	}
	return []string{"." + ExtensionMP3, "." + ExtensionM4A}
}

// reservedFileChars cannot appear in file names on at least one desktop OS
var reservedFileChars = strings.NewReplacer(
	" ", "_",
	"/", "", "\\", "", ":", "", "*", "",
	"?", "", "\"", "", "<", "", ">", "", "|", "",
)

// SafeTitle turns a video title into a file name stem
func SafeTitle(title string) string {
	return reservedFileChars.Replace(strings.TrimSpace(title))
}
