package model

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// Video holds the metadata shown above the stream lists
type Video struct {
	ID            string
	URL           string
	Title         string
	Author        string
	LengthSeconds int
	Views         int
	ThumbnailURL  string
}

// DurationText returns the formatted length, or N/A when unknown
func (v *Video) DurationText() string {
	if v.LengthSeconds <= 0 {
		return NotAvailable
	}
	return FormatDuration(v.LengthSeconds)
}

// ViewsText returns the view count with thousands separators, or N/A
func (v *Video) ViewsText() string {
	if v.Views <= 0 {
		return NotAvailable
	}
	return humanize.Comma(int64(v.Views))
}

// InfoText returns the info block of the downloader window
func (v *Video) InfoText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Video: %s\n", v.Title)
	fmt.Fprintf(&b, "Channel: %s\n", v.Author)
	fmt.Fprintf(&b, "Duration: %s\n", v.DurationText())
	fmt.Fprintf(&b, "%s views\n", v.ViewsText())
	return b.String()
}

// MusicInfoText returns the info block of the music window for the chosen audio stream
func (v *Video) MusicInfoText(audio Stream) string {
	size := NotAvailable
	if audio.FileSize > 0 {
		size = FormatFileSize(audio.FileSize)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Audio: %s.%s\n", v.Title, ExtensionMP3)
	fmt.Fprintf(&b, "Artist: %s\n", v.Author)
	fmt.Fprintf(&b, "Length: %s\n", v.DurationText())
	fmt.Fprintf(&b, "Size: %s", size)
	return b.String()
}
