package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/kkdai/youtube/v2"

	"github.com/ytget/yt-streams/internal/model"
)

// MIME prefixes used for classification
const (
	mimeVideoMP4 = "video/mp4"
	mimeAudio    = "audio/"
	mimeVideo    = "video/"
)

// BuildStreamSet splits the library's format list into progressive, video-only
// and audio-only streams and orders each list best first. Formats the lists
// do not show (e.g. webm video) are dropped.
func BuildStreamSet(formats youtube.FormatList) *model.StreamSet {
	set := &model.StreamSet{}

	for i := range formats {
		f := &formats[i]
		mime := strings.ToLower(f.MimeType)
		hasAudio := f.AudioChannels > 0

		switch {
		case strings.HasPrefix(mime, mimeVideoMP4) && hasAudio:
			set.Progressive = append(set.Progressive, toStream(f, model.StreamKindProgressive))
		case strings.HasPrefix(mime, mimeVideoMP4):
			set.VideoOnly = append(set.VideoOnly, toStream(f, model.StreamKindVideoOnly))
		case strings.HasPrefix(mime, mimeAudio):
			set.Audio = append(set.Audio, toStream(f, model.StreamKindAudioOnly))
		}
	}

	sortByResolution(set.Progressive)
	sortByResolution(set.VideoOnly)
	sort.SliceStable(set.Audio, func(i, j int) bool {
		return set.Audio[i].Bitrate > set.Audio[j].Bitrate
	})

	return set
}

func sortByResolution(streams []model.Stream) {
	sort.SliceStable(streams, func(i, j int) bool {
		return streams[i].Height > streams[j].Height
	})
}

// toStream converts a library format into a stream descriptor
func toStream(f *youtube.Format, kind model.StreamKind) model.Stream {
	s := model.Stream{
		Itag:          f.ItagNo,
		Kind:          kind,
		MimeType:      f.MimeType,
		FPS:           f.FPS,
		Bitrate:       bitrateForFormat(f),
		FileSize:      f.ContentLength,
		AudioChannels: f.AudioChannels,
	}

	if kind.IsVideo() {
		s.Resolution, s.Height = resolutionForFormat(f)
	}
	if kind != model.StreamKindVideoOnly && s.Bitrate > 0 {
		s.ABR = fmt.Sprintf("%dkbps", abrBitrate(f)/1000)
	}

	return s
}

// bitrateForFormat prefers the peak bitrate for ordering
func bitrateForFormat(f *youtube.Format) int {
	if f.Bitrate > 0 {
		return f.Bitrate
	}
	return f.AverageBitrate
}

// abrBitrate prefers the average bitrate for display
func abrBitrate(f *youtube.Format) int {
	if f.AverageBitrate > 0 {
		return f.AverageBitrate
	}
	return f.Bitrate
}

// resolutionForFormat returns "720p"-style text and the numeric height.
// Quality labels carry an fps suffix for high frame rates ("1080p60").
func resolutionForFormat(f *youtube.Format) (string, int) {
	if label := f.QualityLabel; label != "" {
		if idx := strings.IndexByte(label, 'p'); idx > 0 {
			if height, err := strconv.Atoi(label[:idx]); err == nil {
				return label[:idx+1], height
			}
		}
	}

	if f.Height > 0 {
		return fmt.Sprintf("%dp", f.Height), f.Height
	}
	return "", 0
}

// pickThumbnail returns the widest thumbnail URL
func pickThumbnail(thumbnails youtube.Thumbnails) string {
	best := ""
	var bestWidth uint
	for _, th := range thumbnails {
		if th.URL == "" {
			continue
		}
		if best == "" || th.Width > bestWidth {
			best = th.URL
			bestWidth = th.Width
		}
	}
	return best
}
