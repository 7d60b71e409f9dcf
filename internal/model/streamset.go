package model

// StreamSet holds the three stream lists of one search result
type StreamSet struct {
	Progressive []Stream // audio+video mp4, highest resolution first
	VideoOnly   []Stream // video-only mp4, highest resolution first
	Audio       []Stream // audio-only, highest bitrate first
}

// List returns the streams of the given kind
func (ss *StreamSet) List(kind StreamKind) []Stream {
	if ss == nil {
		return nil
	}
	switch kind {
	case StreamKindProgressive:
		return ss.Progressive
	case StreamKindVideoOnly:
		return ss.VideoOnly
	case StreamKindAudioOnly:
		return ss.Audio
	default:
		return nil
	}
}

// BestAudio returns the highest bitrate audio stream
func (ss *StreamSet) BestAudio() (Stream, bool) {
	if ss == nil || len(ss.Audio) == 0 {
		return Stream{}, false
	}
	return ss.Audio[0], true
}

// Len returns the number of streams across all lists
func (ss *StreamSet) Len() int {
	if ss == nil {
		return 0
	}
	return len(ss.Progressive) + len(ss.VideoOnly) + len(ss.Audio)
}
