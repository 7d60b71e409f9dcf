package catalog

import "errors"

var (
	// ErrEmptyURL is returned when the URL field is blank
	ErrEmptyURL = errors.New("please enter a YouTube URL")

	// ErrInvalidURL is returned when no video ID can be extracted from the input
	ErrInvalidURL = errors.New("not a YouTube video URL")

	// ErrUnknownVideo is returned when a stream is requested for a video that was never looked up
	ErrUnknownVideo = errors.New("video was not looked up")

	// ErrUnknownStream is returned when the video has no format with the requested itag
	ErrUnknownStream = errors.New("stream not found")
)
