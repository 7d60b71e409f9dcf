// Package convert transcodes downloaded audio streams to MP3 with ffmpeg.
// Progress is read from ffmpeg's machine readable -progress output and
// reported against the duration ffprobe finds for the input.
package convert
