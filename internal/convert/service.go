package convert

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ytget/yt-streams/internal/model"
)

// FFmpeg constants for the MP3 transcode
const (
	AudioCodec   = "libmp3lame"
	AudioBitrate = "192k"

	FFmpegCommand       = "ffmpeg"
	FFprobeCommand      = "ffprobe"
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "csv=p=0"
	ProgressPipeTarget  = "pipe:2"
	ProgressTimePrefix  = "out_time_us="
	MPEGAudioMimeType   = "audio/mpeg"
)

// ErrFFmpegNotFound is returned when ffmpeg is not on PATH
var ErrFFmpegNotFound = errors.New("ffmpeg not found")

// Service runs ffmpeg
type Service struct {
	ffmpegPath  string
	ffprobePath string
	logger      *slog.Logger
}

// NewService looks up ffmpeg and ffprobe on PATH. Missing binaries are
// not an error; Available reports false instead.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{logger: logger.With("component", "convert")}
	if path, err := exec.LookPath(FFmpegCommand); err == nil {
		s.ffmpegPath = path
	}
	if path, err := exec.LookPath(FFprobeCommand); err == nil {
		s.ffprobePath = path
	}
	return s
}

// Available reports whether ffmpeg was found
func (s *Service) Available() bool {
	return s.ffmpegPath != ""
}

// NeedsTranscode reports whether saving stream to path requires an MP3 encode
func (s *Service) NeedsTranscode(stream model.Stream, path string) bool {
	return NeedsTranscode(stream, path)
}

// NeedsTranscode is true for audio streams saved with a .mp3 name whose
// source is not already MPEG audio.
func NeedsTranscode(stream model.Stream, path string) bool {
	if stream.Kind != model.StreamKindAudioOnly {
		return false
	}
	if !strings.EqualFold(filepath.Ext(path), "."+model.ExtensionMP3) {
		return false
	}
	mime, _, _ := strings.Cut(stream.MimeType, ";")
	return strings.TrimSpace(mime) != MPEGAudioMimeType
}

// Transcode encodes inputPath into outputPath. onProgress receives values
// in 0..1 when the input duration is known. The partial output is removed
// on failure.
func (s *Service) Transcode(ctx context.Context, inputPath, outputPath string, onProgress func(float64)) error {
	if !s.Available() {
		return ErrFFmpegNotFound
	}

	duration, err := s.getDuration(ctx, inputPath)
	if err != nil {
		// progress is cosmetic; encode anyway
		s.logger.Warn("failed to get audio duration", "path", inputPath, "error", err)
	}

	cmd := exec.CommandContext(ctx, s.ffmpegPath, BuildFFmpegArgs(inputPath, outputPath)...)
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		monitorProgress(stderr, duration, onProgress)
	}()

	<-done
	err = cmd.Wait()
	if ctx.Err() != nil {
		os.Remove(outputPath)
		return ctx.Err()
	}
	if err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("ffmpeg failed: %w", err)
	}

	if onProgress != nil {
		onProgress(1.0)
	}
	return nil
}

// BuildFFmpegArgs builds the ffmpeg command arguments
func BuildFFmpegArgs(inputPath, outputPath string) []string {
	return []string{
		"-y",            // Overwrite output file
		"-i", inputPath, // Input file
		"-vn",              // Drop any video or cover art
		"-c:a", AudioCodec, // Audio codec
		"-b:a", AudioBitrate, // Audio bitrate
		"-progress", ProgressPipeTarget, // Progress to stderr
		"-nostats",
		outputPath,
	}
}

// getDuration gets the duration of a media file using ffprobe
func (s *Service) getDuration(ctx context.Context, filePath string) (float64, error) {
	if s.ffprobePath == "" {
		return 0, fmt.Errorf("%s not found", FFprobeCommand)
	}

	cmd := exec.CommandContext(ctx, s.ffprobePath, "-v", FFprobeLogLevel, "-show_entries", FFprobeShowEntries, "-of", FFprobeOutputFormat, filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("failed to run ffprobe: %w", err)
	}

	return ParseDuration(string(output))
}

// ParseDuration parses ffprobe's bare duration output, e.g. "212.480000\n"
func ParseDuration(output string) (float64, error) {
	duration, err := strconv.ParseFloat(strings.TrimSpace(output), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}
	return duration, nil
}

// ParseProgressLine extracts the encoded position in seconds from an
// "out_time_us=" line
func ParseProgressLine(line string) (float64, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ProgressTimePrefix) {
		return 0, false
	}
	us, err := strconv.ParseInt(strings.TrimPrefix(line, ProgressTimePrefix), 10, 64)
	if err != nil {
		return 0, false
	}
	return float64(us) / 1000000.0, true
}

// monitorProgress reads ffmpeg progress output until EOF
func monitorProgress(stderr io.Reader, totalDuration float64, onProgress func(float64)) {
	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		seconds, ok := ParseProgressLine(scanner.Text())
		if !ok || totalDuration <= 0 || onProgress == nil {
			continue
		}
		progress := seconds / totalDuration
		if progress > 1.0 {
			progress = 1.0
		}
		onProgress(progress)
	}
}
