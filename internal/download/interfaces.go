package download

import (
	"context"
	"io"

	"github.com/ytget/yt-streams/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadTask))
	AddTask(req Request) (*model.DownloadTask, error)
	GetTask(id string) (*model.DownloadTask, bool)
	GetAllTasks() []*model.DownloadTask
	StopTask(id string) error

	// SetMaxParallelDownloads sets the maximum number of parallel downloads
	SetMaxParallelDownloads(max int)
}

// StreamOpener opens the byte stream of one variant of a looked up video.
// The returned size is 0 when the host does not report it.
type StreamOpener interface {
	OpenStream(ctx context.Context, videoID string, itag int) (io.ReadCloser, int64, error)
}

// Transcoder converts a downloaded file into the format its name asks for
type Transcoder interface {
	Available() bool
	NeedsTranscode(stream model.Stream, path string) bool
	Transcode(ctx context.Context, inputPath, outputPath string, onProgress func(float64)) error
}

// Recorder stores completed downloads
type Recorder interface {
	RecordDownload(ctx context.Context, task *model.DownloadTask) error
}

// Request describes what to download and where to put it
type Request struct {
	VideoID    string
	URL        string
	Title      string
	Stream     model.Stream
	OutputPath string
}
