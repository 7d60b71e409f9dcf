package ui

import (
	"context"
	"errors"
	"image"
	"io"
	"log/slog"
	"sync"

	"github.com/ytget/yt-streams/internal/download"
	"github.com/ytget/yt-streams/internal/model"
)

type fakeCatalog struct {
	video   *model.Video
	streams *model.StreamSet
	err     error
}

func (f *fakeCatalog) Lookup(ctx context.Context, rawURL string) (*model.Video, *model.StreamSet, error) {
	return f.video, f.streams, f.err
}

type fakeThumbnails struct{}

func (fakeThumbnails) Fetch(ctx context.Context, url string) (image.Image, error) {
	return nil, errors.New("no thumbnail")
}

type fakeDownloader struct {
	mu       sync.Mutex
	callback func(*model.DownloadTask)
	tasks    map[string]*model.DownloadTask
	requests []download.Request
	stopped  []string
	addErr   error
}

func newFakeDownloader() *fakeDownloader {
	return &fakeDownloader{tasks: make(map[string]*model.DownloadTask)}
}

func (f *fakeDownloader) SetUpdateCallback(cb func(*model.DownloadTask)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callback = cb
}

func (f *fakeDownloader) AddTask(req download.Request) (*model.DownloadTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.requests = append(f.requests, req)
	task := &model.DownloadTask{
		ID:         "task-1",
		Title:      req.Title,
		Stream:     req.Stream,
		OutputPath: req.OutputPath,
		Status:     model.TaskStatusPending,
		ETASec:     -1,
	}
	f.tasks[task.ID] = task
	copied := *task
	return &copied, nil
}

func (f *fakeDownloader) GetTask(id string) (*model.DownloadTask, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, ok := f.tasks[id]
	if !ok {
		return nil, false
	}
	copied := *task
	return &copied, true
}

func (f *fakeDownloader) GetAllTasks() []*model.DownloadTask {
	f.mu.Lock()
	defer f.mu.Unlock()
	tasks := make([]*model.DownloadTask, 0, len(f.tasks))
	for _, task := range f.tasks {
		copied := *task
		tasks = append(tasks, &copied)
	}
	return tasks
}

func (f *fakeDownloader) StopTask(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = append(f.stopped, id)
	return nil
}

func (f *fakeDownloader) SetMaxParallelDownloads(int) {}

type fakeHistory struct {
	entries []*model.HistoryEntry
	cleared bool
}

func (f *fakeHistory) Recent(ctx context.Context, limit int) ([]*model.HistoryEntry, error) {
	return f.entries, nil
}

func (f *fakeHistory) Clear(ctx context.Context) error {
	f.cleared = true
	f.entries = nil
	return nil
}

func testStreamSet() *model.StreamSet {
	return &model.StreamSet{
		Progressive: []model.Stream{
			{Itag: 22, Kind: model.StreamKindProgressive, MimeType: "video/mp4", Resolution: "720p", FPS: 30, FileSize: 1024},
		},
		VideoOnly: []model.Stream{
			{Itag: 137, Kind: model.StreamKindVideoOnly, MimeType: "video/mp4", Resolution: "1080p", FPS: 30},
			{Itag: 136, Kind: model.StreamKindVideoOnly, MimeType: "video/mp4", Resolution: "720p", FPS: 30},
		},
		Audio: []model.Stream{
			{Itag: 140, Kind: model.StreamKindAudioOnly, MimeType: "audio/mp4", ABR: "128kbps", FileSize: 2048},
		},
	}
}

func testVideo() *model.Video {
	return &model.Video{
		ID:            "dQw4w9WgXcQ",
		URL:           "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Title:         "Test Video",
		Author:        "Channel",
		LengthSeconds: 212,
		Views:         1234567,
	}
}

func testServices() (*Services, *fakeDownloader) {
	downloads := newFakeDownloader()
	return &Services{
		Catalog:    &fakeCatalog{video: testVideo(), streams: testStreamSet()},
		Thumbnails: fakeThumbnails{},
		Downloads:  downloads,
	}, downloads
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
