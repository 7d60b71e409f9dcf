package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/disk"

	applog "github.com/ytget/yt-streams/internal/logger"
	"github.com/ytget/yt-streams/internal/model"
	"github.com/ytget/yt-streams/internal/platform"
)

// Service defaults
const (
	DefaultMaxParallel      = 2
	MaxParallelLimit        = 10
	DefaultRetryDelay       = 2 * time.Second
	DefaultProgressInterval = 200 * time.Millisecond
	MaxRetries              = 1
	PartialSuffix           = ".part"
	TaskIDPrefix            = "task-"
)

var (
	// ErrTaskNotFound is returned for unknown task IDs
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskNotActive is returned when stopping a finished task
	ErrTaskNotActive = errors.New("task is not active")

	// ErrEmptyOutputPath is returned when no file was chosen
	ErrEmptyOutputPath = errors.New("output path is empty")

	// ErrDuplicateOutput is returned when another unfinished task writes the same file
	ErrDuplicateOutput = errors.New("a download to this file is already running")

	// ErrInsufficientSpace is returned when the target volume cannot hold the stream
	ErrInsufficientSpace = errors.New("not enough free disk space")
)

// FreeSpaceFunc reports the free bytes on the volume holding dir
type FreeSpaceFunc func(ctx context.Context, dir string) (uint64, error)

// Service handles download operations
type Service struct {
	opener     StreamOpener
	transcoder Transcoder
	recorder   Recorder
	logger     *slog.Logger

	tasks       map[string]*model.DownloadTask
	order       []string
	cancels     map[string]context.CancelFunc
	tasksMutex  sync.RWMutex
	maxParallel int
	activeCount int
	onUpdate    func(*model.DownloadTask) // callback for UI updates

	freeSpace        FreeSpaceFunc
	retryDelay       time.Duration
	progressInterval time.Duration
}

// NewService creates a new download service
func NewService(opener StreamOpener, maxParallel int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		opener:           opener,
		logger:           logger.With("component", "download"),
		tasks:            make(map[string]*model.DownloadTask),
		cancels:          make(map[string]context.CancelFunc),
		maxParallel:      clampParallel(maxParallel),
		freeSpace:        diskFree,
		retryDelay:       DefaultRetryDelay,
		progressInterval: DefaultProgressInterval,
	}
}

// SetTranscoder enables conversion of audio downloads saved as .mp3
func (s *Service) SetTranscoder(t Transcoder) {
	s.transcoder = t
}

// SetRecorder enables the download history
func (s *Service) SetRecorder(r Recorder) {
	s.recorder = r
}

// SetUpdateCallback sets the callback function for task updates.
// The callback receives a copy and runs on the download goroutine.
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	s.onUpdate = callback
}

// SetMaxParallelDownloads sets the maximum number of parallel downloads
func (s *Service) SetMaxParallelDownloads(max int) {
	s.tasksMutex.Lock()
	s.maxParallel = clampParallel(max)
	s.tasksMutex.Unlock()

	s.startNextPendingTask()
}

// AddTask queues a download and starts it if a slot is free
func (s *Service) AddTask(req Request) (*model.DownloadTask, error) {
	if req.OutputPath == "" {
		return nil, ErrEmptyOutputPath
	}
	outputPath := filepath.Clean(req.OutputPath)

	s.tasksMutex.Lock()

	for _, task := range s.tasks {
		if task.OutputPath == outputPath && !task.Status.IsFinished() {
			s.tasksMutex.Unlock()
			return nil, fmt.Errorf("%w: %s", ErrDuplicateOutput, outputPath)
		}
	}

	task := &model.DownloadTask{
		ID:         generateTaskID(),
		VideoID:    req.VideoID,
		URL:        req.URL,
		Title:      req.Title,
		Stream:     req.Stream,
		OutputPath: outputPath,
		Status:     model.TaskStatusPending,
		BytesTotal: req.Stream.FileSize,
		ETASec:     -1,
		StartedAt:  time.Now(),
	}

	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)

	// Try to start task if we have capacity
	if s.activeCount < s.maxParallel {
		s.launchLocked(task)
	}
	snapshot := task.Snapshot()
	s.tasksMutex.Unlock()

	s.logger.Info("download queued", "task", task.ID, "video", req.VideoID, "itag", req.Stream.Itag, "path", outputPath)
	s.notifyUpdate(&snapshot)
	return &snapshot, nil
}

// GetTask returns a copy of a task by ID
func (s *Service) GetTask(id string) (*model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	task, exists := s.tasks[id]
	if !exists {
		return nil, false
	}
	snapshot := task.Snapshot()
	return &snapshot, true
}

// GetAllTasks returns copies of all tasks in the order they were added
func (s *Service) GetAllTasks() []*model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.DownloadTask, 0, len(s.order))
	for _, id := range s.order {
		snapshot := s.tasks[id].Snapshot()
		tasks = append(tasks, &snapshot)
	}
	return tasks
}

// StopTask cancels a running or pending task
func (s *Service) StopTask(id string) error {
	s.tasksMutex.Lock()

	task, exists := s.tasks[id]
	if !exists {
		s.tasksMutex.Unlock()
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	switch {
	case task.Status == model.TaskStatusPending:
		task.Status = model.TaskStatusStopped
		task.FinishedAt = time.Now()
	case task.Status.IsActive():
		task.Status = model.TaskStatusStopping
		if cancel, ok := s.cancels[id]; ok {
			cancel()
		}
	default:
		s.tasksMutex.Unlock()
		return fmt.Errorf("%w: %s", ErrTaskNotActive, task.Status)
	}
	snapshot := task.Snapshot()
	s.tasksMutex.Unlock()

	s.notifyUpdate(&snapshot)
	return nil
}

// launchLocked reserves a slot and starts the task goroutine.
// Caller must hold tasksMutex.
func (s *Service) launchLocked(task *model.DownloadTask) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancels[task.ID] = cancel
	s.activeCount++
	task.Status = model.TaskStatusStarting
	go s.startTask(ctx, task)
}

// startTask runs one download to completion
func (s *Service) startTask(ctx context.Context, task *model.DownloadTask) {
	start := time.Now()

	defer func() {
		s.tasksMutex.Lock()
		s.activeCount--
		if cancel, ok := s.cancels[task.ID]; ok {
			cancel()
			delete(s.cancels, task.ID)
		}
		s.tasksMutex.Unlock()

		// Try to start next pending task
		s.startNextPendingTask()
	}()

	err := s.checkFreeSpace(ctx, task)
	if err == nil {
		err = s.downloadWithRetry(ctx, task)
	}
	if err == nil {
		err = s.finalize(ctx, task)
	}

	// Update final status. A stop that arrives after the file is in place
	// does not undo the download.
	s.tasksMutex.Lock()
	switch {
	case err == nil:
		task.Status = model.TaskStatusCompleted
		task.Progress = 1.0
		task.Percent = 100
		task.ETASec = -1
	case ctx.Err() != nil:
		task.Status = model.TaskStatusStopped
	default:
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	}
	task.FinishedAt = time.Now()
	snapshot := task.Snapshot()
	s.tasksMutex.Unlock()

	switch snapshot.Status {
	case model.TaskStatusCompleted:
		s.logger.Info("download completed", "task", task.ID, "title", snapshot.GetDisplayTitle(),
			"path", snapshot.OutputPath, "bytes", snapshot.BytesDone, applog.Since(start))
		s.record(&snapshot)
	case model.TaskStatusStopped:
		s.logger.Info("download stopped", "task", task.ID, "title", snapshot.GetDisplayTitle())
	default:
		s.logger.Error("download failed", "task", task.ID, "title", snapshot.GetDisplayTitle(), "error", err)
	}

	s.notifyUpdate(&snapshot)
}

// checkFreeSpace fails early when the stream size is known and the target
// volume is too small. Errors from the probe itself are only logged.
func (s *Service) checkFreeSpace(ctx context.Context, task *model.DownloadTask) error {
	need := task.Stream.FileSize
	if need <= 0 || s.freeSpace == nil {
		return nil
	}

	dir := filepath.Dir(task.OutputPath)
	free, err := s.freeSpace(ctx, dir)
	if err != nil {
		s.logger.Warn("failed to read free disk space", "dir", dir, "error", err)
		return nil
	}
	if uint64(need) > free {
		return fmt.Errorf("%w: need %s, have %s", ErrInsufficientSpace,
			model.FormatFileSize(need), model.FormatFileSize(int64(free)))
	}
	return nil
}

// downloadWithRetry attempts download with retry logic
func (s *Service) downloadWithRetry(ctx context.Context, task *model.DownloadTask) error {
	var lastErr error

	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			// Backoff delay
			select {
			case <-time.After(s.retryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}

			s.logger.Info("retrying download", "task", task.ID, "attempt", attempt+1)
		}

		err := s.downloadOnce(ctx, task)
		if err == nil {
			return nil
		}

		lastErr = err
		s.logger.Warn("download attempt failed", "task", task.ID, "attempt", attempt+1, "error", err)

		// Check if we should retry
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return lastErr
}

// downloadOnce streams the variant into the partial file
func (s *Service) downloadOnce(ctx context.Context, task *model.DownloadTask) error {
	body, size, err := s.opener.OpenStream(ctx, task.VideoID, task.Stream.Itag)
	if err != nil {
		return fmt.Errorf("failed to open stream: %w", err)
	}
	defer body.Close()

	if size <= 0 {
		size = task.Stream.FileSize
	}

	s.tasksMutex.Lock()
	if task.Status != model.TaskStatusStopping {
		task.Status = model.TaskStatusDownloading
	}
	task.BytesTotal = size
	task.BytesDone = 0
	task.Progress = 0
	task.Percent = 0
	snapshot := task.Snapshot()
	s.tasksMutex.Unlock()
	s.notifyUpdate(&snapshot)

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(task.OutputPath)); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	partPath := task.OutputPath + PartialSuffix
	file, err := os.Create(partPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	progress := newProgressWriter(size, s.progressInterval, func(done, total int64, bytesPerSec float64) {
		s.updateTaskProgress(task, done, total, bytesPerSec)
	})

	_, copyErr := io.Copy(io.MultiWriter(file, progress), contextReader{ctx: ctx, r: body})
	closeErr := file.Close()
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		os.Remove(partPath)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("failed to write stream: %w", copyErr)
	}

	progress.flush()
	return nil
}

// finalize moves the partial file into place, converting it first when needed
func (s *Service) finalize(ctx context.Context, task *model.DownloadTask) error {
	partPath := task.OutputPath + PartialSuffix

	if s.transcoder != nil && s.transcoder.NeedsTranscode(task.Stream, task.OutputPath) {
		if !s.transcoder.Available() {
			s.logger.Warn("ffmpeg not available, keeping original audio encoding", "path", task.OutputPath)
		} else {
			return s.convert(ctx, task, partPath)
		}
	}

	if err := os.Rename(partPath, task.OutputPath); err != nil {
		os.Remove(partPath)
		return fmt.Errorf("failed to move download into place: %w", err)
	}
	return nil
}

func (s *Service) convert(ctx context.Context, task *model.DownloadTask, partPath string) error {
	defer os.Remove(partPath)

	s.tasksMutex.Lock()
	if task.Status != model.TaskStatusStopping {
		task.Status = model.TaskStatusConverting
	}
	task.Progress = 0
	task.Percent = 0
	task.ETASec = -1
	snapshot := task.Snapshot()
	s.tasksMutex.Unlock()
	s.notifyUpdate(&snapshot)

	err := s.transcoder.Transcode(ctx, partPath, task.OutputPath, func(progress float64) {
		s.tasksMutex.Lock()
		task.Progress = progress
		task.Percent = int(progress * 100)
		snapshot := task.Snapshot()
		s.tasksMutex.Unlock()
		s.notifyUpdate(&snapshot)
	})
	if err != nil {
		return fmt.Errorf("failed to convert audio: %w", err)
	}

	if info, statErr := os.Stat(task.OutputPath); statErr == nil {
		s.tasksMutex.Lock()
		task.BytesDone = info.Size()
		s.tasksMutex.Unlock()
	}
	return nil
}

// updateTaskProgress applies a progress report to the task
func (s *Service) updateTaskProgress(task *model.DownloadTask, done, total int64, bytesPerSec float64) {
	s.tasksMutex.Lock()
	task.BytesDone = done
	if total > 0 {
		task.BytesTotal = total
		task.Percent = percentOf(done, total)
		task.Progress = float64(task.Percent) / 100.0
	}
	if bytesPerSec > 0 {
		task.Speed = model.FormatFileSize(int64(bytesPerSec)) + "/s"
	}
	task.ETASec = etaSeconds(done, total, bytesPerSec)
	snapshot := task.Snapshot()
	s.tasksMutex.Unlock()

	s.notifyUpdate(&snapshot)
}

// record stores a completed task; failures never fail the download
func (s *Service) record(task *model.DownloadTask) {
	if s.recorder == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.recorder.RecordDownload(ctx, task); err != nil {
		s.logger.Warn("failed to record download history", "task", task.ID, "error", err)
	}
}

// startNextPendingTask starts pending tasks in FIFO order while there is capacity
func (s *Service) startNextPendingTask() {
	s.tasksMutex.Lock()
	var started []model.DownloadTask
	for _, id := range s.order {
		if s.activeCount >= s.maxParallel {
			break
		}
		task := s.tasks[id]
		if task.Status == model.TaskStatusPending {
			s.launchLocked(task)
			started = append(started, task.Snapshot())
		}
	}
	s.tasksMutex.Unlock()

	for i := range started {
		s.notifyUpdate(&started[i])
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(task)
	}
}

// diskFree reads free space with gopsutil
func diskFree(ctx context.Context, dir string) (uint64, error) {
	usage, err := disk.UsageWithContext(ctx, dir)
	if err != nil {
		return 0, err
	}
	return usage.Free, nil
}

func clampParallel(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxParallelLimit {
		return MaxParallelLimit
	}
	return n
}

// generateTaskID generates a unique task ID using UUID v7 for time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
