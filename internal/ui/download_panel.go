package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-streams/internal/config"
	"github.com/ytget/yt-streams/internal/download"
	"github.com/ytget/yt-streams/internal/model"
	"github.com/ytget/yt-streams/internal/platform"
)

// DownloadPanel owns the progress bar of a window and follows the one task
// the window started
type DownloadPanel struct {
	window       fyne.Window
	localization *Localization
	downloads    download.Downloader
	settings     *config.Settings
	logger       *slog.Logger

	progress *widget.ProgressBar
	status   *widget.Label
	stopBtn  *widget.Button
	content  *fyne.Container

	mu     sync.Mutex
	taskID string

	openFile func(path string) error

	// OnFinished runs on the UI goroutine once the tracked task ends
	OnFinished func(task *model.DownloadTask)
}

// NewDownloadPanel creates the panel and registers it for task updates
func NewDownloadPanel(window fyne.Window, localization *Localization, services *Services) *DownloadPanel {
	dp := &DownloadPanel{
		window:       window,
		localization: localization,
		downloads:    services.Downloads,
		settings:     services.Settings,
		logger:       services.logger().With("component", "ui"),
		openFile:     platform.OpenFileWithDefaultApp,
	}

	dp.progress = widget.NewProgressBar()
	dp.progress.Min = 0
	dp.progress.Max = 100

	dp.status = widget.NewLabel("")
	dp.status.Importance = widget.LowImportance

	dp.stopBtn = widget.NewButton(localization.GetText(KeyStop), dp.onStop)
	dp.stopBtn.Importance = widget.LowImportance
	dp.stopBtn.Disable()

	dp.content = container.NewVBox(
		dp.progress,
		container.NewBorder(nil, nil, nil, dp.stopBtn, dp.status),
	)

	dp.downloads.SetUpdateCallback(dp.HandleUpdate)
	return dp
}

// Container returns the panel's canvas object
func (dp *DownloadPanel) Container() *fyne.Container {
	return dp.content
}

// Progress returns the bar value, 0 to 100
func (dp *DownloadPanel) Progress() float64 {
	return dp.progress.Value
}

// StatusText returns the line under the bar
func (dp *DownloadPanel) StatusText() string {
	return dp.status.Text
}

// Busy reports whether a task is being followed
func (dp *DownloadPanel) Busy() bool {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	return dp.taskID != ""
}

// Reset zeroes the bar
func (dp *DownloadPanel) Reset() {
	dp.progress.SetValue(0)
	dp.status.SetText("")
}

// Start queues a download and follows it. Must run on the UI goroutine.
func (dp *DownloadPanel) Start(req download.Request) error {
	dp.Reset()

	task, err := dp.downloads.AddTask(req)
	if err != nil {
		return err
	}

	dp.mu.Lock()
	dp.taskID = task.ID
	dp.mu.Unlock()
	dp.stopBtn.Enable()

	// the task may have moved on before its ID was known here
	if current, ok := dp.downloads.GetTask(task.ID); ok {
		dp.apply(current)
	}
	return nil
}

// SetStopText relabels the stop button after a language change
func (dp *DownloadPanel) SetStopText(text string) {
	dp.stopBtn.SetText(text)
}

// HandleUpdate receives task updates from the download service goroutines
func (dp *DownloadPanel) HandleUpdate(task *model.DownloadTask) {
	dp.mu.Lock()
	tracked := task.ID == dp.taskID
	dp.mu.Unlock()

	if !tracked {
		return
	}
	fyne.Do(func() {
		dp.apply(task)
	})
}

func (dp *DownloadPanel) onStop() {
	dp.mu.Lock()
	id := dp.taskID
	dp.mu.Unlock()
	if id == "" {
		return
	}

	if err := dp.downloads.StopTask(id); err != nil {
		dp.logger.Warn("failed to stop download", "task", id, "error", err)
	}
}

// apply renders a task update. UI goroutine only.
func (dp *DownloadPanel) apply(task *model.DownloadTask) {
	dp.mu.Lock()
	if task.ID != dp.taskID {
		dp.mu.Unlock()
		return
	}
	if task.Status.IsFinished() {
		dp.taskID = ""
	}
	dp.mu.Unlock()

	dp.progress.SetValue(float64(task.Percent))
	dp.status.SetText(FormatTaskStatus(dp.localization, task))

	if task.Status.CanStop() {
		dp.stopBtn.Enable()
	} else {
		dp.stopBtn.Disable()
	}
	if !task.Status.IsFinished() {
		return
	}

	switch task.Status {
	case model.TaskStatusCompleted:
		dp.progress.SetValue(100)
		dp.showCompleted(task.OutputPath)
		if dp.settings != nil && dp.settings.GetAutoRevealOnComplete() {
			if err := platform.OpenFileInManager(task.OutputPath); err != nil {
				dp.logger.Warn(dp.localization.GetText(KeyErrorOpeningFile), "path", task.OutputPath, "error", err)
			}
		}
	case model.TaskStatusError:
		dp.ShowFailure(errors.New(task.LastError))
	case model.TaskStatusStopped:
		dp.progress.SetValue(0)
	}

	if dp.OnFinished != nil {
		dp.OnFinished(task)
	}
}

// showCompleted tells the user the download finished and offers to open
// the file with the system's default application
func (dp *DownloadPanel) showCompleted(path string) {
	confirm := dialog.NewConfirm(
		dp.localization.GetText(KeySuccess),
		dp.localization.GetText(KeyDownloadCompleted),
		func(open bool) {
			if open {
				dp.openCompleted(path)
			}
		},
		dp.window,
	)
	confirm.SetConfirmText(dp.localization.GetText(KeyOpen))
	confirm.SetDismissText(dp.localization.GetText(KeyClose))
	confirm.Show()
}

// openCompleted opens a finished download. A failure is shown, not fatal.
func (dp *DownloadPanel) openCompleted(path string) {
	if path == "" {
		return
	}
	if err := dp.openFile(path); err != nil {
		dp.logger.Warn(dp.localization.GetText(KeyErrorOpeningFile), "path", path, "error", err)
		dialog.ShowError(fmt.Errorf("%s: %w", dp.localization.GetText(KeyErrorOpeningFile), err), dp.window)
	}
}

// ShowFailure shows the "Download failed" dialog for err
func (dp *DownloadPanel) ShowFailure(err error) {
	dialog.ShowError(fmt.Errorf("%s:\n%w", dp.localization.GetText(KeyDownloadFailed), err), dp.window)
}

// FormatTaskStatus renders the line under the progress bar
func FormatTaskStatus(localization *Localization, task *model.DownloadTask) string {
	switch task.Status {
	case model.TaskStatusDownloading:
		parts := []string{fmt.Sprintf(ProgressLabelFormat, task.Percent)}
		if task.BytesTotal > 0 {
			parts = append(parts, model.FormatFileSize(task.BytesDone)+" / "+model.FormatFileSize(task.BytesTotal))
		}
		if task.Speed != "" {
			parts = append(parts, task.Speed)
		}
		if task.ETASec > 0 {
			parts = append(parts, task.GetETAString())
		}
		return strings.Join(parts, MiddleDotSeparator)
	case model.TaskStatusConverting:
		return localization.GetText(KeyConverting) + MiddleDotSeparator + fmt.Sprintf(ProgressLabelFormat, task.Percent)
	case model.TaskStatusCompleted:
		return task.OutputPath
	case model.TaskStatusStopped:
		return localization.GetText(KeyStopped)
	case model.TaskStatusError:
		return localization.GetText(KeyDownloadFailed)
	default:
		return task.Status.String() + "..."
	}
}
