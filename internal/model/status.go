package model

// TaskStatus is the lifecycle state of a download task
type TaskStatus string

const (
	TaskStatusPending     TaskStatus = "Pending"     // queued, waiting for a slot
	TaskStatusStarting    TaskStatus = "Starting"    // stream is being opened
	TaskStatusDownloading TaskStatus = "Downloading" // bytes are being written to the .part file
	TaskStatusConverting  TaskStatus = "Converting"  // ffmpeg is transcoding the download
	TaskStatusStopping    TaskStatus = "Stopping"    // cancel requested, worker still unwinding
	TaskStatusStopped     TaskStatus = "Stopped"     // cancelled by the user
	TaskStatusCompleted   TaskStatus = "Completed"   // file is in place
	TaskStatusError       TaskStatus = "Error"       // failed, see LastError
)

type statusPhase int

const (
	phaseQueued statusPhase = iota
	phaseRunning
	phaseFinished
)

var statusPhases = map[TaskStatus]statusPhase{
	TaskStatusPending:     phaseQueued,
	TaskStatusStarting:    phaseRunning,
	TaskStatusDownloading: phaseRunning,
	TaskStatusConverting:  phaseRunning,
	TaskStatusStopping:    phaseRunning,
	TaskStatusStopped:     phaseFinished,
	TaskStatusCompleted:   phaseFinished,
	TaskStatusError:       phaseFinished,
}

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive reports whether a worker goroutine owns the task
func (ts TaskStatus) IsActive() bool {
	phase, ok := statusPhases[ts]
	return ok && phase == phaseRunning
}

// IsFinished reports whether the task reached a terminal state
func (ts TaskStatus) IsFinished() bool {
	phase, ok := statusPhases[ts]
	return ok && phase == phaseFinished
}

// CanStop reports whether a stop request would still change anything
func (ts TaskStatus) CanStop() bool {
	phase, ok := statusPhases[ts]
	return ok && phase != phaseFinished && ts != TaskStatusStopping
}
