package tui

import (
	"time"

	"reelsmith/jobs"
)

// Messages for the tea program (polling-based)

// HealthCheckMsg is sent after probing the render API
type HealthCheckMsg struct {
	Err error
}

// JobSubmittedMsg is sent when a render job has been queued
type JobSubmittedMsg struct {
	JobID string
	Err   error
}

// JobStatusMsg is sent when we receive a job snapshot from the server
type JobStatusMsg struct {
	Status *jobs.Status
	Err    error
}

// TickMsg is sent periodically to trigger polling
type TickMsg struct {
	Time time.Time
}
