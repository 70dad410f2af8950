package jobs

import (
	"fmt"
	"sync"
	"time"

	"reelsmith/types"
)

// State is a render job's lifecycle phase.
type State string

const (
	StateQueued    State = "queued"
	StateFetching  State = "fetching"
	StateRendering State = "rendering"
	StateEncoding  State = "encoding"
	StateUploading State = "uploading"
	StateComplete  State = "complete"
	StateError     State = "error"
)

const maxLogs = 50

// Job tracks one asynchronous video render with thread-safe access.
type Job struct {
	mu sync.RWMutex

	id      string
	request types.RenderRequest
	state   State
	created time.Time

	// Progress through the current phase, 0..total frames while rendering.
	frameDone  int
	frameTotal int

	outputPath  string
	artifactKey string
	videoID     string

	logs    []types.LogEntry
	lastErr error
}

// NewJob creates a queued job for the given request.
func NewJob(id string, req types.RenderRequest) *Job {
	return &Job{
		id:      id,
		request: req,
		state:   StateQueued,
		created: time.Now(),
		logs:    make([]types.LogEntry, 0),
	}
}

// ID returns the job's identifier.
func (j *Job) ID() string { return j.id }

// Request returns the render request the job was created with.
func (j *Job) Request() types.RenderRequest {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.request
}

// AddLog appends a progress line, dropping the oldest past the cap.
func (j *Job) AddLog(message string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.appendLog(message)
}

func (j *Job) appendLog(message string) {
	j.logs = append(j.logs, types.LogEntry{Timestamp: time.Now(), Message: message})
	if len(j.logs) > maxLogs {
		j.logs = j.logs[len(j.logs)-maxLogs:]
	}
}

// SetState moves the job to a new phase.
func (j *Job) SetState(state State) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.state = state
	j.appendLog(fmt.Sprintf("state: %s", state))
}

// GetState returns the current phase.
func (j *Job) GetState() State {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.state
}

// SetError marks the job failed.
func (j *Job) SetError(err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.state = StateError
	j.lastErr = err
	j.appendLog(fmt.Sprintf("Error: %v", err))
}

// SetProgress reports frame progress while rendering.
func (j *Job) SetProgress(done, total int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.frameDone = done
	j.frameTotal = total
}

// SetOutputPath records where the encoded file landed on disk.
func (j *Job) SetOutputPath(path string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.outputPath = path
	j.appendLog(fmt.Sprintf("output: %s", path))
}

// OutputPath returns the local artifact path, empty until encoding is done.
func (j *Job) OutputPath() string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.outputPath
}

// SetArtifactKey records the uploaded artifact's bucket key.
func (j *Job) SetArtifactKey(key string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.artifactKey = key
}

// SetVideoID records the published YouTube video ID.
func (j *Job) SetVideoID(id string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.videoID = id
}

// Status is a point-in-time snapshot for polling clients.
type Status struct {
	ID          string           `json:"id"`
	State       State            `json:"state"`
	CreatedAt   time.Time        `json:"created_at"`
	FrameDone   int              `json:"frame_done"`
	FrameTotal  int              `json:"frame_total"`
	OutputPath  string           `json:"output_path,omitempty"`
	ArtifactKey string           `json:"artifact_key,omitempty"`
	VideoID     string           `json:"video_id,omitempty"`
	Logs        []types.LogEntry `json:"logs"`
	Error       string           `json:"error,omitempty"`
}

// GetStatus returns a snapshot of the job.
func (j *Job) GetStatus() Status {
	j.mu.RLock()
	defer j.mu.RUnlock()

	s := Status{
		ID:          j.id,
		State:       j.state,
		CreatedAt:   j.created,
		FrameDone:   j.frameDone,
		FrameTotal:  j.frameTotal,
		OutputPath:  j.outputPath,
		ArtifactKey: j.artifactKey,
		VideoID:     j.videoID,
		Logs:        append([]types.LogEntry{}, j.logs...),
	}
	if j.lastErr != nil {
		s.Error = j.lastErr.Error()
	}
	return s
}
