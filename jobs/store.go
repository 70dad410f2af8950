package jobs

import (
	"sync"

	"reelsmith/types"

	"github.com/google/uuid"
)

// Store keeps in-flight and finished jobs in memory, keyed by ID.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

// NewStore creates an empty job store.
func NewStore() *Store {
	return &Store{jobs: make(map[string]*Job)}
}

// Create registers a new queued job. When the request carries no UUID one is
// assigned, and the assigned value is visible on the job's request.
func (s *Store) Create(req types.RenderRequest) *Job {
	if req.UUID == "" {
		req.UUID = uuid.New().String()
	}

	job := NewJob(req.UUID, req)

	s.mu.Lock()
	s.jobs[job.ID()] = job
	s.mu.Unlock()
	return job
}

// Get looks up a job by ID.
func (s *Store) Get(id string) (*Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	return job, ok
}

// Statuses snapshots every job, for listing endpoints.
func (s *Store) Statuses() []Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Status, 0, len(s.jobs))
	for _, job := range s.jobs {
		out = append(out, job.GetStatus())
	}
	return out
}
