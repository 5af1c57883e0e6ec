package handler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// AnalysisJobStatus represents the lifecycle of an async analysis request.
type AnalysisJobStatus string

const (
	JobQueued    AnalysisJobStatus = "queued"
	JobRunning   AnalysisJobStatus = "running"
	JobCompleted AnalysisJobStatus = "completed"
	JobFailed    AnalysisJobStatus = "failed"
)

// AnalysisJob keeps track of one analysis run while it executes.
type AnalysisJob struct {
	ID        string            `json:"job_id"`
	Status    AnalysisJobStatus `json:"status"`
	Result    *AnalyzeResponse  `json:"result,omitempty"`
	Error     string            `json:"error,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// AnalysisJobManager stores job states indexed by job ID.
type AnalysisJobManager struct {
	mu      sync.RWMutex
	jobs    map[string]*AnalysisJob
	timeout time.Duration
}

// NewAnalysisJobManager constructs a job manager with no jobs.
func NewAnalysisJobManager() *AnalysisJobManager {
	return &AnalysisJobManager{
		jobs:    make(map[string]*AnalysisJob),
		timeout: 5 * time.Minute,
	}
}

// JobContext returns the context a background job should run under.
func (m *AnalysisJobManager) JobContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.timeout)
}

// NewJob registers a queued job.
func (m *AnalysisJobManager) NewJob() *AnalysisJob {
	job := &AnalysisJob{
		ID:        uuid.New().String(),
		Status:    JobQueued,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	m.mu.Lock()
	m.jobs[job.ID] = job
	m.mu.Unlock()
	return job
}

// SetRunning marks the job as running.
func (m *AnalysisJobManager) SetRunning(jobID string) {
	m.updateJob(jobID, func(job *AnalysisJob) {
		job.Status = JobRunning
	})
}

// CompleteJob stores the analysis payload and marks the job complete.
func (m *AnalysisJobManager) CompleteJob(jobID string, result *AnalyzeResponse) {
	m.updateJob(jobID, func(job *AnalysisJob) {
		job.Status = JobCompleted
		job.Result = result
	})
}

// FailJob records a failure and attaches a user-facing error message.
func (m *AnalysisJobManager) FailJob(jobID string, err error) {
	m.updateJob(jobID, func(job *AnalysisJob) {
		job.Status = JobFailed
		job.Error = err.Error()
	})
}

// GetJob fetches a snapshot of a job by ID. A copy is returned so callers
// can read it without racing the worker goroutine; the live struct never
// leaves the manager.
func (m *AnalysisJobManager) GetJob(jobID string) (*AnalysisJob, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return nil, false
	}

	snapshot := *job
	return &snapshot, true
}

func (m *AnalysisJobManager) updateJob(jobID string, update func(job *AnalysisJob)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[jobID]
	if !ok {
		return
	}

	update(job)
	job.UpdatedAt = time.Now()
}
