package store

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"viralengine-backend/internal/models"
)

var (
	ErrNotFound     = errors.New("job not found")
	ErrInvalidState = errors.New("job is not in a state that allows this operation")
)

const historyFile = "generation_history.json"

// JobStore keeps every job in memory and persists a snapshot of settled
// jobs (completed, failed, script_ready) to a single JSON file.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[string]*models.Job
	dir  string
}

func NewJobStore(dir string) *JobStore {
	return &JobStore{
		jobs: make(map[string]*models.Job),
		dir:  dir,
	}
}

// NewID returns a short job identifier.
func NewID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

func (s *JobStore) Create(job *models.Job) {
	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()
}

// Get returns a copy of the job so callers never see concurrent mutation.
func (s *JobStore) Get(id string) (models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return models.Job{}, ErrNotFound
	}
	return cloneJob(job), nil
}

// cloneJob deep-copies the pointer and slice fields; a shallow copy would
// still alias the live record.
func cloneJob(job *models.Job) models.Job {
	out := *job
	if job.ScriptData != nil {
		sd := *job.ScriptData
		sd.SEOKeywords = append([]string(nil), job.ScriptData.SEOKeywords...)
		sd.Timeline = append([]models.TimelineEntry(nil), job.ScriptData.Timeline...)
		out.ScriptData = &sd
	}
	if job.Captions != nil {
		out.Captions = append([]models.Caption(nil), job.Captions...)
	}
	if job.Trends != nil {
		tr := *job.Trends
		tr.SEOKeywords = append([]string(nil), job.Trends.SEOKeywords...)
		tr.HookPatterns = append([]models.HookPattern(nil), job.Trends.HookPatterns...)
		out.Trends = &tr
	}
	if job.Result != nil {
		res := *job.Result
		res.Captions = append([]string(nil), job.Result.Captions...)
		res.Products = append([]models.Product(nil), job.Result.Products...)
		out.Result = &res
	}
	if job.Error != nil {
		msg := *job.Error
		out.Error = &msg
	}
	return out
}

// Mutate applies fn to the job while holding the write lock. fn returning an
// error leaves any changes it already made in place, so mutations should
// validate before writing.
func (s *JobStore) Mutate(id string, fn func(*models.Job) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[id]
	if !ok {
		return ErrNotFound
	}
	return fn(job)
}

func (s *JobStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[id]; !ok {
		return ErrNotFound
	}
	delete(s.jobs, id)
	return nil
}

// List returns copies of all jobs, most recent first.
func (s *JobStore) List() []models.Job {
	s.mu.RLock()
	out := make([]models.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		out = append(out, cloneJob(job))
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	return out
}

// Latest returns the most recently started job.
func (s *JobStore) Latest() (models.Job, error) {
	jobs := s.List()
	if len(jobs) == 0 {
		return models.Job{}, ErrNotFound
	}
	return jobs[0], nil
}

func settled(status string) bool {
	switch status {
	case models.StatusCompleted, models.StatusFailed, models.StatusScriptReady:
		return true
	}
	return false
}

// Save writes settled jobs to the history file. Failures are logged and
// swallowed so persistence problems never break a request.
func (s *JobStore) Save() {
	s.mu.RLock()
	snapshot := make(map[string]models.Job, len(s.jobs))
	for id, job := range s.jobs {
		if settled(job.Status) {
			// Cloned because marshaling happens after the lock is released.
			snapshot[id] = cloneJob(job)
		}
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		log.Printf("history snapshot marshal failed: %v", err)
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Printf("history snapshot dir failed: %v", err)
		return
	}
	if err := os.WriteFile(s.path(), data, 0o644); err != nil {
		log.Printf("history snapshot write failed: %v", err)
	}
}

// Load reads the history file, if present, back into memory.
func (s *JobStore) Load() {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("history snapshot read failed: %v", err)
		}
		return
	}

	var snapshot map[string]models.Job
	if err := json.Unmarshal(data, &snapshot); err != nil {
		log.Printf("history snapshot parse failed: %v", err)
		return
	}

	s.mu.Lock()
	for id, job := range snapshot {
		j := job
		s.jobs[id] = &j
	}
	s.mu.Unlock()
	log.Printf("loaded %d jobs from history", len(snapshot))
}

func (s *JobStore) path() string {
	return filepath.Join(s.dir, historyFile)
}
