package store

import (
	"errors"
	"testing"
	"time"

	"viralengine-backend/internal/models"
)

func newJob(id, topic, status string, startedAt time.Time) *models.Job {
	return &models.Job{
		ID:        id,
		Topic:     topic,
		Language:  "en",
		Status:    status,
		Phase:     "phase1",
		StartedAt: startedAt,
	}
}

func TestJobStoreCRUD(t *testing.T) {
	s := NewJobStore(t.TempDir())

	s.Create(newJob("aaa11111", "topic one", models.StatusPending, time.Now()))

	job, err := s.Get("aaa11111")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if job.Topic != "topic one" {
		t.Errorf("topic = %q", job.Topic)
	}

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}

	if err := s.Delete("aaa11111"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Delete("aaa11111"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestJobStoreMutateIsolation(t *testing.T) {
	s := NewJobStore(t.TempDir())
	s.Create(newJob("bbb22222", "topic", models.StatusScriptReady, time.Now()))

	// A copy from Get must not leak mutations back into the store.
	detached, _ := s.Get("bbb22222")
	detached.Status = models.StatusFailed
	fresh, _ := s.Get("bbb22222")
	if fresh.Status != models.StatusScriptReady {
		t.Error("Get returned a live reference instead of a copy")
	}

	err := s.Mutate("bbb22222", func(j *models.Job) error {
		if j.Status != models.StatusScriptReady {
			return ErrInvalidState
		}
		j.Status = models.StatusRunning
		j.Progress = 55
		return nil
	})
	if err != nil {
		t.Fatalf("Mutate failed: %v", err)
	}

	job, _ := s.Get("bbb22222")
	if job.Status != models.StatusRunning || job.Progress != 55 {
		t.Errorf("mutation not applied: %+v", job)
	}

	if err := s.Mutate("missing", func(j *models.Job) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Errorf("Mutate(missing) = %v, want ErrNotFound", err)
	}
}

func TestGetReturnsDetachedPointerFields(t *testing.T) {
	s := NewJobStore(t.TempDir())
	job := newJob("ccc33333", "topic", models.StatusScriptReady, time.Now())
	job.ScriptData = &models.ScriptData{
		Topic: "topic",
		Timeline: []models.TimelineEntry{
			{Timecode: "0-2s", VisualCue: "shot", Audio: "original line"},
		},
	}
	job.Captions = []models.Caption{{Timecode: "0-2s", Text: "ORIGINAL"}}
	job.Trends = &models.TrendsSnapshot{SEOKeywords: []string{"Keyword"}}
	s.Create(job)

	got, _ := s.Get("ccc33333")
	got.ScriptData.Timeline[0].Audio = "tampered"
	got.ScriptData.Topic = "tampered"
	got.Captions[0].Text = "TAMPERED"
	got.Trends.SEOKeywords[0] = "Tampered"

	fresh, _ := s.Get("ccc33333")
	if fresh.ScriptData.Timeline[0].Audio != "original line" {
		t.Error("timeline aliased through Get")
	}
	if fresh.ScriptData.Topic != "topic" {
		t.Error("script data aliased through Get")
	}
	if fresh.Captions[0].Text != "ORIGINAL" {
		t.Error("captions aliased through Get")
	}
	if fresh.Trends.SEOKeywords[0] != "Keyword" {
		t.Error("trends aliased through Get")
	}

	listed := s.List()
	listed[0].ScriptData.Timeline[0].Audio = "tampered again"
	fresh, _ = s.Get("ccc33333")
	if fresh.ScriptData.Timeline[0].Audio != "original line" {
		t.Error("timeline aliased through List")
	}
}

func TestJobStoreListOrder(t *testing.T) {
	s := NewJobStore(t.TempDir())
	base := time.Now()
	s.Create(newJob("old11111", "oldest", models.StatusCompleted, base.Add(-2*time.Hour)))
	s.Create(newJob("mid11111", "middle", models.StatusCompleted, base.Add(-time.Hour)))
	s.Create(newJob("new11111", "newest", models.StatusCompleted, base))

	jobs := s.List()
	if len(jobs) != 3 {
		t.Fatalf("List returned %d jobs", len(jobs))
	}
	if jobs[0].ID != "new11111" || jobs[2].ID != "old11111" {
		t.Errorf("wrong order: %s, %s, %s", jobs[0].ID, jobs[1].ID, jobs[2].ID)
	}

	latest, err := s.Latest()
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if latest.ID != "new11111" {
		t.Errorf("Latest = %s, want new11111", latest.ID)
	}
}

func TestJobStorePersistsOnlySettledJobs(t *testing.T) {
	dir := t.TempDir()
	s := NewJobStore(dir)
	now := time.Now()

	s.Create(newJob("done1111", "done", models.StatusCompleted, now))
	s.Create(newJob("fail1111", "failed", models.StatusFailed, now))
	s.Create(newJob("wait1111", "waiting", models.StatusScriptReady, now))
	s.Create(newJob("run11111", "running", models.StatusRunning, now))
	s.Create(newJob("pend1111", "pending", models.StatusPending, now))
	s.Save()

	reloaded := NewJobStore(dir)
	reloaded.Load()

	for _, id := range []string{"done1111", "fail1111", "wait1111"} {
		if _, err := reloaded.Get(id); err != nil {
			t.Errorf("settled job %s not persisted: %v", id, err)
		}
	}
	for _, id := range []string{"run11111", "pend1111"} {
		if _, err := reloaded.Get(id); !errors.Is(err, ErrNotFound) {
			t.Errorf("in-flight job %s should not persist", id)
		}
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	if len(a) != 8 || len(b) != 8 {
		t.Errorf("ids have wrong length: %q, %q", a, b)
	}
	if a == b {
		t.Error("consecutive ids collided")
	}
}
