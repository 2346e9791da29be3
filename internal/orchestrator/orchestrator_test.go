package orchestrator

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"viralengine-backend/internal/logstream"
	"viralengine-backend/internal/models"
	"viralengine-backend/internal/script"
	"viralengine-backend/internal/services"
	"viralengine-backend/internal/store"
	"viralengine-backend/internal/trends"
)

type failingMedia struct{}

func (failingMedia) Render(ctx context.Context, timeline []models.TimelineEntry, captions []models.Caption) (*models.MediaResult, error) {
	return nil, errors.New("renderer offline")
}

func newTestOrchestrator(t *testing.T, media services.MediaForge) *Orchestrator {
	t.Helper()
	dir := t.TempDir()

	engine := script.NewEngine(nil, script.NewComposerWithRand(rand.New(rand.NewSource(11))), 30)
	engine.Logf = func(level, format string, args ...interface{}) {}

	return &Orchestrator{
		Store:        store.NewJobStore(dir),
		Engine:       engine,
		Trends:       trends.NewFileCollector(t.TempDir(), nil),
		Media:        media,
		Monetization: services.NewProfitAnalyzer(t.TempDir()),
		Broadcaster:  logstream.NewBroadcaster(),
		AssetsDir:    t.TempDir(),
		RenderDir:    t.TempDir(),
	}
}

func waitForStatus(t *testing.T, o *Orchestrator, id, status string) models.Job {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		job, err := o.Store.Get(id)
		if err != nil {
			t.Fatalf("job %s vanished: %v", id, err)
		}
		if job.Status == status {
			return job
		}
		if job.Status == models.StatusFailed && status != models.StatusFailed {
			t.Fatalf("job failed instead of reaching %s: %v", status, *job.Error)
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("job %s never reached status %s", id, status)
	return models.Job{}
}

func TestFullPipeline(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	created, err := o.CreateJob("morning routines", false)
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}
	if created.Language != "en" {
		t.Errorf("language = %q, want en", created.Language)
	}

	job := waitForStatus(t, o, created.ID, models.StatusScriptReady)
	if job.Progress != 50 {
		t.Errorf("script_ready progress = %d, want 50", job.Progress)
	}
	if job.ScriptData == nil || len(job.ScriptData.Timeline) == 0 {
		t.Fatal("script data missing at script_ready")
	}
	if job.ScriptData.ScriptSource != models.SourceTemplate {
		t.Errorf("source = %q, want template with no tiers", job.ScriptData.ScriptSource)
	}
	if len(job.Captions) == 0 {
		t.Error("captions missing at script_ready")
	}
	if job.Trends == nil || len(job.Trends.SEOKeywords) == 0 {
		t.Error("trend snapshot missing at script_ready")
	}

	edited := []models.TimelineEntry{
		{Timecode: "0-2s", VisualCue: "Reviewed shot", Audio: "Edited opening line"},
		{Timecode: "2-5s", VisualCue: "Second shot", Audio: "Edited second line"},
	}
	if err := o.Proceed(created.ID, edited); err != nil {
		t.Fatalf("Proceed failed: %v", err)
	}

	job = waitForStatus(t, o, created.ID, models.StatusCompleted)
	if job.Progress != 100 {
		t.Errorf("completed progress = %d, want 100", job.Progress)
	}
	if job.Result == nil {
		t.Fatal("result missing on completed job")
	}
	if !strings.Contains(job.Result.Script, "Edited opening line") {
		t.Errorf("edited timeline not reflected in result script:\n%s", job.Result.Script)
	}
	if job.Result.MonetizationBrief == "" {
		t.Error("monetization brief missing")
	}
	if len(job.Result.Products) == 0 {
		t.Error("product recommendations missing")
	}
	if job.Result.VideoPath != "" {
		t.Errorf("video path %q with no renderer configured", job.Result.VideoPath)
	}
}

func TestConcurrentStatusPollsDuringProceed(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	created, err := o.CreateJob("morning routines", false)
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}
	waitForStatus(t, o, created.ID, models.StatusScriptReady)

	// Hammer status reads while the review submission lands. Reads walk the
	// script payload the way the status endpoint does when encoding it.
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
			}
			job, err := o.Store.Get(created.ID)
			if err != nil || job.ScriptData == nil {
				continue
			}
			for _, e := range job.ScriptData.Timeline {
				_ = len(e.Timecode) + len(e.VisualCue) + len(e.Audio)
			}
			_ = job.ScriptData.RawContent
		}
	}()

	edited := []models.TimelineEntry{
		{Timecode: "0-2s", VisualCue: "Reviewed", Audio: "Reviewed morning line"},
	}
	if err := o.Proceed(created.ID, edited); err != nil {
		t.Fatalf("Proceed failed: %v", err)
	}
	waitForStatus(t, o, created.ID, models.StatusCompleted)

	close(stop)
	<-done
}

func TestProceedEmptySubmissionOverwrites(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	created, err := o.CreateJob("cooking hacks", false)
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}
	job := waitForStatus(t, o, created.ID, models.StatusScriptReady)
	if len(job.ScriptData.Timeline) == 0 {
		t.Fatal("synthesized timeline empty before proceed")
	}

	// An empty review submission is authoritative like any other edit.
	if err := o.Proceed(created.ID, nil); err != nil {
		t.Fatalf("Proceed failed: %v", err)
	}
	job = waitForStatus(t, o, created.ID, models.StatusCompleted)

	if len(job.ScriptData.Timeline) != 0 {
		t.Errorf("synthesized timeline survived an empty submission: %d scenes", len(job.ScriptData.Timeline))
	}
	if job.ScriptData.RawContent != "" {
		t.Errorf("raw content not overwritten: %q", job.ScriptData.RawContent)
	}
	if job.Result.Script != "" {
		t.Errorf("result script not empty: %q", job.Result.Script)
	}
	if len(job.Captions) != 1 || job.Captions[0].Text != "WATCH THIS" {
		t.Errorf("captions not regenerated from the submission: %+v", job.Captions)
	}
}

func TestProgressNeverDecreases(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	created, err := o.CreateJob("fitness myths", false)
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}

	type sample struct {
		status   string
		progress int
	}
	var samples []sample
	record := func() models.Job {
		job, err := o.Store.Get(created.ID)
		if err != nil {
			t.Fatalf("job vanished: %v", err)
		}
		samples = append(samples, sample{job.Status, job.Progress})
		return job
	}

	deadline := time.Now().Add(5 * time.Second)
	proceeded := false
	for time.Now().Before(deadline) {
		job := record()
		if job.Status == models.StatusFailed {
			t.Fatalf("job failed: %v", *job.Error)
		}
		if job.Status == models.StatusScriptReady && !proceeded {
			if err := o.Proceed(created.ID, job.ScriptData.Timeline); err != nil {
				t.Fatalf("Proceed failed: %v", err)
			}
			proceeded = true
		}
		if job.Status == models.StatusCompleted {
			break
		}
		time.Sleep(time.Millisecond)
	}

	final := record()
	if final.Status != models.StatusCompleted || final.Progress != 100 {
		t.Fatalf("job never completed: %+v", final)
	}

	for i := 1; i < len(samples); i++ {
		if samples[i].progress < samples[i-1].progress {
			t.Fatalf("progress decreased from %d (%s) to %d (%s) at sample %d",
				samples[i-1].progress, samples[i-1].status,
				samples[i].progress, samples[i].status, i)
		}
	}
}

func TestCreateJobRejectsEmptyTopic(t *testing.T) {
	o := newTestOrchestrator(t, nil)
	if _, err := o.CreateJob("   ", false); err == nil {
		t.Error("blank topic accepted")
	}
}

func TestProceedInvalidStates(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	if err := o.Proceed("missing1", nil); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Proceed(unknown) = %v, want ErrNotFound", err)
	}

	created, err := o.CreateJob("cooking hacks", false)
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}
	waitForStatus(t, o, created.ID, models.StatusScriptReady)

	if err := o.Proceed(created.ID, nil); err != nil {
		t.Fatalf("first Proceed failed: %v", err)
	}
	waitForStatus(t, o, created.ID, models.StatusCompleted)

	if err := o.Proceed(created.ID, nil); !errors.Is(err, store.ErrInvalidState) {
		t.Errorf("Proceed on completed job = %v, want ErrInvalidState", err)
	}
}

func TestMediaFailureDegrades(t *testing.T) {
	o := newTestOrchestrator(t, failingMedia{})

	created, err := o.CreateJob("fitness myths", false)
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}
	waitForStatus(t, o, created.ID, models.StatusScriptReady)
	if err := o.Proceed(created.ID, nil); err != nil {
		t.Fatalf("Proceed failed: %v", err)
	}

	job := waitForStatus(t, o, created.ID, models.StatusCompleted)
	if job.Result.VideoPath != "" {
		t.Errorf("video path %q after render failure", job.Result.VideoPath)
	}
	if len(job.Result.Products) == 0 {
		t.Error("monetization should still run after render failure")
	}
}

func TestArabicTopicLanguage(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	created, err := o.CreateJob("روتين الصباح", false)
	if err != nil {
		t.Fatalf("CreateJob failed: %v", err)
	}
	if created.Language != "ar" {
		t.Errorf("language = %q, want ar", created.Language)
	}

	job := waitForStatus(t, o, created.ID, models.StatusScriptReady)
	if job.ScriptData.Language != "ar" {
		t.Errorf("script language = %q, want ar", job.ScriptData.Language)
	}
}
