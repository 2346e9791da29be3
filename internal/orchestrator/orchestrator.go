package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"viralengine-backend/internal/logstream"
	"viralengine-backend/internal/models"
	"viralengine-backend/internal/script"
	"viralengine-backend/internal/services"
	"viralengine-backend/internal/store"
	"viralengine-backend/internal/trends"
)

// Orchestrator drives jobs through the two-phase pipeline. Phase 1 ends at
// script_ready where a human reviews the timeline; Proceed resumes into
// phase 2.
type Orchestrator struct {
	Store        *store.JobStore
	Engine       *script.Engine
	Trends       trends.Collector
	Infra        *services.InfrastructureChecker
	Media        services.MediaForge
	Monetization services.MonetizationEngine
	Broadcaster  *logstream.Broadcaster
	AssetsDir    string
	RenderDir    string
}

func (o *Orchestrator) logf(level, format string, args ...interface{}) {
	if o.Broadcaster != nil {
		o.Broadcaster.Logf(level, format, args...)
	}
}

// CreateJob registers a new job and schedules phase 1 in the background.
func (o *Orchestrator) CreateJob(topic string, autoPost bool) (models.Job, error) {
	if strings.TrimSpace(topic) == "" {
		return models.Job{}, fmt.Errorf("topic must not be empty")
	}

	job := &models.Job{
		ID:        store.NewID(),
		Topic:     topic,
		Language:  script.DetectLanguage(topic),
		Status:    models.StatusPending,
		Phase:     "phase1",
		AutoPost:  autoPost,
		StartedAt: time.Now().UTC(),
	}
	o.Store.Create(job)
	o.logf("info", "job %s created for topic %q", job.ID, topic)

	// Snapshot before scheduling: phase 1 mutates the live record.
	created := *job
	go o.runPhase1(context.Background(), job.ID)
	return created, nil
}

// Proceed accepts the reviewed timeline and schedules phase 2. The status
// check and flip happen inside one store mutation, so only one Proceed per
// job can win. The submitted timeline is authoritative, even when empty:
// the human edit overwrites the synthesized one without re-validation.
func (o *Orchestrator) Proceed(id string, edited []models.TimelineEntry) error {
	err := o.Store.Mutate(id, func(job *models.Job) error {
		if job.Status != models.StatusScriptReady {
			return store.ErrInvalidState
		}
		if job.ScriptData != nil {
			// Swapped, not edited in place, so any reader holding the old
			// struct sees a consistent snapshot.
			sd := *job.ScriptData
			sd.Timeline = edited
			sd.RawContent = script.SerializeTimeline(edited)
			job.ScriptData = &sd
		}
		job.Captions = script.GenerateCaptions(edited)
		job.Status = models.StatusRunning
		job.Phase = "phase2"
		job.Progress = 55
		return nil
	})
	if err != nil {
		return err
	}

	o.logf("info", "job %s approved, starting media phase", id)
	go o.runPhase2(context.Background(), id)
	return nil
}

func (o *Orchestrator) setProgress(id string, progress int) {
	o.Store.Mutate(id, func(job *models.Job) error {
		if progress > job.Progress {
			job.Progress = progress
		}
		return nil
	})
}

func (o *Orchestrator) fail(id string, cause error) {
	msg := cause.Error()
	o.Store.Mutate(id, func(job *models.Job) error {
		job.Status = models.StatusFailed
		job.Error = &msg
		return nil
	})
	o.logf("error", "job %s failed: %s", id, msg)
	o.Store.Save()
}

func (o *Orchestrator) runPhase1(ctx context.Context, id string) {
	job, err := o.Store.Get(id)
	if err != nil {
		return
	}

	o.Store.Mutate(id, func(j *models.Job) error {
		j.Status = models.StatusRunning
		return nil
	})

	if o.Infra != nil {
		health := o.Infra.Verify(ctx)
		for name, ok := range health {
			if !ok {
				o.logf("warning", "job %s: %s unreachable, continuing in degraded mode", id, name)
			}
		}
	}
	o.setProgress(id, 5)

	snapshot, err := o.Trends.Latest(ctx)
	if err != nil {
		o.logf("warning", "job %s: no trend data available, using fallback: %v", id, err)
		snapshot = trends.FallbackSnapshot()
		if err := o.Trends.Save(ctx, snapshot); err != nil {
			o.logf("warning", "job %s: trend manifest write failed: %v", id, err)
		}
	}
	o.setProgress(id, 10)

	hookType := "pattern_interrupt"
	var hookPattern *models.HookPattern
	if len(snapshot.HookPatterns) > 0 {
		hookPattern = &snapshot.HookPatterns[0]
		hookType = hookPattern.Pattern
	}

	scriptData := o.Engine.Synthesize(ctx, job.Topic, hookType, snapshot.SEOKeywords, hookPattern)
	o.setProgress(id, 45)

	captions := script.GenerateCaptions(scriptData.Timeline)
	o.writeScriptAsset(scriptData)

	err = o.Store.Mutate(id, func(j *models.Job) error {
		j.ScriptData = scriptData
		j.Captions = captions
		j.Trends = snapshot
		j.Status = models.StatusScriptReady
		j.Progress = 50
		return nil
	})
	if err != nil {
		o.fail(id, err)
		return
	}

	o.logf("info", "job %s: script ready for review (source=%s, %d scenes)",
		id, scriptData.ScriptSource, len(scriptData.Timeline))
	o.Store.Save()
}

func (o *Orchestrator) runPhase2(ctx context.Context, id string) {
	job, err := o.Store.Get(id)
	if err != nil || job.ScriptData == nil {
		o.fail(id, fmt.Errorf("script data missing for job %s", id))
		return
	}
	o.setProgress(id, 60)

	var media *models.MediaResult
	if o.Media != nil {
		media, err = o.Media.Render(ctx, job.ScriptData.Timeline, job.Captions)
		if err != nil {
			o.logf("warning", "job %s: media render failed, continuing without video: %v", id, err)
			media = nil
		}
	}
	if media == nil {
		media = &models.MediaResult{}
	}
	o.setProgress(id, 80)

	var monetization *models.MonetizationResult
	if o.Monetization != nil {
		monetization, err = o.Monetization.Analyze(ctx, job.Topic, job.ScriptData)
		if err != nil {
			o.logf("warning", "job %s: monetization analysis failed: %v", id, err)
			monetization = nil
		}
	}
	if monetization == nil {
		monetization = &models.MonetizationResult{}
	}
	o.setProgress(id, 85)

	result := o.assembleResult(&job, media, monetization)
	o.setProgress(id, 95)

	err = o.Store.Mutate(id, func(j *models.Job) error {
		j.Result = result
		j.Status = models.StatusCompleted
		j.Progress = 100
		return nil
	})
	if err != nil {
		o.fail(id, err)
		return
	}

	o.logf("info", "job %s completed", id)
	o.Store.Save()
}

func (o *Orchestrator) assembleResult(job *models.Job, media *models.MediaResult, monetization *models.MonetizationResult) *models.GenerationResult {
	var lines []string
	for _, entry := range job.ScriptData.Timeline {
		lines = append(lines, fmt.Sprintf("[%s]  %s  |  %s", entry.Timecode, entry.VisualCue, entry.Audio))
	}

	captionTexts := make([]string, 0, len(job.Captions))
	for _, c := range job.Captions {
		captionTexts = append(captionTexts, c.Text)
	}

	videoPath := ""
	if media.VideoPath != "" {
		name := filepath.Base(media.VideoPath)
		if _, err := os.Stat(filepath.Join(o.RenderDir, name)); err == nil {
			videoPath = "/video/" + name
		}
	}

	return &models.GenerationResult{
		Topic:              job.Topic,
		Script:             strings.Join(lines, "\n"),
		Captions:           captionTexts,
		VideoPath:          videoPath,
		MonetizationBrief:  monetization.Brief,
		Products:           monetization.Products,
		EarningsProjection: monetization.Earnings,
		Status:             "success",
	}
}

// writeScriptAsset drops the script JSON into the assets directory for the
// render pipeline. Write failures only cost the asset copy.
func (o *Orchestrator) writeScriptAsset(scriptData *models.ScriptData) {
	if o.AssetsDir == "" {
		return
	}
	data, err := json.MarshalIndent(scriptData, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(o.AssetsDir, 0o755); err != nil {
		o.logf("warning", "asset dir unavailable: %v", err)
		return
	}
	name := fmt.Sprintf("script_%s.json", time.Now().UTC().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(o.AssetsDir, name), data, 0o644); err != nil {
		o.logf("warning", "script asset write failed: %v", err)
	}
}
