package script

import (
	"context"
	"log"
	"time"

	"viralengine-backend/internal/generator"
	"viralengine-backend/internal/models"
)

// Labels are positional, not tier identity: the first configured tier is
// always "generatorA", whichever backend it is.
var sourceLabels = []string{models.SourceGeneratorA, models.SourceGeneratorB}

// Engine runs the tiered synthesis chain: remote generators in order, then
// the deterministic composer when every remote tier fails or produces a
// generic script. Synthesize always returns a usable script.
type Engine struct {
	Tiers           []generator.Generator
	Composer        *Composer
	DurationSeconds int
	Logf            func(level, format string, args ...interface{})
}

func NewEngine(tiers []generator.Generator, composer *Composer, durationSeconds int) *Engine {
	if durationSeconds <= 0 {
		durationSeconds = 30
	}
	return &Engine{
		Tiers:           tiers,
		Composer:        composer,
		DurationSeconds: durationSeconds,
	}
}

func (e *Engine) logf(level, format string, args ...interface{}) {
	if e.Logf != nil {
		e.Logf(level, format, args...)
		return
	}
	log.Printf(format, args...)
}

// Synthesize produces a script for the topic, trying each configured tier in
// order and falling back to the template composer.
func (e *Engine) Synthesize(ctx context.Context, topic, hookType string, seoKeywords []string, hookPattern *models.HookPattern) *models.ScriptData {
	language := DetectLanguage(topic)
	prompt := BuildPrompt(topic, hookType, language, e.DurationSeconds, seoKeywords, hookPattern)

	for i, tier := range e.Tiers {
		label := models.SourceTemplate
		if i < len(sourceLabels) {
			label = sourceLabels[i]
		}

		raw, err := tier.Generate(ctx, prompt)
		if err != nil {
			e.logf("warning", "script tier %s failed: %v", tier.Name(), err)
			continue
		}

		timeline := ParseTimeline(raw)
		if IsGeneric(timeline, topic) {
			e.logf("warning", "script tier %s returned a generic script, trying next tier", tier.Name())
			continue
		}

		e.logf("info", "script synthesized by %s (%d scenes)", tier.Name(), len(timeline))
		return e.build(topic, hookType, language, seoKeywords, timeline, raw, label)
	}

	e.logf("info", "all remote tiers exhausted, composing from templates")
	timeline := e.Composer.Compose(topic, language, seoKeywords)
	return e.build(topic, hookType, language, seoKeywords, timeline, SerializeTimeline(timeline), models.SourceTemplate)
}

func (e *Engine) build(topic, hookType, language string, seoKeywords []string, timeline []models.TimelineEntry, raw, source string) *models.ScriptData {
	return &models.ScriptData{
		GeneratedAt:     time.Now().UTC(),
		Topic:           topic,
		Language:        language,
		HookType:        hookType,
		DurationSeconds: e.DurationSeconds,
		SEOKeywords:     seoKeywords,
		Timeline:        timeline,
		RawContent:      raw,
		ScriptSource:    source,
	}
}
