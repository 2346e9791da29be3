package models

import (
	"time"
)

// Job statuses. A job never moves backwards except into StatusFailed,
// which is terminal.
const (
	StatusPending     = "pending"
	StatusRunning     = "running"
	StatusScriptReady = "script_ready"
	StatusCompleted   = "completed"
	StatusFailed      = "failed"
)

// Script source tiers, recorded on the script payload so observers know
// which generation tier produced the final timeline.
const (
	SourceGeneratorA = "generatorA"
	SourceGeneratorB = "generatorB"
	SourceTemplate   = "template"
)

// Job is one end-to-end generation request tracked through two phases:
// trends + script synthesis (phase 1), then media + monetization (phase 2).
type Job struct {
	ID         string            `json:"id"`
	Topic      string            `json:"topic"`
	Language   string            `json:"language"`
	Status     string            `json:"status"`
	Phase      string            `json:"phase"`
	Progress   int               `json:"progress"`
	AutoPost   bool              `json:"auto_post"`
	ScriptData *ScriptData       `json:"script_data,omitempty"`
	Captions   []Caption         `json:"captions,omitempty"`
	Trends     *TrendsSnapshot   `json:"trends,omitempty"`
	Result     *GenerationResult `json:"result,omitempty"`
	Error      *string           `json:"error"`
	StartedAt  time.Time         `json:"started_at"`
}

// TimelineEntry is one scene of a short-form video script.
type TimelineEntry struct {
	Timecode  string `json:"timecode"`
	VisualCue string `json:"visual_cue"`
	Audio     string `json:"audio"`
}

// ScriptData is the phase-1 payload: the synthesized timeline plus the
// metadata needed to rebuild or audit it.
type ScriptData struct {
	GeneratedAt     time.Time       `json:"generated_at"`
	Topic           string          `json:"topic"`
	Language        string          `json:"language"`
	HookType        string          `json:"hook_type"`
	DurationSeconds int             `json:"duration_seconds"`
	SEOKeywords     []string        `json:"seo_keywords"`
	Timeline        []TimelineEntry `json:"script_columns"`
	RawContent      string          `json:"raw_content"`
	ScriptSource    string          `json:"script_source"`
}

// Caption is an on-screen text overlay derived from a scene's spoken line.
type Caption struct {
	Timecode string `json:"timecode"`
	Text     string `json:"text"`
	Position string `json:"position"`
	Style    string `json:"style"`
}

// HookPattern describes one viral hook format observed in trend data.
type HookPattern struct {
	Pattern        string `json:"pattern"`
	Example        string `json:"example"`
	ConversionRate string `json:"conversion_rate"`
}

// TrendsSnapshot is the trend manifest consumed by script synthesis.
type TrendsSnapshot struct {
	Source       string        `json:"source"`
	GeneratedAt  time.Time     `json:"generated_at"`
	Period       string        `json:"period"`
	SEOKeywords  []string      `json:"seo_keywords"`
	HookPatterns []HookPattern `json:"hook_patterns"`
}

// MediaResult is what the media collaborator returns for a rendered timeline.
type MediaResult struct {
	VideoPath      string `json:"video_path"`
	ScenesRendered int    `json:"scenes_rendered"`
}

// Product is a single monetization recommendation.
type Product struct {
	Name             string  `json:"name"`
	Price            string  `json:"price"`
	Commission       string  `json:"commission"`
	Rating           float64 `json:"rating,omitempty"`
	URL              string  `json:"url"`
	AffiliateNetwork string  `json:"affiliate_network"`
	Reason           string  `json:"reason"`
}

// EarningsProjection is a coarse revenue estimate attached to the result.
type EarningsProjection struct {
	Conservative string `json:"conservative"`
	Viral        string `json:"viral"`
}

// MonetizationResult is what the monetization collaborator returns.
type MonetizationResult struct {
	BriefPath string             `json:"brief_path"`
	Brief     string             `json:"brief"`
	Products  []Product          `json:"products"`
	Earnings  EarningsProjection `json:"earnings"`
}

// GenerationResult is the final phase-2 payload surfaced on status polls.
type GenerationResult struct {
	Topic              string             `json:"topic"`
	Script             string             `json:"script"`
	Captions           []string           `json:"captions"`
	VideoPath          string             `json:"video_path"`
	MonetizationBrief  string             `json:"monetization_brief"`
	Products           []Product          `json:"products"`
	EarningsProjection EarningsProjection `json:"earnings_projection"`
	Status             string             `json:"status"`
}

// LogEvent is one structured entry on the live log stream.
type LogEvent struct {
	Type      string    `json:"type"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
