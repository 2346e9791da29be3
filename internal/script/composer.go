package script

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"viralengine-backend/internal/models"
)

// Composer is the deterministic fallback tier: it builds a full timeline
// from static template data and the topic alone, with no external calls.
// Randomness is limited to template and tip selection and is injectable so
// tests can pin choices.
type Composer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewComposer creates a composer with its own time-seeded random source.
func NewComposer() *Composer {
	return NewComposerWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewComposerWithRand creates a composer using the given random source.
func NewComposerWithRand(rng *rand.Rand) *Composer {
	return &Composer{rng: rng}
}

// Compose builds a topic-aware timeline for the language. It always returns
// at least one entry with non-empty visual cue and spoken line. Up to 3 SEO
// keywords are hashtag-joined onto the final spoken line.
func (c *Composer) Compose(topic, language string, seoKeywords []string) []models.TimelineEntry {
	cat := ClassifyTopic(topic)

	var tipsPool []string
	var mistakes map[string]string
	var templates []HookTemplate

	if language == "ar" {
		tipsPool = TopicTipsAR[cat]
		if tipsPool == nil {
			tipsPool = TopicTipsAR[DefaultCategory]
		}
		mistakes = CommonMistakesAR
		templates = HookTemplatesAR
	} else {
		tipsPool = TopicTipsEN[cat]
		if tipsPool == nil {
			tipsPool = TopicTipsEN[DefaultCategory]
		}
		mistakes = CommonMistakesEN
		templates = HookTemplatesEN
	}

	c.mu.Lock()
	tip := tipsPool[c.rng.Intn(len(tipsPool))]
	template := templates[c.rng.Intn(len(templates))]
	c.mu.Unlock()

	mistake, ok := mistakes[cat]
	if !ok {
		mistake = mistakes[DefaultCategory]
	}
	visual := PickVisual(topic)

	replacer := strings.NewReplacer(
		"{topic}", topic,
		"{topic_visual}", visual,
		"{tip}", tip,
		"{common_mistake}", mistake,
	)

	timeline := make([]models.TimelineEntry, 0, len(template.Structure))
	for _, scene := range template.Structure {
		timeline = append(timeline, models.TimelineEntry{
			Timecode:  scene.Timecode,
			VisualCue: replacer.Replace(scene.Visual),
			Audio:     replacer.Replace(scene.Audio),
		})
	}

	if len(seoKeywords) > 0 && len(timeline) > 0 {
		n := len(seoKeywords)
		if n > 3 {
			n = 3
		}
		tags := strings.Join(seoKeywords[:n], ", ")
		last := &timeline[len(timeline)-1]
		last.Audio = strings.TrimRight(last.Audio, `"`) + ` #` + tags + `"`
	}

	return timeline
}
