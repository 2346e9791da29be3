package script

import (
	"regexp"
	"strings"

	"viralengine-backend/internal/models"
)

// StalePhrases are fragments of known hardcoded fallback scripts that some
// generator checkpoints regurgitate regardless of topic. A timeline opening
// with one of them is worthless.
var StalePhrases = []string{
	"80/20",
	"millionaires",
}

var topicWordRegex = regexp.MustCompile(`[a-zA-Z]{3,}`)

// IsGeneric flags timelines that are stale defaults or topically irrelevant.
// It is a heuristic gate against the specific failure modes of copy-pasted
// fallbacks and near-empty output, not a semantic validator.
func IsGeneric(timeline []models.TimelineEntry, topic string) bool {
	if len(timeline) == 0 {
		return true
	}

	firstAudio := strings.ToLower(timeline[0].Audio)
	for _, phrase := range StalePhrases {
		if strings.Contains(firstAudio, phrase) {
			return true
		}
	}

	// Arabic topics: relevance matching on latin tokens is useless, so
	// require a minimally substantial script instead.
	if ContainsArabic(topic) {
		if len(timeline) < 3 {
			return true
		}
		for _, e := range timeline {
			if strings.TrimSpace(e.Audio) != "" {
				return false
			}
		}
		return true
	}

	topicWords := topicWordRegex.FindAllString(strings.ToLower(topic), -1)

	var b strings.Builder
	for _, e := range timeline {
		b.WriteString(strings.ToLower(e.Audio))
		b.WriteString(" ")
	}
	allAudio := b.String()

	for _, w := range topicWords {
		if strings.Contains(allAudio, w) {
			return false
		}
	}
	return true
}
