package script

import (
	"regexp"
	"strings"

	"viralengine-backend/internal/models"
)

// Generator output parsing. The grammar is an ordered list of delimiters
// (pipe, then " - ", then colon) with an acceptance predicate on the first
// segment; lines that fail every rule are dropped so malformed output
// degrades to fewer scenes, never to an error.

var (
	fencedBlockRegex = regexp.MustCompile("(?is)```[\\w]*\\n?(.*?)```")
	timecodeRegex    = regexp.MustCompile(`^\d+s?-\d+s?$`)
	leadingDigitRe   = regexp.MustCompile(`^\d`)
)

// ParseTimeline parses free-text generator output into an ordered timeline.
// The result may be empty.
func ParseTimeline(content string) []models.TimelineEntry {
	var timeline []models.TimelineEntry

	raw := strings.TrimSpace(content)
	if m := fencedBlockRegex.FindStringSubmatch(raw); m != nil {
		raw = strings.TrimSpace(m[1])
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := splitSceneLine(line)
		if len(parts) < 3 {
			continue
		}

		tc := parts[0]
		compact := strings.ReplaceAll(tc, " ", "")
		if !timecodeRegex.MatchString(compact) && !leadingDigitRe.MatchString(tc) {
			continue
		}

		timeline = append(timeline, models.TimelineEntry{
			Timecode:  tc,
			VisualCue: parts[1],
			Audio:     parts[2],
		})
	}

	return timeline
}

// splitSceneLine applies the delimiter grammar in priority order and returns
// the trimmed, unquoted segments, or nil when no delimiter yields three.
func splitSceneLine(line string) []string {
	var parts []string
	switch {
	case strings.Contains(line, "|"):
		parts = strings.Split(line, "|")
	case strings.Contains(line, " - "):
		parts = strings.SplitN(line, " - ", 3)
	case strings.Count(line, ":") >= 2:
		parts = strings.SplitN(line, ":", 3)
	default:
		return nil
	}

	if len(parts) < 3 {
		return nil
	}

	out := make([]string, 3)
	for i := 0; i < 3; i++ {
		out[i] = strings.Trim(strings.TrimSpace(parts[i]), `"'`)
	}
	return out
}

// SerializeTimeline renders a timeline back into the canonical
// "timecode | visual | audio" line format. ParseTimeline is idempotent on
// this serialization.
func SerializeTimeline(timeline []models.TimelineEntry) string {
	lines := make([]string, 0, len(timeline))
	for _, e := range timeline {
		lines = append(lines, e.Timecode+" | "+e.VisualCue+" | "+e.Audio)
	}
	return strings.Join(lines, "\n")
}
