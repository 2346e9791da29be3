package script

import (
	"strings"

	"viralengine-backend/internal/models"
)

// GenerateCaptions extracts high-impact keywords from each scene's spoken
// line for on-screen captions. Scenes with only short words are skipped;
// when nothing qualifies a single default caption is returned instead.
func GenerateCaptions(timeline []models.TimelineEntry) []models.Caption {
	var captions []models.Caption
	for _, e := range timeline {
		var words []string
		for _, w := range strings.Fields(e.Audio) {
			w = strings.Trim(w, `"'.,!?`)
			if len(w) > 4 {
				words = append(words, w)
			}
		}
		if len(words) == 0 {
			continue
		}
		if len(words) > 4 {
			words = words[:4]
		}
		tc := e.Timecode
		if tc == "" {
			tc = "0-5s"
		}
		captions = append(captions, models.Caption{
			Timecode: tc,
			Text:     strings.ToUpper(strings.Join(words, " ")),
			Position: "center",
			Style:    "bold_yellow",
		})
	}

	if len(captions) == 0 {
		captions = []models.Caption{
			{Timecode: "0-5s", Text: "WATCH THIS", Position: "center", Style: "bold_yellow"},
		}
	}
	return captions
}
