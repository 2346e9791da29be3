package script

import (
	"testing"

	"viralengine-backend/internal/models"
)

func TestParseTimeline(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []models.TimelineEntry
	}{
		{
			name:    "pipe delimited",
			content: "0-2s | Shocked face | \"Wait, what?\"\n2-5s | B-roll | \"Most people miss this\"",
			want: []models.TimelineEntry{
				{Timecode: "0-2s", VisualCue: "Shocked face", Audio: "Wait, what?"},
				{Timecode: "2-5s", VisualCue: "B-roll", Audio: "Most people miss this"},
			},
		},
		{
			name:    "dash delimited",
			content: "0-2s - Close up - Stop scrolling right now",
			want: []models.TimelineEntry{
				{Timecode: "0-2s", VisualCue: "Close up", Audio: "Stop scrolling right now"},
			},
		},
		{
			name:    "colon delimited keeps extra colons in audio",
			content: "0-2s: Zoom in: Here is the truth: nobody tells you",
			want: []models.TimelineEntry{
				{Timecode: "0-2s", VisualCue: "Zoom in", Audio: "Here is the truth: nobody tells you"},
			},
		},
		{
			name:    "fenced code block stripped",
			content: "Here is your script:\n```\n0-2s | Hook shot | First line\n```",
			want: []models.TimelineEntry{
				{Timecode: "0-2s", VisualCue: "Hook shot", Audio: "First line"},
			},
		},
		{
			name:    "non timecode first segment dropped",
			content: "Intro | Opening shot | Welcome back\n0-2s | Hook | Real line",
			want: []models.TimelineEntry{
				{Timecode: "0-2s", VisualCue: "Hook", Audio: "Real line"},
			},
		},
		{
			name:    "comments and blanks skipped",
			content: "# scene list\n\n0-2s | Hook | Line one\n",
			want: []models.TimelineEntry{
				{Timecode: "0-2s", VisualCue: "Hook", Audio: "Line one"},
			},
		},
		{
			name:    "two segment line dropped",
			content: "0-2s | only visual",
			want:    nil,
		},
		{
			name:    "prose without delimiters",
			content: "This generator refused to follow instructions entirely.",
			want:    nil,
		},
		{
			name:    "empty input",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimeline(tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSerializeTimelineRoundTrip(t *testing.T) {
	timeline := []models.TimelineEntry{
		{Timecode: "0-2s", VisualCue: "Shocked face", Audio: "Stop scrolling"},
		{Timecode: "2-5s", VisualCue: "Demo shot", Audio: "Do this instead"},
	}

	parsed := ParseTimeline(SerializeTimeline(timeline))
	if len(parsed) != len(timeline) {
		t.Fatalf("round trip lost entries: got %d, want %d", len(parsed), len(timeline))
	}
	for i := range parsed {
		if parsed[i] != timeline[i] {
			t.Errorf("entry %d = %+v, want %+v", i, parsed[i], timeline[i])
		}
	}
}
