package script

import (
	"testing"

	"viralengine-backend/internal/models"
)

func entries(audios ...string) []models.TimelineEntry {
	out := make([]models.TimelineEntry, len(audios))
	for i, a := range audios {
		out[i] = models.TimelineEntry{Timecode: "0-2s", VisualCue: "shot", Audio: a}
	}
	return out
}

func TestIsGeneric(t *testing.T) {
	tests := []struct {
		name     string
		timeline []models.TimelineEntry
		topic    string
		want     bool
	}{
		{
			name:     "empty timeline",
			timeline: nil,
			topic:    "morning routines",
			want:     true,
		},
		{
			name:     "stale 80/20 opener",
			timeline: entries("The 80/20 rule will change your morning routines"),
			topic:    "morning routines",
			want:     true,
		},
		{
			name:     "stale millionaires opener",
			timeline: entries("What millionaires do before 6am"),
			topic:    "morning routines",
			want:     true,
		},
		{
			name:     "topic word present",
			timeline: entries("Stop scrolling", "Your morning sets the whole day"),
			topic:    "morning routines",
			want:     false,
		},
		{
			name:     "no topic overlap",
			timeline: entries("Buy crypto now", "Trust me on this one"),
			topic:    "morning routines",
			want:     true,
		},
		{
			name:     "arabic topic with enough substance",
			timeline: entries("توقف عن التمرير", "هذا سيغير يومك", "جرب هذا الصباح"),
			topic:    "روتين الصباح",
			want:     false,
		},
		{
			name:     "arabic topic too short",
			timeline: entries("توقف", "انتبه"),
			topic:    "روتين الصباح",
			want:     true,
		},
		{
			name:     "arabic topic all empty audio",
			timeline: entries("", "", ""),
			topic:    "روتين الصباح",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsGeneric(tt.timeline, tt.topic); got != tt.want {
				t.Errorf("IsGeneric = %v, want %v", got, tt.want)
			}
		})
	}
}
