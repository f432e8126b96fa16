package models_test

import (
	"testing"

	"fetcharr/internal/models"
)

// TestParseMediaKind checks the permissive normalization: only "audio"
// (any case) maps to audio, everything else is video.
func TestParseMediaKind(t *testing.T) {
	cases := map[string]models.MediaKind{
		"audio":   models.KindAudio,
		"AUDIO":   models.KindAudio,
		" Audio ": models.KindAudio,
		"video":   models.KindVideo,
		"":        models.KindVideo,
		"podcast": models.KindVideo,
		"aud":     models.KindVideo,
	}

	for raw, want := range cases {
		if got := models.ParseMediaKind(raw); got != want {
			t.Fatalf("ParseMediaKind(%q) = %q, want %q", raw, got, want)
		}
	}
}
