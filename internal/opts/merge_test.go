package opts_test

import (
	"testing"

	"fetcharr/internal/models"
	"fetcharr/internal/opts"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

// TestMergeDefaults checks that fields absent everywhere resolve to the
// documented builtin defaults.
func TestMergeDefaults(t *testing.T) {
	eff := opts.Merge(models.GlobalConfig{}, models.ItemSpec{})

	if eff.Kind != models.KindVideo {
		t.Fatalf("expected default kind video, got %q", eff.Kind)
	}
	if eff.OutputDir != "downloads" {
		t.Fatalf("expected default output dir 'downloads', got %q", eff.OutputDir)
	}
	if eff.FilenameTemplate != "%(title)s.%(ext)s" {
		t.Fatalf("unexpected default filename template %q", eff.FilenameTemplate)
	}
	if eff.VideoFormat != "mp4" {
		t.Fatalf("expected default video format mp4, got %q", eff.VideoFormat)
	}
	if eff.Quality != "best" {
		t.Fatalf("expected default quality 'best', got %q", eff.Quality)
	}
	if eff.AudioFormat != "mp3" {
		t.Fatalf("expected default audio format mp3, got %q", eff.AudioFormat)
	}
	if eff.AudioBitrate != 192 {
		t.Fatalf("expected default audio bitrate 192, got %d", eff.AudioBitrate)
	}
	if eff.ConcurrentFragments != 5 {
		t.Fatalf("expected default concurrent fragments 5, got %d", eff.ConcurrentFragments)
	}
	if eff.ConvertToAudio || eff.RemoveSponsorSegments {
		t.Fatalf("expected boolean defaults false, got convert=%v sponsor=%v",
			eff.ConvertToAudio, eff.RemoveSponsorSegments)
	}
	if eff.Proxy != "" || eff.RateLimit != "" || eff.Cookies != "" || eff.DateAfter != "" {
		t.Fatalf("expected absent optional fields to stay empty")
	}
}

// TestMergeGlobalFallback checks that global values apply when the item
// does not override them.
func TestMergeGlobalFallback(t *testing.T) {
	g := models.GlobalConfig{
		OutputDir:             "media",
		Proxy:                 "socks5://127.0.0.1:9050",
		Quality:               "bestvideo",
		AudioBitrate:          intPtr(320),
		ConcurrentFragments:   intPtr(8),
		ConvertToAudio:        boolPtr(true),
		RemoveSponsorSegments: boolPtr(true),
		RateLimit:             "500K",
	}

	eff := opts.Merge(g, models.ItemSpec{})

	if eff.OutputDir != "media" {
		t.Fatalf("expected global output dir, got %q", eff.OutputDir)
	}
	if eff.Proxy != "socks5://127.0.0.1:9050" {
		t.Fatalf("expected global proxy, got %q", eff.Proxy)
	}
	if eff.Quality != "bestvideo" {
		t.Fatalf("expected global quality, got %q", eff.Quality)
	}
	if eff.AudioBitrate != 320 {
		t.Fatalf("expected global bitrate 320, got %d", eff.AudioBitrate)
	}
	if eff.ConcurrentFragments != 8 {
		t.Fatalf("expected global fragments 8, got %d", eff.ConcurrentFragments)
	}
	if !eff.ConvertToAudio || !eff.RemoveSponsorSegments {
		t.Fatalf("expected global boolean values to apply")
	}
	if eff.RateLimit != "500K" {
		t.Fatalf("expected global rate limit, got %q", eff.RateLimit)
	}
}

// TestMergeOverrideWins checks that item values beat global values for
// every overridable field, including explicit false/zero-adjacent ones.
func TestMergeOverrideWins(t *testing.T) {
	g := models.GlobalConfig{
		FilenameTemplate:      "%(id)s.%(ext)s",
		Proxy:                 "http://global:8080",
		Quality:               "global-quality",
		VideoFormat:           "mkv",
		AudioFormat:           "opus",
		AudioBitrate:          intPtr(320),
		ConcurrentFragments:   intPtr(8),
		ConvertToAudio:        boolPtr(true),
		RemoveSponsorSegments: boolPtr(true),
		RateLimit:             "1M",
		DateAfter:             "2020-01-01",
	}
	it := models.ItemSpec{
		Type:                  "audio",
		FilenameTemplate:      "%(uploader)s-%(title)s.%(ext)s",
		Proxy:                 "http://item:8080",
		Quality:               "item-quality",
		VideoFormat:           "webm",
		AudioFormat:           "flac",
		AudioBitrate:          intPtr(128),
		ConcurrentFragments:   intPtr(2),
		ConvertToAudio:        boolPtr(false),
		RemoveSponsorSegments: boolPtr(false),
		RateLimit:             "250K",
		DateAfter:             "2024-06-15",
	}

	eff := opts.Merge(g, it)

	if eff.Kind != models.KindAudio {
		t.Fatalf("expected item type audio, got %q", eff.Kind)
	}
	if eff.FilenameTemplate != it.FilenameTemplate {
		t.Fatalf("expected item template, got %q", eff.FilenameTemplate)
	}
	if eff.Proxy != "http://item:8080" {
		t.Fatalf("expected item proxy, got %q", eff.Proxy)
	}
	if eff.Quality != "item-quality" {
		t.Fatalf("expected item quality, got %q", eff.Quality)
	}
	if eff.VideoFormat != "webm" || eff.AudioFormat != "flac" {
		t.Fatalf("expected item formats, got %q/%q", eff.VideoFormat, eff.AudioFormat)
	}
	if eff.AudioBitrate != 128 {
		t.Fatalf("expected item bitrate 128, got %d", eff.AudioBitrate)
	}
	if eff.ConcurrentFragments != 2 {
		t.Fatalf("expected item fragments 2, got %d", eff.ConcurrentFragments)
	}
	if eff.ConvertToAudio {
		t.Fatalf("explicit item false should beat global true for convert_to_audio")
	}
	if eff.RemoveSponsorSegments {
		t.Fatalf("explicit item false should beat global true for remove_sponsor_segments")
	}
	if eff.RateLimit != "250K" {
		t.Fatalf("expected item rate limit, got %q", eff.RateLimit)
	}
	if eff.DateAfter != "2024-06-15" {
		t.Fatalf("expected item date_after, got %q", eff.DateAfter)
	}
}
