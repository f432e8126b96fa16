package downloads

import (
	"strings"
	"testing"

	"fetcharr/internal/progress"
)

// TestParseLineDownloading checks percent/speed/ETA extraction from
// typical engine progress lines.
func TestParseLineDownloading(t *testing.T) {
	e, ok := parseLine("[download]  45.2% of ~10.00MiB at 2.50MiB/s ETA 00:03")
	if !ok {
		t.Fatalf("expected a progress event")
	}
	if e.Status != progress.EventDownloading {
		t.Fatalf("expected downloading status, got %q", e.Status)
	}
	if e.Percent != "45.2%" {
		t.Fatalf("expected percent 45.2%%, got %q", e.Percent)
	}
	if e.Speed != "2.50MiB/s" {
		t.Fatalf("expected speed 2.50MiB/s, got %q", e.Speed)
	}
	if e.ETA != "3" {
		t.Fatalf("expected ETA 3s, got %q", e.ETA)
	}
}

// TestParseLineUnknownFields checks the degrade-to-empty behavior for
// placeholder values.
func TestParseLineUnknownFields(t *testing.T) {
	e, ok := parseLine("[download]   0.0% of ~10.00MiB at Unknown B/s ETA Unknown")
	if !ok {
		t.Fatalf("expected a progress event")
	}
	if e.Speed != "" || e.ETA != "" {
		t.Fatalf("expected empty placeholders, got speed=%q eta=%q", e.Speed, e.ETA)
	}
}

// TestParseLineLongETA checks hour-form ETA conversion into seconds.
func TestParseLineLongETA(t *testing.T) {
	e, ok := parseLine("[download]  10.0% of 4.00GiB at 1.00MiB/s ETA 1:02:03")
	if !ok {
		t.Fatalf("expected a progress event")
	}
	if e.ETA != "3723" {
		t.Fatalf("expected 3723 seconds, got %q", e.ETA)
	}
}

// TestParseLinePostProcessing checks the finished marker for
// post-processing phases.
func TestParseLinePostProcessing(t *testing.T) {
	for _, line := range []string{
		`[Merger] Merging formats into "downloads/video.mp4"`,
		"[ExtractAudio] Destination: downloads/audio.mp3",
	} {
		e, ok := parseLine(line)
		if !ok {
			t.Fatalf("expected event for %q", line)
		}
		if e.Status != progress.EventFinished {
			t.Fatalf("expected finished status for %q, got %q", line, e.Status)
		}
	}
}

// TestParseLineIgnoresNoise checks that unrelated lines produce nothing.
func TestParseLineIgnoresNoise(t *testing.T) {
	for _, line := range []string{
		"[youtube] abc123: Downloading webpage",
		"[info] abc123: Downloading 1 format(s): 137+140",
		"",
		"WARNING: some warning",
	} {
		if _, ok := parseLine(line); ok {
			t.Fatalf("expected no event for %q", line)
		}
	}
}

// TestScanOutputReportsOnce checks that multiple post-processing lines
// produce a single finished event.
func TestScanOutputReportsOnce(t *testing.T) {
	out := strings.Join([]string{
		"[download]  50.0% of 10.00MiB at 2.50MiB/s ETA 00:02",
		"[download] 100% of 10.00MiB in 00:04",
		`[Merger] Merging formats into "downloads/video.mp4"`,
		"[ExtractAudio] Destination: downloads/audio.mp3",
	}, "\n")

	var finished, downloading int
	scanOutput(strings.NewReader(out), func(e progress.Event) {
		switch e.Status {
		case progress.EventFinished:
			finished++
		case progress.EventDownloading:
			downloading++
		}
	})

	if finished != 1 {
		t.Fatalf("expected exactly one finished event, got %d", finished)
	}
	if downloading != 2 {
		t.Fatalf("expected two downloading events, got %d", downloading)
	}
}
