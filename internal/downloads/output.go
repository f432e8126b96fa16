package downloads

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"fetcharr/internal/progress"
	"fetcharr/internal/utils/logging"
)

// downloadLine matches yt-dlp progress lines, e.g.
// "[download]  45.2% of ~10.00MiB at 2.50MiB/s ETA 00:03".
var downloadLine = regexp.MustCompile(
	`^\[download\]\s+([0-9.]+%)(?:\s+of\s+~?\s*\S+)?(?:\s+at\s+(\S+))?(?:\s+ETA\s+(\S+))?`)

// postProcessPrefixes mark lines where yt-dlp has moved past downloading.
var postProcessPrefixes = []string{"[Merger]", "[ExtractAudio]", "[SponsorBlock]", "[FixupM3u8]"}

// scanOutput reads engine output line by line and pushes raw progress
// events into the hook.
func scanOutput(r io.Reader, hook progress.Hook) {
	scanner := bufio.NewScanner(r)
	finished := false

	for scanner.Scan() {
		line := scanner.Text()
		logging.D(3, "engine: %s", line)

		if e, ok := parseLine(line); ok {
			if e.Status == progress.EventFinished {
				if finished {
					continue // report post-processing once per fetch
				}
				finished = true
			}
			hook(e)
		}
	}

	if err := scanner.Err(); err != nil {
		logging.E("Scanner error: %v", err)
	}
}

// parseLine extracts a progress event from one output line.
func parseLine(line string) (progress.Event, bool) {
	for _, prefix := range postProcessPrefixes {
		if strings.HasPrefix(line, prefix) {
			return progress.Event{Status: progress.EventFinished}, true
		}
	}

	m := downloadLine.FindStringSubmatch(line)
	if m == nil {
		return progress.Event{}, false
	}

	return progress.Event{
		Status:  progress.EventDownloading,
		Percent: m[1],
		Speed:   cleanField(m[2]),
		ETA:     etaSeconds(m[3]),
	}, true
}

// cleanField blanks out yt-dlp's "Unknown" placeholders.
func cleanField(v string) string {
	if strings.HasPrefix(v, "Unknown") {
		return ""
	}
	return v
}

// etaSeconds converts a clock-style ETA ("03", "01:02", "1:02:03") into
// a seconds string. Unparseable values degrade to "".
func etaSeconds(v string) string {
	if v == "" || strings.HasPrefix(v, "Unknown") {
		return ""
	}

	total := 0
	for _, part := range strings.Split(v, ":") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return ""
		}
		total = total*60 + n
	}
	return strconv.Itoa(total)
}
