package downloads

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	"fetcharr/internal/domain/consts"
	"fetcharr/internal/domain/ytcmd"
	"fetcharr/internal/models"
)

// buildArgs translates a fetch plan into yt-dlp arguments. The URL goes
// last.
func buildArgs(p *models.FetchPlan) []string {
	args := make([]string, 0, 32)

	args = append(args,
		ytcmd.NoPlaylist,
		ytcmd.Newline,
		ytcmd.Retries, strconv.Itoa(consts.DefaultEngineRetries),
		ytcmd.Output, p.OutputTemplate,
		ytcmd.ConcurrentFrags, strconv.Itoa(p.ConcurrentFragments),
		ytcmd.Format, p.Format)

	if p.MergeFormat != "" {
		args = append(args, ytcmd.MergeFormat, p.MergeFormat)
	}

	for _, step := range p.PostProcess {
		if step.Kind != consts.PPExtractAudio {
			continue
		}
		args = append(args,
			ytcmd.ExtractAudio,
			ytcmd.AudioFormat, step.Codec,
			ytcmd.AudioQuality, step.Quality)

		// A video job extracting audio keeps the video artifact.
		if p.Kind == models.KindVideo {
			args = append(args, ytcmd.KeepVideo)
		}
	}

	if p.RateLimit != "" {
		args = append(args, ytcmd.LimitRate, p.RateLimit)
	}

	if len(p.SponsorCategories) > 0 {
		args = append(args, ytcmd.SponsorblockMk, strings.Join(p.SponsorCategories, ","))
	}

	if p.Proxy != "" {
		args = append(args, ytcmd.Proxy, p.Proxy)
	}

	if p.FFmpegLocation != "" {
		args = append(args, ytcmd.FFmpegLocation, p.FFmpegLocation)
	}

	if p.CookieFile != "" {
		args = append(args, ytcmd.CookiePath, p.CookieFile)
	}

	if p.DateAfter != "" {
		args = append(args, ytcmd.DateAfter, p.DateAfter)
	}

	args = append(args, p.URL)
	return args
}

// buildCommand builds the yt-dlp command for a fetch plan.
func buildCommand(ctx context.Context, p *models.FetchPlan) *exec.Cmd {
	return exec.CommandContext(ctx, ytcmd.YTDLP, buildArgs(p)...)
}
