// Package plan resolves merged options into engine-facing fetch plans.
package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fetcharr/internal/domain/consts"
	"fetcharr/internal/models"

	"github.com/araddon/dateparse"
)

// Resolve turns an effective option set plus a URL into a FetchPlan.
// Fails with ErrInvalidSpec when the URL is empty. Creates the output
// directory as a side effect; repeating that is safe.
func Resolve(eff models.EffectiveOptions, url string) (*models.FetchPlan, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("every item must contain a url: %w", models.ErrInvalidSpec)
	}

	outDir := eff.OutputDir
	if outDir == "" {
		outDir = consts.DefaultOutputDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", outDir, err)
	}

	tmpl := eff.FilenameTemplate
	if tmpl == "" {
		tmpl = consts.DefaultFilenameTemplate
	}

	frags := eff.ConcurrentFragments
	if frags <= 0 {
		frags = consts.DefaultConcurrentFrags
	}

	p := &models.FetchPlan{
		URL:                 url,
		OutputTemplate:      filepath.Join(outDir, tmpl),
		Proxy:               eff.Proxy,
		FFmpegLocation:      eff.FFmpegLocation,
		CookieFile:          eff.Cookies,
		ConcurrentFragments: frags,
		RateLimit:           eff.RateLimit,
	}

	// The transcoder takes the bitrate as a textual quality parameter.
	bitrate := eff.AudioBitrate
	if bitrate <= 0 {
		bitrate = consts.DefaultAudioBitrate
	}
	extractAudio := models.PostProcessStep{
		Kind:    consts.PPExtractAudio,
		Codec:   firstOr(eff.AudioFormat, consts.DefaultAudioFormat),
		Quality: strconv.Itoa(bitrate),
	}

	switch models.ParseMediaKind(string(eff.Kind)) {
	case models.KindAudio:
		p.Kind = models.KindAudio
		p.Format = consts.SelectorBestAudio
		p.PostProcess = []models.PostProcessStep{extractAudio}

	default:
		// Unknown kinds deliberately fall back to video.
		p.Kind = models.KindVideo
		switch q := firstOr(eff.Quality, consts.DefaultQuality); q {
		case consts.QualityBest:
			p.Format = consts.SelectorBestVideo
		default:
			// Advanced escape hatch: opaque engine-native selector,
			// passed through without validation.
			p.Format = q
		}
		p.MergeFormat = firstOr(eff.VideoFormat, consts.DefaultVideoFormat)

		if eff.ConvertToAudio {
			p.PostProcess = append(p.PostProcess, extractAudio)
		}
	}

	if eff.RemoveSponsorSegments {
		p.SponsorCategories = append([]string(nil), consts.SponsorCategories[:]...)
	}

	if eff.DateAfter != "" {
		t, err := dateparse.ParseAny(eff.DateAfter)
		if err != nil {
			return nil, fmt.Errorf("unparseable date_after value %q: %w", eff.DateAfter, models.ErrInvalidSpec)
		}
		p.DateAfter = t.Format("20060102")
	}

	return p, nil
}

func firstOr(val, def string) string {
	if val != "" {
		return val
	}
	return def
}
