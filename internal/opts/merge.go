// Package opts merges per-item overrides over global defaults into a
// fully-determined option set.
package opts

import (
	"fetcharr/internal/domain/consts"
	"fetcharr/internal/models"
)

// Merge resolves every overridable field: the item value wins when
// present, otherwise the global value, otherwise the builtin default.
// Pure precedence selection, no validation.
func Merge(g models.GlobalConfig, it models.ItemSpec) models.EffectiveOptions {
	return models.EffectiveOptions{
		Kind:             models.ParseMediaKind(it.Type),
		OutputDir:        firstString(g.OutputDir, consts.DefaultOutputDir),
		FilenameTemplate: firstString(it.FilenameTemplate, g.FilenameTemplate, consts.DefaultFilenameTemplate),

		Proxy:              firstString(it.Proxy, g.Proxy),
		FFmpegLocation:     firstString(it.FFmpegLocation, g.FFmpegLocation),
		Cookies:            firstString(it.Cookies, g.Cookies),
		CookiesFromBrowser: firstString(it.CookiesFromBrowser, g.CookiesFromBrowser),

		ConcurrentFragments: firstInt(it.ConcurrentFragments, g.ConcurrentFragments, consts.DefaultConcurrentFrags),
		ConvertToAudio:      firstBool(it.ConvertToAudio, g.ConvertToAudio, false),

		VideoFormat:  firstString(it.VideoFormat, g.VideoFormat, consts.DefaultVideoFormat),
		Quality:      firstString(it.Quality, g.Quality, consts.DefaultQuality),
		AudioFormat:  firstString(it.AudioFormat, g.AudioFormat, consts.DefaultAudioFormat),
		AudioBitrate: firstInt(it.AudioBitrate, g.AudioBitrate, consts.DefaultAudioBitrate),

		RateLimit:             firstString(it.RateLimit, g.RateLimit),
		RemoveSponsorSegments: firstBool(it.RemoveSponsorSegments, g.RemoveSponsorSegments, false),
		DateAfter:             firstString(it.DateAfter, g.DateAfter),
	}
}

// firstString returns the first non-empty value, or "".
func firstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// firstInt returns the item value if set, else the global value, else def.
func firstInt(item, global *int, def int) int {
	if item != nil {
		return *item
	}
	if global != nil {
		return *global
	}
	return def
}

// firstBool returns the item value if set, else the global value, else def.
func firstBool(item, global *bool, def bool) bool {
	if item != nil {
		return *item
	}
	if global != nil {
		return *global
	}
	return def
}
