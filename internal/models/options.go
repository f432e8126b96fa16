package models

import "strings"

// MediaKind is the artifact type a job targets.
type MediaKind string

const (
	KindVideo MediaKind = "video"
	KindAudio MediaKind = "audio"
)

// ParseMediaKind normalizes a raw "type" value into a MediaKind.
// Anything other than "audio" (case-insensitive) resolves to video; the
// permissive fallback is deliberate, unknown values are not errors.
func ParseMediaKind(raw string) MediaKind {
	if strings.EqualFold(strings.TrimSpace(raw), string(KindAudio)) {
		return KindAudio
	}
	return KindVideo
}

// EffectiveOptions is the merged, fully-determined view of one item over
// the global config. Every field has exactly one source: item, global or
// builtin default.
type EffectiveOptions struct {
	Kind                  MediaKind
	OutputDir             string
	FilenameTemplate      string
	Proxy                 string
	FFmpegLocation        string
	Cookies               string
	CookiesFromBrowser    string
	ConcurrentFragments   int
	ConvertToAudio        bool
	VideoFormat           string
	Quality               string
	AudioFormat           string
	AudioBitrate          int
	RateLimit             string
	RemoveSponsorSegments bool
	DateAfter             string
}
