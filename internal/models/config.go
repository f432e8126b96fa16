// Package models holds the data types passed between fetcharr components.
package models

// BatchConfig is the decoded configuration file: global defaults plus the
// ordered list of items to fetch.
type BatchConfig struct {
	GlobalConfig `mapstructure:",squash"`

	Items []ItemSpec `mapstructure:"items"`
}

// GlobalConfig holds batch-wide defaults. Every field is optional; a zero
// value (or nil pointer) means the builtin default applies.
type GlobalConfig struct {
	OutputDir             string `mapstructure:"output_dir"`
	FilenameTemplate      string `mapstructure:"filename_template"`
	Proxy                 string `mapstructure:"proxy"`
	FFmpegLocation        string `mapstructure:"ffmpeg_location"`
	Cookies               string `mapstructure:"cookies"`
	CookiesFromBrowser    string `mapstructure:"cookies_from_browser"`
	ConcurrentFragments   *int   `mapstructure:"concurrent_fragments"`
	ConvertToAudio        *bool  `mapstructure:"convert_to_audio"`
	VideoFormat           string `mapstructure:"video_format"`
	Quality               string `mapstructure:"quality"`
	AudioFormat           string `mapstructure:"audio_format"`
	AudioBitrate          *int   `mapstructure:"audio_bitrate"`
	RateLimit             string `mapstructure:"rate_limit"`
	RemoveSponsorSegments *bool  `mapstructure:"remove_sponsor_segments"`
	DateAfter             string `mapstructure:"date_after"`

	// Global-only policy flags, not overridable per item.
	StopOnError bool `mapstructure:"stop_on_error"`
	CheckLinks  bool `mapstructure:"check_links"`
}

// ItemSpec is one unit of batch work: a URL plus per-item overrides.
// Pointer fields distinguish "explicitly set" from "absent, fall back".
type ItemSpec struct {
	URL  string `mapstructure:"url"`
	Type string `mapstructure:"type"`

	FilenameTemplate      string `mapstructure:"filename_template"`
	Proxy                 string `mapstructure:"proxy"`
	FFmpegLocation        string `mapstructure:"ffmpeg_location"`
	Cookies               string `mapstructure:"cookies"`
	CookiesFromBrowser    string `mapstructure:"cookies_from_browser"`
	ConcurrentFragments   *int   `mapstructure:"concurrent_fragments"`
	ConvertToAudio        *bool  `mapstructure:"convert_to_audio"`
	VideoFormat           string `mapstructure:"video_format"`
	Quality               string `mapstructure:"quality"`
	AudioFormat           string `mapstructure:"audio_format"`
	AudioBitrate          *int   `mapstructure:"audio_bitrate"`
	RateLimit             string `mapstructure:"rate_limit"`
	RemoveSponsorSegments *bool  `mapstructure:"remove_sponsor_segments"`
	DateAfter             string `mapstructure:"date_after"`
}
