// Package ytcmd holds constants for yt-dlp command flags.
package ytcmd

const (
	YTDLP = "yt-dlp"

	AudioFormat     = "--audio-format"
	AudioQuality    = "--audio-quality"
	ConcurrentFrags = "--concurrent-fragments"
	CookiePath      = "--cookies"
	DateAfter       = "--dateafter"
	ExtractAudio    = "--extract-audio"
	FFmpegLocation  = "--ffmpeg-location"
	Format          = "-f"
	KeepVideo       = "--keep-video"
	LimitRate       = "--limit-rate"
	MergeFormat     = "--merge-output-format"
	Newline         = "--newline"
	NoPlaylist      = "--no-playlist"
	Output          = "-o"
	Proxy           = "--proxy"
	Retries         = "--retries"
	SponsorblockMk  = "--sponsorblock-mark"
)
