// Package consts holds various global, unchanging values.
package consts

// DownloadStatus represents the lifecycle state of a single job.
type DownloadStatus string

const (
	DLStatusPending     DownloadStatus = "Pending"
	DLStatusDownloading DownloadStatus = "Downloading"
	DLStatusCompleted   DownloadStatus = "Completed"
	DLStatusFailed      DownloadStatus = "Failed"
)

// Post-processing step kinds.
const (
	PPExtractAudio = "extract-audio"
)

// Quality selectors.
const (
	QualityBest       = "best"
	SelectorBestVideo = "bv*+ba/b"
	SelectorBestAudio = "bestaudio/best"
)

// SponsorCategories is the fixed set of segment categories marked when
// sponsor segment removal is enabled.
var SponsorCategories = [...]string{"sponsor", "intro", "outro", "interaction", "selfpromo"}

// Builtin option defaults, used when neither the item nor the global
// scope sets a value.
const (
	DefaultOutputDir        = "downloads"
	DefaultFilenameTemplate = "%(title)s.%(ext)s"
	DefaultVideoFormat      = "mp4"
	DefaultQuality          = QualityBest
	DefaultAudioFormat      = "mp3"
	DefaultAudioBitrate     = 192
	DefaultConcurrentFrags  = 5
	DefaultEngineRetries    = 10
)

// Program file names, created under the output directory.
const (
	LogFileName = "fetcharr.log"
	DBFileName  = "fetcharr.db"
)
