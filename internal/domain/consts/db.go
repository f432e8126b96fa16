package consts

// Tables
const (
	DBDownloads = "downloads"
)

// Downloads columns
const (
	QDLID        = "id"
	QDLPosition  = "position"
	QDLURL       = "url"
	QDLStatus    = "status"
	QDLPct       = "percent"
	QDLError     = "error"
	QDLCreatedAt = "created_at"
	QDLUpdatedAt = "updated_at"
)
