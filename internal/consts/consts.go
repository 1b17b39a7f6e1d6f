package consts

import "time"

const (
	// MaxUploadBytes is the server-side ceiling for uploaded originals,
	// imposed ahead of the vision call.
	MaxUploadBytes = 4 << 20

	// ClientMaxUploadBytes is the ceiling the upload session enforces
	// before any request is sent.
	ClientMaxUploadBytes = 10 << 20

	// DeleteWindow is how long after creation a record may still be deleted.
	DeleteWindow = 2 * time.Minute

	// QuotaWindow is the rolling window for the per-identity daily quota.
	QuotaWindow = 24 * time.Hour

	// DefaultContaminationLevel stands in when the vision model omits or
	// mangles the score.
	DefaultContaminationLevel = 50

	SharePathPrefix = "/deghib/"
)

type Action string

const (
	ActionAnalyze  Action = "analyze"
	ActionGenerate Action = "generate"
)

func (a Action) String() string {
	return string(a)
}
