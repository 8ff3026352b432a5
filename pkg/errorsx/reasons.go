package errorsx

// ReasonCode is a short machine-readable error reason.
type ReasonCode string

const (
	ReasonUnknown ReasonCode = "unknown"

	ReasonValidation  ReasonCode = "validation"
	ReasonInvalidEnum ReasonCode = "invalid_enum_value"

	ReasonRemoteAPI ReasonCode = "remote_api"
	ReasonRateLimit ReasonCode = "rate_limit"

	ReasonPlayback   ReasonCode = "playback"
	ReasonFilesystem ReasonCode = "filesystem"
	ReasonConfig     ReasonCode = "config"
)
