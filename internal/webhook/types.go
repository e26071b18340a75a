package webhook

import "time"

// SigningMode names the HMAC input convention of a webhook source.
// Providers disagree on whether the timestamp is part of the signed
// input, so the convention is declared per source.
type SigningMode string

const (
	// SigningModeTimestamped signs "{timestamp}.{body}" and requires a
	// fresh timestamp header. The default.
	SigningModeTimestamped SigningMode = "timestamped"

	// SigningModeBodyOnly signs the raw body alone; no timestamp
	// header is required.
	SigningModeBodyOnly SigningMode = "body"
)

// Config holds webhook ingestion settings.
type Config struct {
	Secret          string
	FreshnessWindow time.Duration
	RateLimitPerMin int

	// SigningModes maps source name to its SigningMode. Sources not
	// listed use SigningModeTimestamped.
	SigningModes map[string]string
}
