package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

const defaultFreshnessWindow = 5 * time.Minute

// Verifier validates inbound webhook signatures. Pure: the caller
// passes now explicitly and is responsible for logging.
type Verifier struct {
	secret []byte
	window time.Duration
	modes  map[string]SigningMode
}

// NewVerifier builds a Verifier from config. Unknown mode strings fall
// back to timestamped.
func NewVerifier(secret string, window time.Duration, modes map[string]string) *Verifier {
	if window <= 0 {
		window = defaultFreshnessWindow
	}

	parsed := make(map[string]SigningMode, len(modes))
	for source, mode := range modes {
		switch SigningMode(mode) {
		case SigningModeBodyOnly:
			parsed[source] = SigningModeBodyOnly
		default:
			parsed[source] = SigningModeTimestamped
		}
	}

	return &Verifier{
		secret: []byte(secret),
		window: window,
		modes:  parsed,
	}
}

// Mode returns the signing convention for a source.
func (v *Verifier) Mode(source string) SigningMode {
	if m, ok := v.modes[source]; ok {
		return m
	}
	return SigningModeTimestamped
}

// Verify checks the HMAC-SHA256 signature of rawBody for the given
// source. Must run on the raw bytes, before any JSON parsing.
func (v *Verifier) Verify(source string, rawBody []byte, signature, timestamp string, now time.Time) error {
	if signature == "" {
		return ErrMalformedHeader
	}

	// Providers send either bare hex or "sha256=<hex>".
	sigHex := strings.TrimPrefix(signature, "sha256=")
	expected, err := hex.DecodeString(sigHex)
	if err != nil {
		return ErrMalformedHeader
	}

	var signed []byte
	switch v.Mode(source) {
	case SigningModeBodyOnly:
		signed = rawBody
	default:
		if timestamp == "" {
			return ErrMalformedHeader
		}
		ts, err := strconv.ParseInt(timestamp, 10, 64)
		if err != nil {
			return ErrMalformedHeader
		}
		age := now.Sub(time.Unix(ts, 0))
		if age < 0 {
			age = -age
		}
		if age > v.window {
			return ErrStaleTimestamp
		}
		signed = make([]byte, 0, len(timestamp)+1+len(rawBody))
		signed = append(signed, timestamp...)
		signed = append(signed, '.')
		signed = append(signed, rawBody...)
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(signed)
	if !hmac.Equal(expected, mac.Sum(nil)) {
		return ErrInvalidSignature
	}

	return nil
}
