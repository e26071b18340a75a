package webhook

import "errors"

var (
	// ErrInvalidSignature means the HMAC did not match. 401, never
	// retried server-side.
	ErrInvalidSignature = errors.New("signature verification failed")

	// ErrStaleTimestamp means the delivery is outside the freshness
	// window. 401.
	ErrStaleTimestamp = errors.New("timestamp outside freshness window")

	// ErrMalformedHeader means the signature or timestamp header is
	// missing or undecodable. 400.
	ErrMalformedHeader = errors.New("malformed signature or timestamp header")
)
