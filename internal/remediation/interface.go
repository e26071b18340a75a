package remediation

import (
	"context"
)

// UseCase runs automated responses to an alert and records them on the
// alert's action log.
type UseCase interface {
	// HandleAlert executes the remediation plan for the alert. Individual
	// action failures are captured per-action and do not abort the run;
	// only load and persistence failures return an error.
	HandleAlert(ctx context.Context, alertID string) (HandleAlertOutput, error)
}

// Notifier delivers a human-readable notification, typically to Slack.
type Notifier interface {
	Send(ctx context.Context, text string) error
}
