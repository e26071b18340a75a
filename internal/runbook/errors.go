package runbook

import "errors"

var (
	ErrRunbookNotFound = errors.New("runbook not found")
	ErrEmptyName       = errors.New("runbook name is required")
	ErrEmptySource     = errors.New("runbook source is required")
	ErrNoSteps         = errors.New("runbook needs at least one step")
)
