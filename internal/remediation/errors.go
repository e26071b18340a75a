package remediation

import "errors"

var (
	ErrAlertNotFound = errors.New("alert not found")
	ErrCorruptAlert  = errors.New("alert record is corrupt")
)
