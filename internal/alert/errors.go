package alert

import "errors"

var (
	ErrAlertNotFound   = errors.New("alert not found")
	ErrInvalidSeverity = errors.New("invalid severity")
	ErrInvalidCategory = errors.New("invalid category")
	ErrEmptyTitle      = errors.New("alert title is required")
)
