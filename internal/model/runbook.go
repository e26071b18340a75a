package model

import "time"

// Runbook is an operator-authored ordered list of remediation steps
// associated with a webhook source. The remediation engine looks up
// active runbooks by source when no built-in handler matches.
type Runbook struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	Steps     []string  `json:"steps"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
