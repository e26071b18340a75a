package runbook

// --- UseCase Inputs ---

type CreateRunbookInput struct {
	Name   string
	Source string
	Steps  []string
	Active bool
}

type ListRunbooksInput struct {
	Source     string
	ActiveOnly bool
	Limit      int
}

// UpdateRunbookInput is a partial update; nil fields are left as-is.
type UpdateRunbookInput struct {
	ID     string
	Name   *string
	Source *string
	Steps  []string // nil = unchanged
	Active *bool
}
