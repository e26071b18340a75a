package repository

// CreateRunbookOptions holds parameters for inserting a new Runbook.
type CreateRunbookOptions struct {
	ID     string
	Name   string
	Source string
	Steps  []string
	Active bool
}

// GetOneRunbookOptions holds filter parameters for fetching one runbook.
type GetOneRunbookOptions struct {
	ID string
}

// ListRunbooksOptions holds filter and pagination parameters.
type ListRunbooksOptions struct {
	Source     string
	ActiveOnly bool
	Limit      int
}

// UpdateRunbookOptions carries the full post-update field set; the
// usecase resolves partial inputs against the current row first.
type UpdateRunbookOptions struct {
	ID     string
	Name   string
	Source string
	Steps  []string
	Active bool
}
