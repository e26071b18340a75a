package postgre

import (
	"fmt"
	"strings"

	repo "webhook-ops/internal/event/repository"
)

// buildListQuery builds the WHERE + ORDER + LIMIT clause for ListEvents.
func (r *implRepository) buildListQuery(opt repo.ListEventsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	if opt.Source != "" {
		conditions = append(conditions, fmt.Sprintf("source = $%d", idx))
		args = append(args, opt.Source)
		idx++
	}
	if opt.Verified != nil {
		conditions = append(conditions, fmt.Sprintf("verified = $%d", idx))
		args = append(args, *opt.Verified)
		idx++
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, "ORDER BY received_at DESC")

	limit := opt.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
	args = append(args, limit)

	return strings.Join(parts, " "), args
}
