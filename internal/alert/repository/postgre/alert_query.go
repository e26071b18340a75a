package postgre

import (
	"fmt"
	"strings"

	repo "webhook-ops/internal/alert/repository"
)

// buildListQuery builds the WHERE + ORDER + LIMIT clause for ListAlerts.
func (r *implRepository) buildListQuery(opt repo.ListAlertsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}
	if opt.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", idx))
		args = append(args, opt.Category)
		idx++
	}
	if opt.Severity != "" {
		conditions = append(conditions, fmt.Sprintf("severity = $%d", idx))
		args = append(args, opt.Severity)
		idx++
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, "ORDER BY created_at DESC")

	limit := opt.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
	args = append(args, limit)

	return strings.Join(parts, " "), args
}
