package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"webhook-ops/internal/model"
	"webhook-ops/internal/runbook/repository"
)

const runbookColumns = `id, name, source, steps, active, created_at, updated_at`

// CreateRunbook inserts a new Runbook row and returns the entity.
// Steps are stored as text[] to keep their order.
func (r *implRepository) CreateRunbook(ctx context.Context, opt repository.CreateRunbookOptions) (model.Runbook, error) {
	query := fmt.Sprintf(`
		INSERT INTO runbooks (id, name, source, steps, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s`, runbookColumns)

	rb, err := scanRunbook(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.Name, opt.Source, pq.Array(opt.Steps), opt.Active,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRunbook"), err)
		return model.Runbook{}, repository.ErrFailedToInsert
	}
	return rb, nil
}

// GetOneRunbook retrieves a single runbook by ID.
// Returns zero-value Runbook (ID == "") when not found, no error.
func (r *implRepository) GetOneRunbook(ctx context.Context, opt repository.GetOneRunbookOptions) (model.Runbook, error) {
	query := fmt.Sprintf(`SELECT %s FROM runbooks WHERE id = $1 LIMIT 1`, runbookColumns)

	rb, err := scanRunbook(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.Runbook{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRunbook"), err)
		return model.Runbook{}, repository.ErrFailedToGet
	}
	return rb, nil
}

// ListRunbooks returns runbooks newest-first with the given filters.
func (r *implRepository) ListRunbooks(ctx context.Context, opt repository.ListRunbooksOptions) ([]model.Runbook, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Source != "" {
		conditions = append(conditions, fmt.Sprintf("source = $%d", idx))
		args = append(args, opt.Source)
		idx++
	}
	if opt.ActiveOnly {
		conditions = append(conditions, "active")
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	limit := opt.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := fmt.Sprintf(`SELECT %s FROM runbooks %s ORDER BY created_at DESC LIMIT $%d`,
		runbookColumns, where, idx)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRunbooks"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var runbooks []model.Runbook
	for rows.Next() {
		rb, err := scanRunbook(rows)
		if err != nil {
			return nil, repository.ErrFailedToList
		}
		runbooks = append(runbooks, rb)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRunbooks"), err)
		return nil, repository.ErrFailedToList
	}
	return runbooks, nil
}

// UpdateRunbook updates a runbook by ID and returns the updated entity.
func (r *implRepository) UpdateRunbook(ctx context.Context, opt repository.UpdateRunbookOptions) (model.Runbook, error) {
	query := fmt.Sprintf(`
		UPDATE runbooks
		SET name = $1, source = $2, steps = $3, active = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING %s`, runbookColumns)

	rb, err := scanRunbook(r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Source, pq.Array(opt.Steps), opt.Active, opt.ID,
	))
	if err == sql.ErrNoRows {
		return model.Runbook{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRunbook"), err)
		return model.Runbook{}, repository.ErrFailedToUpdate
	}
	return rb, nil
}

// DeleteRunbook removes a runbook by ID.
func (r *implRepository) DeleteRunbook(ctx context.Context, id string) error {
	const query = `DELETE FROM runbooks WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteRunbook"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRunbook(row rowScanner) (model.Runbook, error) {
	var rb model.Runbook
	err := row.Scan(
		&rb.ID, &rb.Name, &rb.Source, pq.Array(&rb.Steps), &rb.Active,
		&rb.CreatedAt, &rb.UpdatedAt,
	)
	if err != nil {
		return model.Runbook{}, err
	}
	return rb, nil
}
