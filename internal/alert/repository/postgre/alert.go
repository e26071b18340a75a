package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"webhook-ops/internal/alert/repository"
	"webhook-ops/internal/model"
)

const alertColumns = `id, title, message, severity, category, status, source, metadata,
	created_at, created_by, dismissed_at, dismissed_by, auto_dismiss_at,
	auto_processed_at, last_action_summary`

// CreateAlert inserts a new Alert row and returns the created entity.
func (r *implRepository) CreateAlert(ctx context.Context, opt repository.CreateAlertOptions) (model.Alert, error) {
	metadata, err := json.Marshal(opt.Metadata)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal metadata: %v", r.dsn("CreateAlert"), err)
		return model.Alert{}, repository.ErrFailedToInsert
	}

	query := fmt.Sprintf(`
		INSERT INTO alerts (id, title, message, severity, category, status, source, metadata,
			created_at, created_by, auto_dismiss_at)
		VALUES ($1, $2, $3, $4, $5, 'active', $6, $7, NOW(), $8, $9)
		RETURNING %s`, alertColumns)

	a, err := scanAlert(r.db.QueryRowContext(ctx, query,
		opt.ID, opt.Title, opt.Message, opt.Severity, opt.Category,
		opt.Source, metadata, opt.CreatedBy, opt.AutoDismissAt,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateAlert"), err)
		return model.Alert{}, repository.ErrFailedToInsert
	}
	return a, nil
}

// GetOneAlert retrieves a single alert by ID.
// Returns zero-value Alert (ID == "") when not found, no error.
func (r *implRepository) GetOneAlert(ctx context.Context, opt repository.GetOneAlertOptions) (model.Alert, error) {
	query := fmt.Sprintf(`SELECT %s FROM alerts WHERE id = $1 LIMIT 1`, alertColumns)

	a, err := scanAlert(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.Alert{}, nil
	}
	if err == repository.ErrCorruptRecord {
		return model.Alert{}, err
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneAlert"), err)
		return model.Alert{}, repository.ErrFailedToGet
	}
	return a, nil
}

// ListAlerts returns alerts newest-first with the given filters.
func (r *implRepository) ListAlerts(ctx context.Context, opt repository.ListAlertsOptions) ([]model.Alert, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM alerts %s`, alertColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAlerts"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var alerts []model.Alert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err == repository.ErrCorruptRecord {
			// Skip undecodable rows in listings; Detail surfaces them.
			continue
		}
		if err != nil {
			return nil, repository.ErrFailedToList
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAlerts"), err)
		return nil, repository.ErrFailedToList
	}
	return alerts, nil
}

// DismissAlert transitions exactly one active alert to dismissed.
// The status guard makes the transition happen at most once.
func (r *implRepository) DismissAlert(ctx context.Context, id, dismissedBy string, at time.Time) (bool, error) {
	const query = `
		UPDATE alerts
		SET status = 'dismissed', dismissed_at = $1, dismissed_by = $2
		WHERE id = $3 AND status = 'active'`

	res, err := r.db.ExecContext(ctx, query, at, dismissedBy, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DismissAlert"), err)
		return false, repository.ErrFailedToUpdate
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// SweepExpired closes every active alert whose auto_dismiss_at has
// passed, in one statement.
func (r *implRepository) SweepExpired(ctx context.Context, now time.Time, dismissedBy string) (int, error) {
	const query = `
		UPDATE alerts
		SET status = 'dismissed', dismissed_at = $1, dismissed_by = $2
		WHERE status = 'active' AND auto_dismiss_at IS NOT NULL AND auto_dismiss_at <= $1`

	res, err := r.db.ExecContext(ctx, query, now, dismissedBy)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SweepExpired"), err)
		return 0, repository.ErrFailedToUpdate
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// MarkAutoProcessed stamps remediation bookkeeping on the alert.
func (r *implRepository) MarkAutoProcessed(ctx context.Context, id, summary string, at time.Time) error {
	const query = `
		UPDATE alerts
		SET auto_processed_at = $1, last_action_summary = $2
		WHERE id = $3`

	if _, err := r.db.ExecContext(ctx, query, at, summary, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkAutoProcessed"), err)
		return repository.ErrFailedToUpdate
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlert(row rowScanner) (model.Alert, error) {
	var a model.Alert
	var source, createdBy, dismissedBy, summary sql.NullString
	var metadata []byte
	var dismissedAt, autoDismissAt, autoProcessedAt sql.NullTime

	err := row.Scan(
		&a.ID, &a.Title, &a.Message, &a.Severity, &a.Category, &a.Status,
		&source, &metadata, &a.CreatedAt, &createdBy,
		&dismissedAt, &dismissedBy, &autoDismissAt,
		&autoProcessedAt, &summary,
	)
	if err != nil {
		return model.Alert{}, err
	}

	a.Source = source.String
	a.CreatedBy = createdBy.String
	a.DismissedBy = dismissedBy.String
	a.LastActionSummary = summary.String
	if dismissedAt.Valid {
		t := dismissedAt.Time
		a.DismissedAt = &t
	}
	if autoDismissAt.Valid {
		t := autoDismissAt.Time
		a.AutoDismissAt = &t
	}
	if autoProcessedAt.Valid {
		t := autoProcessedAt.Time
		a.AutoProcessedAt = &t
	}

	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &a.Metadata); err != nil {
			return model.Alert{}, repository.ErrCorruptRecord
		}
	}
	return a, nil
}
