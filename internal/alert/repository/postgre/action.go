package postgre

import (
	"context"
	"database/sql"

	"webhook-ops/internal/alert/repository"
	"webhook-ops/internal/model"
)

// AppendActions writes the executed actions as immutable child rows of
// the alert, in one transaction.
func (r *implRepository) AppendActions(ctx context.Context, alertID string, actions []model.RemediationAction) error {
	if len(actions) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("AppendActions"), err)
		return repository.ErrFailedToInsert
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO alert_actions (id, alert_id, type, description, success, error, executed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, a := range actions {
		if _, err := tx.ExecContext(ctx, query,
			a.ID, alertID, a.Type, a.Description, a.Success, a.Error, a.ExecutedAt,
		); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("AppendActions"), err)
			return repository.ErrFailedToInsert
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("AppendActions"), err)
		return repository.ErrFailedToInsert
	}
	return nil
}

// ListActions returns the alert's action log, oldest first.
func (r *implRepository) ListActions(ctx context.Context, alertID string) ([]model.RemediationAction, error) {
	const query = `
		SELECT id, alert_id, type, description, success, error, executed_at
		FROM alert_actions
		WHERE alert_id = $1
		ORDER BY executed_at ASC`

	rows, err := r.db.QueryContext(ctx, query, alertID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListActions"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var actions []model.RemediationAction
	for rows.Next() {
		var a model.RemediationAction
		var errMsg sql.NullString
		if err := rows.Scan(&a.ID, &a.AlertID, &a.Type, &a.Description, &a.Success, &errMsg, &a.ExecutedAt); err != nil {
			return nil, repository.ErrFailedToList
		}
		a.Error = errMsg.String
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListActions"), err)
		return nil, repository.ErrFailedToList
	}
	return actions, nil
}
