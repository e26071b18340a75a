package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"webhook-ops/internal/event/repository"
	"webhook-ops/internal/model"
)

// Payload is stored as bytea, never jsonb: replay fidelity requires the
// exact bytes the provider signed, and jsonb re-canonicalizes.
const eventColumns = `id, source, received_at, verified, signature_valid, payload, payload_size,
	error, replay_count, last_replay_at, replay_of, target_url`

// CreateEvent inserts a new InboundEvent row and returns the entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.InboundEvent, error) {
	query := fmt.Sprintf(`
		INSERT INTO events (id, source, received_at, verified, signature_valid, payload, payload_size,
			error, replay_count, replay_of, target_url)
		VALUES ($1, $2, NOW(), $3, $4, $5, $6, $7, 0, $8, $9)
		RETURNING %s`, eventColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.ID, opt.Source, opt.Verified, opt.SignatureValid,
		opt.Payload, len(opt.Payload), opt.Error, opt.ReplayOf, opt.TargetURL,
	)

	ev, err := scanEvent(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.InboundEvent{}, repository.ErrFailedToInsert
	}
	return ev, nil
}

// GetOneEvent retrieves a single event by the provided filters.
// Returns zero-value event (ID == "") when not found, no error.
func (r *implRepository) GetOneEvent(ctx context.Context, opt repository.GetOneEventOptions) (model.InboundEvent, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1 LIMIT 1`, eventColumns)

	ev, err := scanEvent(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.InboundEvent{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return model.InboundEvent{}, repository.ErrFailedToGet
	}
	return ev, nil
}

// ListEvents returns events newest-first.
func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.InboundEvent, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM events %s`, eventColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var events []model.InboundEvent
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, repository.ErrFailedToList
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repository.ErrFailedToList
	}
	return events, nil
}

// MarkReplayed bumps replay_count and last_replay_at on the original.
func (r *implRepository) MarkReplayed(ctx context.Context, id string) error {
	const query = `
		UPDATE events
		SET replay_count = replay_count + 1, last_replay_at = NOW()
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkReplayed"), err)
		return repository.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrFailedToUpdate
	}
	return nil
}

// GetStats aggregates over the events table. Scan-based and therefore
// eventually consistent with concurrent inserts.
func (r *implRepository) GetStats(ctx context.Context) (model.EventStats, error) {
	stats := model.EventStats{EventsBySource: make(map[string]int)}

	const totalsQuery = `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE verified),
			COUNT(*) FILTER (WHERE received_at >= NOW() - INTERVAL '24 hours'),
			COUNT(*) FILTER (WHERE received_at >= NOW() - INTERVAL '7 days')
		FROM events`

	var verified int
	err := r.db.QueryRowContext(ctx, totalsQuery).Scan(
		&stats.TotalEvents, &verified, &stats.Last24h, &stats.Last7d,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s totals: %v", r.dsn("GetStats"), err)
		return model.EventStats{}, repository.ErrFailedToList
	}
	if stats.TotalEvents > 0 {
		stats.DeliverySuccessRate = float64(verified) / float64(stats.TotalEvents)
	}

	const bySourceQuery = `SELECT source, COUNT(*) FROM events GROUP BY source`
	rows, err := r.db.QueryContext(ctx, bySourceQuery)
	if err != nil {
		r.l.Errorf(ctx, "%s by-source: %v", r.dsn("GetStats"), err)
		return model.EventStats{}, repository.ErrFailedToList
	}
	defer rows.Close()

	for rows.Next() {
		var source string
		var count int
		if err := rows.Scan(&source, &count); err != nil {
			return model.EventStats{}, repository.ErrFailedToList
		}
		stats.EventsBySource[source] = count
	}
	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (model.InboundEvent, error) {
	var ev model.InboundEvent
	var sigValid sql.NullBool
	var errMsg, replayOf, targetURL sql.NullString
	var lastReplayAt sql.NullTime

	err := row.Scan(
		&ev.ID, &ev.Source, &ev.ReceivedAt, &ev.Verified, &sigValid,
		&ev.Payload, &ev.PayloadSize, &errMsg, &ev.ReplayCount,
		&lastReplayAt, &replayOf, &targetURL,
	)
	if err != nil {
		return model.InboundEvent{}, err
	}

	if sigValid.Valid {
		v := sigValid.Bool
		ev.SignatureValid = &v
	}
	ev.Error = errMsg.String
	ev.ReplayOf = replayOf.String
	ev.TargetURL = targetURL.String
	if lastReplayAt.Valid {
		t := lastReplayAt.Time
		ev.LastReplayAt = &t
	}
	return ev, nil
}
