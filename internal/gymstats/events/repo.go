package events

import (
	"context"
	"time"

	"github.com/2beens/gymcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type EventParams struct {
	Type   *EventType
	UserID string
	From   *time.Time
	To     *time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, event Event) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.events.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("type", event.Type.String()))

	err = r.db.QueryRow(ctx, `
		INSERT INTO gymstats_event (type, user_id, data, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		event.Type,
		event.UserID,
		event.Data,
		event.Timestamp.UTC(),
	).Scan(&event.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("event.id", event.ID))
	return &event, nil
}

// ListAll returns matching events ascending by timestamp.
func (r *Repo) ListAll(ctx context.Context, params EventParams) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.events.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.Type != nil {
		span.SetAttributes(attribute.String("type", string(*params.Type)))
	}
	span.SetAttributes(attribute.String("user_id", params.UserID))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	var from, to *time.Time
	if params.From != nil {
		f := params.From.UTC()
		from = &f
	}
	if params.To != nil {
		t := params.To.UTC()
		to = &t
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, type, user_id, data, timestamp
		FROM gymstats_event
		WHERE ($1::text IS NULL OR type = $1)
		  AND ($2::text = '' OR user_id = $2)
		  AND ($3::timestamp IS NULL OR timestamp >= $3)
		  AND ($4::timestamp IS NULL OR timestamp <= $4)
		ORDER BY timestamp ASC, id ASC;
	`,
		params.Type,
		params.UserID,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]Event, 0)
	for rows.Next() {
		var event Event
		if err := rows.Scan(&event.ID, &event.Type, &event.UserID, &event.Data, &event.Timestamp); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(events)))
	return events, nil
}
