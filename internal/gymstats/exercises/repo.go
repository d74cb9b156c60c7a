package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrTemplateNotFound = errors.New("exercise template not found")

type SessionParams struct {
	AuthorID string
	From     *time.Time
	To       *time.Time
	// Limit caps the number of sessions (most recent first when set), 0 means all.
	Limit int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddSession(ctx context.Context, session WorkoutSession) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.sessions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("session.id", session.ID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var endedAt *time.Time
	if session.EndedAt != nil {
		e := session.EndedAt.UTC()
		endedAt = &e
	}
	if _, err = tx.Exec(ctx, `
		INSERT INTO workout_session (id, author_id, created_at, ended_at)
		VALUES ($1, $2, $3, $4)
	`, session.ID, session.AuthorID, session.CreatedAt.UTC(), endedAt); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	for position, occurrence := range session.Exercises {
		var occurrenceID int
		if err = tx.QueryRow(ctx, `
			INSERT INTO exercise_occurrence (session_id, template_id, position)
			VALUES ($1, $2, $3)
			RETURNING id
		`, session.ID, occurrence.TemplateID, position).Scan(&occurrenceID); err != nil {
			return fmt.Errorf("insert exercise occurrence: %w", err)
		}

		for setPosition, set := range occurrence.Sets {
			var completedAt *time.Time
			if set.CompletedAt != nil {
				c := set.CompletedAt.UTC()
				completedAt = &c
			}
			if _, err = tx.Exec(ctx, `
				INSERT INTO workout_set (occurrence_id, weight_kg, reps, is_warmup, completed_at, position)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, occurrenceID, set.WeightKg, set.Reps, set.IsWarmup, completedAt, setPosition); err != nil {
				return fmt.Errorf("insert workout set: %w", err)
			}
		}
	}

	return nil
}

// ListSessions returns the author's sessions with their exercises and sets,
// ascending by creation time.
func (r *Repo) ListSessions(ctx context.Context, params SessionParams) (_ []WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.sessions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("author_id", params.AuthorID))
	span.SetAttributes(attribute.Int("limit", params.Limit))

	var limit *int
	if params.Limit > 0 {
		limit = &params.Limit
	}

	rows, err := r.db.Query(ctx, `
		WITH sessions AS (
			SELECT id, author_id, created_at, ended_at
			FROM workout_session
			WHERE author_id = $1
			  AND ($2::timestamp IS NULL OR COALESCE(ended_at, created_at) >= $2)
			  AND ($3::timestamp IS NULL OR COALESCE(ended_at, created_at) <= $3)
			ORDER BY created_at DESC
			LIMIT $4
		)
		SELECT s.id, s.author_id, s.created_at, s.ended_at,
		       o.id, o.template_id,
		       ws.weight_kg, ws.reps, ws.is_warmup, ws.completed_at
		FROM sessions s
		LEFT JOIN exercise_occurrence o ON o.session_id = s.id
		LEFT JOIN workout_set ws ON ws.occurrence_id = o.id
		ORDER BY s.created_at ASC, s.id, o.position, o.id, ws.position, ws.id;
	`,
		params.AuthorID,
		utcOrNil(params.From), utcOrNil(params.To),
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]WorkoutSession, 0)
	lastOccurrenceID := -1
	for rows.Next() {
		var (
			session      WorkoutSession
			occurrenceID *int
			templateID   *string
			weightKg     *float64
			reps         *int
			isWarmup     *bool
			completedAt  *time.Time
		)
		if err := rows.Scan(
			&session.ID, &session.AuthorID, &session.CreatedAt, &session.EndedAt,
			&occurrenceID, &templateID,
			&weightKg, &reps, &isWarmup, &completedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		if len(sessions) == 0 || sessions[len(sessions)-1].ID != session.ID {
			session.Exercises = []ExerciseOccurrence{}
			sessions = append(sessions, session)
			lastOccurrenceID = -1
		}
		if occurrenceID == nil {
			continue
		}

		current := &sessions[len(sessions)-1]
		if *occurrenceID != lastOccurrenceID {
			current.Exercises = append(current.Exercises, ExerciseOccurrence{
				TemplateID: *templateID,
				Sets:       []WorkoutSet{},
			})
			lastOccurrenceID = *occurrenceID
		}
		if isWarmup == nil {
			// occurrence without sets
			continue
		}

		occurrence := &current.Exercises[len(current.Exercises)-1]
		occurrence.Sets = append(occurrence.Sets, WorkoutSet{
			WeightKg:    weightKg,
			Reps:        reps,
			IsWarmup:    *isWarmup,
			CompletedAt: completedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(sessions)))
	return sessions, nil
}

func (r *Repo) UpsertTemplate(ctx context.Context, template ExerciseTemplate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.templates.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", template.ID))

	musclesJson, err := json.Marshal(template.Muscles)
	if err != nil {
		return fmt.Errorf("marshal muscles: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO exercise_template (id, name, muscles)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, muscles = EXCLUDED.muscles
	`, template.ID, template.Name, musclesJson)
	return err
}

func (r *Repo) GetTemplate(ctx context.Context, id string) (_ *ExerciseTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.templates.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", id))

	var (
		template    ExerciseTemplate
		musclesJson []byte
	)
	err = r.db.QueryRow(ctx, `
		SELECT id, name, muscles FROM exercise_template WHERE id = $1
	`, id).Scan(&template.ID, &template.Name, &musclesJson)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(musclesJson, &template.Muscles); err != nil {
		return nil, fmt.Errorf("unmarshal muscles: %w", err)
	}

	return &template, nil
}

// MuscleMapping resolves the muscles for the given template ids. Unknown ids are absent from the result.
func (r *Repo) MuscleMapping(ctx context.Context, templateIDs []string) (_ MuscleMapping, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymstats.templates.mapping")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("templates", len(templateIDs)))

	mapping := make(MuscleMapping, len(templateIDs))
	if len(templateIDs) == 0 {
		return mapping, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, muscles FROM exercise_template WHERE id = ANY($1)
	`, templateIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id          string
			musclesJson []byte
			muscles     []MuscleTarget
		)
		if err := rows.Scan(&id, &musclesJson); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if err := json.Unmarshal(musclesJson, &muscles); err != nil {
			return nil, fmt.Errorf("unmarshal muscles for %s: %w", id, err)
		}
		mapping[id] = muscles
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return mapping, nil
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
