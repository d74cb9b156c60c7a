package programs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/gymcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrTemplateNotFound = errors.New("program template not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert stores the template. New templates go to the end of the list, updates keep their position.
func (r *Repo) Upsert(ctx context.Context, template Template) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", template.ID))

	weeksJson, err := json.Marshal(template.Weeks)
	if err != nil {
		return fmt.Errorf("marshal weeks: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO program_template (id, name, difficulty, weeks)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			difficulty = EXCLUDED.difficulty,
			weeks = EXCLUDED.weeks
	`, template.ID, template.Name, string(template.Difficulty), weeksJson)
	return err
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", id))

	row := r.db.QueryRow(ctx, `
		SELECT id, name, difficulty, weeks FROM program_template WHERE id = $1
	`, id)
	template, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return template, nil
}

// List returns all templates in insertion order. The recommender breaks ties by this order.
func (r *Repo) List(ctx context.Context) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, difficulty, weeks
		FROM program_template
		ORDER BY position ASC;
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]Template, 0)
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		templates = append(templates, *template)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(templates)))
	return templates, nil
}

func scanTemplate(row pgx.Row) (*Template, error) {
	var (
		template   Template
		difficulty string
		weeksJson  []byte
	)
	if err := row.Scan(&template.ID, &template.Name, &difficulty, &weeksJson); err != nil {
		return nil, err
	}
	template.Difficulty = ExperienceLevel(difficulty)
	if err := json.Unmarshal(weeksJson, &template.Weeks); err != nil {
		return nil, fmt.Errorf("unmarshal weeks of %s: %w", template.ID, err)
	}
	return &template, nil
}
