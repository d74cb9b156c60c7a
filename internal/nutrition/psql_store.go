package nutrition

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

type PsqlPlanStore struct {
	db *pgxpool.Pool
}

func NewPsqlPlanStore(db *pgxpool.Pool) *PsqlPlanStore {
	return &PsqlPlanStore{
		db: db,
	}
}

func (s *PsqlPlanStore) Save(ctx context.Context, plan *DietPlan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.plan.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", plan.ID))

	daysJson, err := json.Marshal(plan.Days)
	if err != nil {
		return fmt.Errorf("marshal days: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO diet_plan (
			id, user_id, created_at, tdee,
			preferred_diet, calorie_floor, training_type, calorie_distribution, protein_intake,
			days
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		plan.ID, plan.UserID, plan.CreatedAt.UTC(), plan.TDEE,
		plan.PreferredDiet, plan.CalorieFloor, plan.TrainingType, plan.CalorieDistribution, plan.ProteinIntake,
		daysJson,
	)
	return err
}

func (s *PsqlPlanStore) Latest(ctx context.Context, userID string) (_ *DietPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.plan.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	var (
		plan     DietPlan
		daysJson []byte
	)
	err = s.db.QueryRow(ctx, `
		SELECT id::text, user_id, created_at, tdee,
			preferred_diet, calorie_floor, training_type, calorie_distribution, protein_intake,
			days
		FROM diet_plan
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID).Scan(
		&plan.ID, &plan.UserID, &plan.CreatedAt, &plan.TDEE,
		&plan.PreferredDiet, &plan.CalorieFloor, &plan.TrainingType, &plan.CalorieDistribution, &plan.ProteinIntake,
		&daysJson,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(daysJson, &plan.Days); err != nil {
		return nil, fmt.Errorf("unmarshal days: %w", err)
	}

	return &plan, nil
}
