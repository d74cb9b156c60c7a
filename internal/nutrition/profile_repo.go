package nutrition

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/gymcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrProfileNotFound = errors.New("user profile not found")

type ProfileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepo(db *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{
		db: db,
	}
}

func (r *ProfileRepo) Get(ctx context.Context, userID string) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	var (
		profile           UserProfile
		gender            *string
		weightKg          *float64
		heightCm          *float64
		activityLevel     *string
		exerciseFrequency *string
	)
	err = r.db.QueryRow(ctx, `
		SELECT gender, weight_kg, height_cm, date_of_birth, activity_level, exercise_frequency
		FROM user_profile
		WHERE user_id = $1
	`, userID).Scan(&gender, &weightKg, &heightCm, &profile.DateOfBirth, &activityLevel, &exerciseFrequency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if gender != nil {
		profile.Gender = Gender(*gender)
	}
	if weightKg != nil {
		profile.WeightKg = *weightKg
	}
	if heightCm != nil {
		profile.HeightCm = *heightCm
	}
	if activityLevel != nil {
		profile.ActivityLevel = ActivityLevel(*activityLevel)
	}
	if exerciseFrequency != nil {
		profile.ExerciseFrequency = ExerciseFrequency(*exerciseFrequency)
	}

	return &profile, nil
}

func (r *ProfileRepo) Upsert(ctx context.Context, userID string, profile UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.profile.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_profile (
			user_id, gender, weight_kg, height_cm, date_of_birth, activity_level, exercise_frequency, updated_at
		) VALUES ($1, NULLIF($2::text, ''), NULLIF($3::double precision, 0), NULLIF($4::double precision, 0), $5, NULLIF($6::text, ''), NULLIF($7::text, ''), $8)
		ON CONFLICT (user_id) DO UPDATE SET
			gender = EXCLUDED.gender,
			weight_kg = EXCLUDED.weight_kg,
			height_cm = EXCLUDED.height_cm,
			date_of_birth = EXCLUDED.date_of_birth,
			activity_level = EXCLUDED.activity_level,
			exercise_frequency = EXCLUDED.exercise_frequency,
			updated_at = EXCLUDED.updated_at
	`,
		userID,
		string(profile.Gender), profile.WeightKg, profile.HeightCm, profile.DateOfBirth,
		string(profile.ActivityLevel), string(profile.ExerciseFrequency),
		time.Now().UTC(),
	)
	return err
}
