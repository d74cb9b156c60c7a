package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/gymcoach/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const (
	currentPlanKey    = "diet-plan||current"
	userPlanKeyPrefix = "diet-plan||user||"
)

func userPlanKey(userID string) string {
	return userPlanKeyPrefix + userID
}

type RedisPlanStore struct {
	redisClient *redis.Client
}

func NewRedisPlanStore(redisClient *redis.Client) *RedisPlanStore {
	return &RedisPlanStore{
		redisClient: redisClient,
	}
}

// SaveCurrent stores the plan as the current one, and under its user key when it has an owner.
func (s *RedisPlanStore) SaveCurrent(ctx context.Context, plan *DietPlan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.nutrition.plan.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", plan.ID))

	planJson, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	if err := s.redisClient.Set(ctx, currentPlanKey, planJson, 0).Err(); err != nil {
		return fmt.Errorf("set current plan: %w", err)
	}
	if plan.UserID != nil && *plan.UserID != "" {
		if err := s.redisClient.Set(ctx, userPlanKey(*plan.UserID), planJson, 0).Err(); err != nil {
			return fmt.Errorf("set user plan: %w", err)
		}
	}

	return nil
}

func (s *RedisPlanStore) LoadCurrent(ctx context.Context) (_ *DietPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.nutrition.plan.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.load(ctx, currentPlanKey)
}

func (s *RedisPlanStore) LoadForUser(ctx context.Context, userID string) (_ *DietPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.nutrition.plan.load-user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	return s.load(ctx, userPlanKey(userID))
}

func (s *RedisPlanStore) load(ctx context.Context, key string) (*DietPlan, error) {
	planJson, err := s.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}

	var plan DietPlan
	if err := json.Unmarshal(planJson, &plan); err != nil {
		return nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	return &plan, nil
}
