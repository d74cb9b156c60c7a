package nutrition

import (
	"context"
	"errors"
)

var ErrPlanNotFound = errors.New("diet plan not found")

//go:generate mockgen -source=$GOFILE -destination=store_mocks_test.go -package=nutrition_test

// LocalPlanStore caches the current plan on this deployment (redis).
type LocalPlanStore interface {
	SaveCurrent(ctx context.Context, plan *DietPlan) error
	LoadCurrent(ctx context.Context) (*DietPlan, error)
	LoadForUser(ctx context.Context, userID string) (*DietPlan, error)
}

// RemotePlanStore keeps the plan history per user (postgres or mongo).
type RemotePlanStore interface {
	Save(ctx context.Context, plan *DietPlan) error
	Latest(ctx context.Context, userID string) (*DietPlan, error)
}
