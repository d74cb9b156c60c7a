package nutrition

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymcoach/internal/telemetry/tracing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/attribute"
)

const dietPlanCollectionName = "diet_plans"

type MongoPlanStore struct {
	collection *mongo.Collection
}

func NewMongoPlanStore(db *mongo.Database) *MongoPlanStore {
	return &MongoPlanStore{
		collection: db.Collection(dietPlanCollectionName),
	}
}

// EnsureIndexes creates the (user_id, created_at desc) index used by Latest.
func (s *MongoPlanStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
	if err != nil {
		return fmt.Errorf("create diet plan index: %w", err)
	}
	return nil
}

func (s *MongoPlanStore) Save(ctx context.Context, plan *DietPlan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongo.nutrition.plan.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", plan.ID))

	_, err = s.collection.InsertOne(ctx, plan)
	return err
}

func (s *MongoPlanStore) Latest(ctx context.Context, userID string) (_ *DietPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongo.nutrition.plan.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	findOptions := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var plan DietPlan
	err = s.collection.FindOne(ctx, bson.M{"user_id": userID}, findOptions).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	return &plan, nil
}
