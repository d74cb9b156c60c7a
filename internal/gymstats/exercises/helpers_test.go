package exercises_test

import (
	"time"

	"github.com/2beens/gymcoach/internal/gymstats/exercises"
)

func ptr[T any](v T) *T {
	return &v
}

// workingSets returns n completed, non-warmup sets.
func workingSets(n int, weightKg float64, reps int, at time.Time) []exercises.WorkoutSet {
	sets := make([]exercises.WorkoutSet, 0, n)
	for i := 0; i < n; i++ {
		sets = append(sets, exercises.WorkoutSet{
			WeightKg:    ptr(weightKg),
			Reps:        ptr(reps),
			CompletedAt: ptr(at.Add(time.Duration(i) * 3 * time.Minute)),
		})
	}
	return sets
}

func session(id string, at time.Time, occurrences ...exercises.ExerciseOccurrence) exercises.WorkoutSession {
	return exercises.WorkoutSession{
		ID:        id,
		AuthorID:  "author-1",
		CreatedAt: at,
		EndedAt:   ptr(at.Add(time.Hour)),
		Exercises: occurrences,
	}
}
