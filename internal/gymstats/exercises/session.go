package exercises

import "time"

type WorkoutSet struct {
	WeightKg    *float64   `json:"weightKg,omitempty"`
	Reps        *int       `json:"reps,omitempty"`
	IsWarmup    bool       `json:"isWarmup"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Counts reports whether the set is a completed working set.
func (s WorkoutSet) Counts() bool {
	return !s.IsWarmup && s.CompletedAt != nil
}

// RepsOrDefault returns the logged reps, 1 when unknown.
func (s WorkoutSet) RepsOrDefault() int {
	if s.Reps == nil {
		return 1
	}
	return *s.Reps
}

type ExerciseOccurrence struct {
	TemplateID string       `json:"templateId"`
	Sets       []WorkoutSet `json:"sets"`
}

type WorkoutSession struct {
	ID        string               `json:"id"`
	AuthorID  string               `json:"authorId"`
	CreatedAt time.Time            `json:"createdAt"`
	EndedAt   *time.Time           `json:"endedAt,omitempty"`
	Exercises []ExerciseOccurrence `json:"exercises"`
}

// Date is the ended timestamp when the session was finished, otherwise the creation timestamp.
func (s WorkoutSession) Date() time.Time {
	if s.EndedAt != nil {
		return *s.EndedAt
	}
	return s.CreatedAt
}

type ExerciseTemplate struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Muscles []MuscleTarget `json:"muscles"`
}

// daysBetween counts calendar days from a to b (both already at start of day), DST safe.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
