package exercises

import (
	"sort"
	"time"

	"github.com/2beens/gymcoach/pkg"
)

// EstimateOneRM uses the Epley formula. weightKg must be > 0 (callers filter),
// reps below 1 are treated as 1.
func EstimateOneRM(weightKg float64, reps int) float64 {
	if reps < 1 {
		reps = 1
	}
	if reps == 1 {
		return weightKg
	}
	return weightKg * (1 + float64(reps)/30)
}

type OneRMPoint struct {
	Day   time.Time `json:"day"`
	OneRM float64   `json:"oneRm"`
}

// SessionOneRM returns the best estimated 1RM among the qualifying sets of templateID
// in a session: completed, not a warmup and with a positive weight.
// The bool is false when no set qualifies.
func SessionOneRM(session WorkoutSession, templateID string) (float64, bool) {
	best, found := 0.0, false
	for _, occurrence := range session.Exercises {
		if occurrence.TemplateID != templateID {
			continue
		}
		for _, set := range occurrence.Sets {
			if !set.Counts() || set.WeightKg == nil || *set.WeightKg <= 0 {
				continue
			}
			estimate := EstimateOneRM(*set.WeightKg, set.RepsOrDefault())
			if !found || estimate > best {
				best, found = estimate, true
			}
		}
	}
	return best, found
}

// DailyOneRM builds the 1RM time series for templateID, one point per calendar day in loc
// (the max across that day's sessions), ascending by day.
func DailyOneRM(sessions []WorkoutSession, templateID string, loc *time.Location) []OneRMPoint {
	if loc == nil {
		loc = time.UTC
	}

	day2max := make(map[time.Time]float64)
	for _, session := range sessions {
		estimate, ok := SessionOneRM(session, templateID)
		if !ok {
			continue
		}
		day := pkg.StartOfDay(session.Date(), loc)
		if current, exists := day2max[day]; !exists || estimate > current {
			day2max[day] = estimate
		}
	}

	points := make([]OneRMPoint, 0, len(day2max))
	for day, oneRM := range day2max {
		points = append(points, OneRMPoint{Day: day, OneRM: oneRM})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Day.Before(points[j].Day)
	})

	return points
}

// OneRMDisplayList returns a copy of points with the most recent day first.
func OneRMDisplayList(points []OneRMPoint) []OneRMPoint {
	display := make([]OneRMPoint, len(points))
	copy(display, points)
	sort.SliceStable(display, func(i, j int) bool {
		return display[i].Day.After(display[j].Day)
	})
	return display
}
