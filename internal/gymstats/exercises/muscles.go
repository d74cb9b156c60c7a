package exercises

import (
	"time"

	"github.com/2beens/gymcoach/pkg"
)

type Muscle string

const (
	MuscleChest      Muscle = "chest"
	MuscleBack       Muscle = "back"
	MuscleLats       Muscle = "lats"
	MuscleTraps      Muscle = "traps"
	MuscleShoulders  Muscle = "shoulders"
	MuscleBiceps     Muscle = "biceps"
	MuscleTriceps    Muscle = "triceps"
	MuscleForearms   Muscle = "forearms"
	MuscleAbs        Muscle = "abs"
	MuscleObliques   Muscle = "obliques"
	MuscleLowerBack  Muscle = "lowerBack"
	MuscleGlutes     Muscle = "glutes"
	MuscleQuads      Muscle = "quads"
	MuscleHamstrings Muscle = "hamstrings"
	MuscleCalves     Muscle = "calves"
)

// AllMuscles is the fixed set of muscles every aggregation reports on.
var AllMuscles = []Muscle{
	MuscleChest,
	MuscleBack,
	MuscleLats,
	MuscleTraps,
	MuscleShoulders,
	MuscleBiceps,
	MuscleTriceps,
	MuscleForearms,
	MuscleAbs,
	MuscleObliques,
	MuscleLowerBack,
	MuscleGlutes,
	MuscleQuads,
	MuscleHamstrings,
	MuscleCalves,
}

func (m Muscle) IsValid() bool {
	for _, known := range AllMuscles {
		if m == known {
			return true
		}
	}
	return false
}

type MuscleTarget struct {
	Muscle  Muscle `json:"muscle"`
	Primary bool   `json:"primary"`
}

// MuscleMapping maps exercise template id to its target muscles.
type MuscleMapping map[string][]MuscleTarget

// MuscleSets holds the completed set counts for one muscle.
// Daily[0] is end-6 days, Daily[6] is the end day.
type MuscleSets struct {
	Daily [7]int `json:"daily"`
	Total int    `json:"total"`
}

// AggregateMuscleSets counts completed working sets per muscle over the 7 calendar days
// ending at end (in loc), plus the total over all given sessions.
// Every muscle from AllMuscles is present in the result.
func AggregateMuscleSets(
	sessions []WorkoutSession,
	mapping MuscleMapping,
	loc *time.Location,
	end time.Time,
) map[Muscle]MuscleSets {
	if loc == nil {
		loc = time.UTC
	}

	result := make(map[Muscle]MuscleSets, len(AllMuscles))
	for _, m := range AllMuscles {
		result[m] = MuscleSets{}
	}

	windowStart := pkg.StartOfDay(end, loc).AddDate(0, 0, -6)

	for _, session := range sessions {
		sessionCounts := make(map[Muscle]int)
		for _, occurrence := range session.Exercises {
			muscles := uniqueMuscles(mapping[occurrence.TemplateID])
			if len(muscles) == 0 {
				continue
			}

			completed := 0
			for _, set := range occurrence.Sets {
				if set.Counts() {
					completed++
				}
			}
			if completed == 0 {
				continue
			}

			for _, m := range muscles {
				sessionCounts[m] += completed
			}
		}

		dayIdx := daysBetween(windowStart, pkg.StartOfDay(session.Date(), loc))
		for m, count := range sessionCounts {
			sets, ok := result[m]
			if !ok {
				// muscle outside of the known set
				continue
			}
			sets.Total += count
			if dayIdx >= 0 && dayIdx < 7 {
				sets.Daily[dayIdx] += count
			}
			result[m] = sets
		}
	}

	return result
}

func uniqueMuscles(targets []MuscleTarget) []Muscle {
	seen := make(map[Muscle]bool, len(targets))
	muscles := make([]Muscle, 0, len(targets))
	for _, t := range targets {
		if seen[t.Muscle] {
			continue
		}
		seen[t.Muscle] = true
		muscles = append(muscles, t.Muscle)
	}
	return muscles
}
