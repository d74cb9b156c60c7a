package programs

import "strings"

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

func (l ExperienceLevel) IsValid() bool {
	switch l {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	default:
		return false
	}
}

type SplitType string

const (
	SplitFullBody      SplitType = "fullBody"
	SplitUpperLower    SplitType = "upperLower"
	SplitPushPullLegs  SplitType = "pushPullLegs"
	SplitBodyPartSplit SplitType = "bodyPartSplit"
)

func (s SplitType) IsValid() bool {
	switch s {
	case SplitFullBody, SplitUpperLower, SplitPushPullLegs, SplitBodyPartSplit:
		return true
	default:
		return false
	}
}

type Equipment string

const (
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentBarbell    Equipment = "barbell"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentMachine    Equipment = "machine"
	EquipmentCable      Equipment = "cable"
	EquipmentBands      Equipment = "bands"
)

type Preference struct {
	ExperienceLevel    ExperienceLevel `json:"experienceLevel"`
	TargetDaysPerWeek  int             `json:"targetDaysPerWeek"`
	SplitType          SplitType       `json:"splitType"`
	AvailableEquipment []Equipment     `json:"availableEquipment"`
}

// DayMapping is one day of a program week. A nil WorkoutName is a rest day.
type DayMapping struct {
	DayOfWeek   int     `json:"dayOfWeek"`
	WorkoutName *string `json:"workoutName,omitempty"`
}

type WeekTemplate struct {
	Schedule []DayMapping `json:"schedule"`
}

// Template is a stored program. Only the first week is scored: its days with a
// WorkoutName count as training days, and days without one are rest days.
type Template struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Difficulty ExperienceLevel `json:"difficulty"`
	Weeks      []WeekTemplate  `json:"weeks"`
}

// TrainingDays returns the workout names of the first week, rest days excluded.
func (t Template) TrainingDays() []string {
	if len(t.Weeks) == 0 {
		return nil
	}
	names := make([]string, 0, len(t.Weeks[0].Schedule))
	for _, day := range t.Weeks[0].Schedule {
		if day.WorkoutName == nil {
			continue
		}
		names = append(names, *day.WorkoutName)
	}
	return names
}

// InferSplitType guesses the split from the first week's workout names,
// falling back to the number of training days.
func (t Template) InferSplitType() SplitType {
	names := t.TrainingDays()

	containsAny := func(hints ...string) bool {
		for _, name := range names {
			lower := strings.ToLower(name)
			for _, hint := range hints {
				if strings.Contains(lower, hint) {
					return true
				}
			}
		}
		return false
	}

	switch {
	case containsAny("push", "pull", "leg"):
		return SplitPushPullLegs
	case containsAny("upper", "lower"):
		return SplitUpperLower
	case containsAny("full body"):
		return SplitFullBody
	}

	switch n := len(names); {
	case n <= 3:
		return SplitFullBody
	case n == 4:
		return SplitUpperLower
	case n <= 6:
		return SplitPushPullLegs
	default:
		return SplitBodyPartSplit
	}
}
