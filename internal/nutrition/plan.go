package nutrition

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9

	highDayFactor = 1.10
	lowDayFactor  = 0.925
)

// weekPattern marks the high calorie days, Monday first.
var weekPattern = [7]bool{true, false, true, false, true, false, false}

// DailyMacroTarget is one day of a plan. Index 0 of a plan week is Monday.
type DailyMacroTarget struct {
	Calories     int `json:"calories" bson:"calories"`
	ProteinGrams int `json:"proteinGrams" bson:"protein_grams"`
	CarbGrams    int `json:"carbGrams" bson:"carb_grams"`
	FatGrams     int `json:"fatGrams" bson:"fat_grams"`
}

// Kcal is the energy of the rounded macros.
func (t DailyMacroTarget) Kcal() int {
	return t.ProteinGrams*kcalPerGramProtein + t.CarbGrams*kcalPerGramCarb + t.FatGrams*kcalPerGramFat
}

type DietPlan struct {
	ID                  string              `json:"id" bson:"_id"`
	UserID              *string             `json:"userId,omitempty" bson:"user_id,omitempty"`
	CreatedAt           time.Time           `json:"createdAt" bson:"created_at"`
	TDEE                float64             `json:"tdee" bson:"tdee"`
	PreferredDiet       string              `json:"preferredDiet" bson:"preferred_diet"`
	CalorieFloor        string              `json:"calorieFloor" bson:"calorie_floor"`
	TrainingType        string              `json:"trainingType" bson:"training_type"`
	CalorieDistribution string              `json:"calorieDistribution" bson:"calorie_distribution"`
	ProteinIntake       string              `json:"proteinIntake" bson:"protein_intake"`
	Days                [7]DailyMacroTarget `json:"days" bson:"days"`
}

// ComputeDietPlan builds a 7 day macro plan. Missing preference fields get defaults,
// an empty userID produces a plan without an owner.
func ComputeDietPlan(profile UserProfile, pref DietPreference, userID string, now time.Time) *DietPlan {
	pref = pref.WithDefaults()

	tdee := EstimateTDEE(profile, now)
	floor := pref.CalorieFloor.Minimum()
	target := max(tdee, floor)

	proteinGrams := pref.ProteinIntake.GramsPerKg() * profile.EffectiveWeightKg()
	proteinKcal := proteinGrams * kcalPerGramProtein

	split := pref.PreferredDiet.split()
	fatShare := fatShareOfResidual(split, target, proteinKcal)

	plan := &DietPlan{
		ID:                  uuid.NewString(),
		CreatedAt:           now,
		TDEE:                tdee,
		PreferredDiet:       string(pref.PreferredDiet),
		CalorieFloor:        string(pref.CalorieFloor),
		TrainingType:        string(pref.TrainingType),
		CalorieDistribution: string(pref.CalorieDistribution),
		ProteinIntake:       string(pref.ProteinIntake),
	}
	if userID != "" {
		plan.UserID = &userID
	}

	varied := pref.variesByDay()
	for day := range plan.Days {
		dayKcal := target
		if varied {
			if weekPattern[day] {
				dayKcal = target * highDayFactor
			} else {
				dayKcal = target * lowDayFactor
			}
		}
		dayKcal = max(dayKcal, floor)
		plan.Days[day] = dayMacros(dayKcal, proteinGrams, fatShare, split.fixedIsFat)
	}

	return plan
}

// fatShareOfResidual is the fat part of the calories left after protein, as split on the target.
func fatShareOfResidual(split macroSplit, target, proteinKcal float64) float64 {
	var fatKcal, carbKcal float64
	if split.fixedIsFat {
		fatKcal = split.fixedShare * target
		carbKcal = max(target-proteinKcal-fatKcal, 0)
	} else {
		carbKcal = split.fixedShare * target
		fatKcal = max(target-proteinKcal-carbKcal, 0)
	}

	if fatKcal+carbKcal == 0 {
		if split.fixedIsFat {
			return split.fixedShare
		}
		return 1 - split.fixedShare
	}
	return fatKcal / (fatKcal + carbKcal)
}

// dayMacros rounds protein and the fixed macro, then derives the remainder macro
// from the rounded grams so the day's macro energy stays within a few kcal of its calories.
func dayMacros(dayKcal, proteinGrams, fatShare float64, fixedIsFat bool) DailyMacroTarget {
	calories := int(math.Round(dayKcal))
	protein := int(math.Round(proteinGrams))
	residual := max(float64(calories-protein*kcalPerGramProtein), 0)

	target := DailyMacroTarget{
		Calories:     calories,
		ProteinGrams: protein,
	}
	if fixedIsFat {
		target.FatGrams = int(math.Round(residual * fatShare / kcalPerGramFat))
		carbKcal := float64(calories - protein*kcalPerGramProtein - target.FatGrams*kcalPerGramFat)
		target.CarbGrams = max(int(math.Round(carbKcal/kcalPerGramCarb)), 0)
	} else {
		target.CarbGrams = int(math.Round(residual * (1 - fatShare) / kcalPerGramCarb))
		fatKcal := float64(calories - protein*kcalPerGramProtein - target.CarbGrams*kcalPerGramCarb)
		target.FatGrams = max(int(math.Round(fatKcal/kcalPerGramFat)), 0)
	}

	return target
}

// WeekdayIndex maps a date to the plan day index, Monday = 0 ... Sunday = 6.
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
