package nutrition

import "time"

const minTDEE = 1000.0

// BMR uses the Mifflin-St Jeor equation on the profile with defaults applied.
func BMR(profile UserProfile, now time.Time) float64 {
	return 10*profile.EffectiveWeightKg() +
		6.25*profile.EffectiveHeightCm() -
		5*float64(profile.Age(now)) +
		genderConstant(profile.Gender)
}

// EstimateTDEE returns the estimated daily energy expenditure in kcal, at least 1000.
func EstimateTDEE(profile UserProfile, now time.Time) float64 {
	multiplier := activityMultiplier(profile.ActivityLevel) + exerciseAdjustment(profile.ExerciseFrequency)
	return max(BMR(profile, now)*multiplier, minTDEE)
}

func genderConstant(g Gender) float64 {
	switch g {
	case GenderFemale:
		return -161
	case GenderMale, "":
		return 5
	default:
		return -161
	}
}

func activityMultiplier(level ActivityLevel) float64 {
	switch level {
	case ActivitySedentary:
		return 1.20
	case ActivityLight:
		return 1.35
	case ActivityActive:
		return 1.70
	case ActivityVeryActive:
		return 1.90
	case ActivityModerate:
		return 1.50
	default:
		return 1.50
	}
}

func exerciseAdjustment(frequency ExerciseFrequency) float64 {
	switch frequency {
	case ExerciseNever:
		return 0
	case ExerciseOneToTwo:
		return 0.05
	case ExerciseFiveToSix:
		return 0.15
	case ExerciseDaily:
		return 0.20
	case ExerciseThreeToFour:
		return 0.10
	default:
		return 0.10
	}
}
