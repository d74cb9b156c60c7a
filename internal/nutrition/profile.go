package nutrition

import (
	"time"

	"github.com/2beens/gymcoach/pkg"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "veryActive"
)

type ExerciseFrequency string

const (
	ExerciseNever       ExerciseFrequency = "never"
	ExerciseOneToTwo    ExerciseFrequency = "1-2"
	ExerciseThreeToFour ExerciseFrequency = "3-4"
	ExerciseFiveToSix   ExerciseFrequency = "5-6"
	ExerciseDaily       ExerciseFrequency = "daily"
)

const (
	defaultWeightKg = 70.0
	defaultHeightCm = 175.0
	defaultAge      = 30
	minWeightKg     = 30.0
	minHeightCm     = 120.0
	minAge          = 14
)

// UserProfile is a snapshot of the body stats used for estimation.
// Empty strings and zero numbers mean the value is missing.
type UserProfile struct {
	Gender            Gender            `json:"gender,omitempty"`
	WeightKg          float64           `json:"weightKg,omitempty"`
	HeightCm          float64           `json:"heightCm,omitempty"`
	DateOfBirth       *time.Time        `json:"dateOfBirth,omitempty"`
	ActivityLevel     ActivityLevel     `json:"activityLevel,omitempty"`
	ExerciseFrequency ExerciseFrequency `json:"exerciseFrequency,omitempty"`
}

// EffectiveWeightKg is the weight used by the formulas: 70 when missing, never below 30.
func (p UserProfile) EffectiveWeightKg() float64 {
	weight := p.WeightKg
	if weight <= 0 {
		weight = defaultWeightKg
	}
	return max(weight, minWeightKg)
}

// EffectiveHeightCm is the height used by the formulas: 175 when missing, never below 120.
func (p UserProfile) EffectiveHeightCm() float64 {
	height := p.HeightCm
	if height <= 0 {
		height = defaultHeightCm
	}
	return max(height, minHeightCm)
}

// FromImperial reads WeightKg as pounds and HeightCm as inches and converts both to metric.
func (p UserProfile) FromImperial() UserProfile {
	if p.WeightKg > 0 {
		p.WeightKg = pkg.RoundTo(pkg.LbToKg(p.WeightKg), 2)
	}
	if p.HeightCm > 0 {
		p.HeightCm = pkg.RoundTo(pkg.InchToCm(p.HeightCm), 2)
	}
	return p
}

// Age returns whole years at now, 30 without a date of birth, never below 14.
func (p UserProfile) Age(now time.Time) int {
	if p.DateOfBirth == nil {
		return defaultAge
	}
	dob := p.DateOfBirth.In(now.Location())
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return max(age, minAge)
}
