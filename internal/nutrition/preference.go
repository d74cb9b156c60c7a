package nutrition

import (
	"errors"
	"fmt"
)

var ErrInvalidPreference = errors.New("invalid diet preference")

type DietType string

const (
	DietBalanced DietType = "balanced"
	DietLowFat   DietType = "lowFat"
	DietLowCarb  DietType = "lowCarb"
	DietKeto     DietType = "keto"
)

type CalorieFloor string

const (
	CalorieFloorStandard CalorieFloor = "standard"
	CalorieFloorLow      CalorieFloor = "low"
)

type TrainingType string

const (
	TrainingNone          TrainingType = "none"
	TrainingRelaxed       TrainingType = "relaxed"
	TrainingWeightlifting TrainingType = "weightlifting"
	TrainingCardio        TrainingType = "cardio"
	TrainingHybrid        TrainingType = "hybrid"
)

type CalorieDistribution string

const (
	DistributionFlat   CalorieDistribution = "flat"
	DistributionVaried CalorieDistribution = "varied"
)

type ProteinIntake string

const (
	ProteinLow      ProteinIntake = "low"
	ProteinModerate ProteinIntake = "moderate"
	ProteinHigh     ProteinIntake = "high"
	ProteinVeryHigh ProteinIntake = "veryHigh"
)

type DietPreference struct {
	PreferredDiet       DietType            `json:"preferredDiet"`
	CalorieFloor        CalorieFloor        `json:"calorieFloor"`
	TrainingType        TrainingType        `json:"trainingType"`
	CalorieDistribution CalorieDistribution `json:"calorieDistribution"`
	ProteinIntake       ProteinIntake       `json:"proteinIntake"`
}

// WithDefaults fills missing fields: balanced, standard floor, no training, flat, moderate protein.
func (p DietPreference) WithDefaults() DietPreference {
	if p.PreferredDiet == "" {
		p.PreferredDiet = DietBalanced
	}
	if p.CalorieFloor == "" {
		p.CalorieFloor = CalorieFloorStandard
	}
	if p.TrainingType == "" {
		p.TrainingType = TrainingNone
	}
	if p.CalorieDistribution == "" {
		p.CalorieDistribution = DistributionFlat
	}
	if p.ProteinIntake == "" {
		p.ProteinIntake = ProteinModerate
	}
	return p
}

func (p DietPreference) Validate() error {
	switch p.PreferredDiet {
	case DietBalanced, DietLowFat, DietLowCarb, DietKeto:
	default:
		return fmt.Errorf("%w: preferred diet %q", ErrInvalidPreference, p.PreferredDiet)
	}
	switch p.CalorieFloor {
	case CalorieFloorStandard, CalorieFloorLow:
	default:
		return fmt.Errorf("%w: calorie floor %q", ErrInvalidPreference, p.CalorieFloor)
	}
	switch p.TrainingType {
	case TrainingNone, TrainingRelaxed, TrainingWeightlifting, TrainingCardio, TrainingHybrid:
	default:
		return fmt.Errorf("%w: training type %q", ErrInvalidPreference, p.TrainingType)
	}
	switch p.CalorieDistribution {
	case DistributionFlat, DistributionVaried:
	default:
		return fmt.Errorf("%w: calorie distribution %q", ErrInvalidPreference, p.CalorieDistribution)
	}
	switch p.ProteinIntake {
	case ProteinLow, ProteinModerate, ProteinHigh, ProteinVeryHigh:
	default:
		return fmt.Errorf("%w: protein intake %q", ErrInvalidPreference, p.ProteinIntake)
	}
	return nil
}

// Minimum is the lowest daily calorie target allowed by the floor policy.
func (f CalorieFloor) Minimum() float64 {
	switch f {
	case CalorieFloorLow:
		return 800
	case CalorieFloorStandard:
		return 1200
	default:
		return 1200
	}
}

// GramsPerKg is the daily protein target per kilo of body weight.
func (p ProteinIntake) GramsPerKg() float64 {
	switch p {
	case ProteinLow:
		return 1.6
	case ProteinHigh:
		return 2.2
	case ProteinVeryHigh:
		return 2.6
	case ProteinModerate:
		return 2.0
	default:
		return 2.0
	}
}

// macroSplit describes which macro has a fixed share of the total calories.
// The other one takes whatever is left after protein.
type macroSplit struct {
	fixedIsFat bool
	fixedShare float64
}

func (d DietType) split() macroSplit {
	switch d {
	case DietLowFat:
		return macroSplit{fixedIsFat: true, fixedShare: 0.20}
	case DietLowCarb:
		return macroSplit{fixedIsFat: false, fixedShare: 0.20}
	case DietKeto:
		return macroSplit{fixedIsFat: false, fixedShare: 0.05}
	case DietBalanced:
		return macroSplit{fixedIsFat: true, fixedShare: 0.30}
	default:
		return macroSplit{fixedIsFat: true, fixedShare: 0.30}
	}
}

// variesByDay reports whether training days get a high/low calorie pattern.
func (p DietPreference) variesByDay() bool {
	if p.CalorieDistribution != DistributionVaried {
		return false
	}
	switch p.TrainingType {
	case TrainingNone, TrainingRelaxed, "":
		return false
	default:
		return true
	}
}
