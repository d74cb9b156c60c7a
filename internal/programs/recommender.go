package programs

import (
	"slices"
	"sort"
)

// Scored is a template with its recommendation score.
type Scored struct {
	Template Template `json:"template"`
	Score    int      `json:"score"`
}

// Score rates how well a template fits the preference. Higher is better, 0 means no fit at all.
func Score(pref Preference, template Template) int {
	return difficultyScore(pref.ExperienceLevel, template.Difficulty) +
		daysScore(pref.TargetDaysPerWeek, len(template.TrainingDays())) +
		splitScore(pref.SplitType, template.InferSplitType()) +
		equipmentScore(pref.AvailableEquipment)
}

// Rank scores all templates, best first. Equal scores keep their input order.
func Rank(pref Preference, templates []Template) []Scored {
	ranked := make([]Scored, 0, len(templates))
	for _, t := range templates {
		ranked = append(ranked, Scored{
			Template: t,
			Score:    Score(pref, t),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Recommend picks the best scoring template. When nothing scores above 0 it returns
// the first template with the preferred difficulty, or else the first template.
// Returns nil for an empty list.
func Recommend(pref Preference, templates []Template) *Template {
	if len(templates) == 0 {
		return nil
	}

	best := Rank(pref, templates)[0]
	if best.Score > 0 {
		return &best.Template
	}

	for i := range templates {
		if templates[i].Difficulty == pref.ExperienceLevel {
			t := templates[i]
			return &t
		}
	}
	t := templates[0]
	return &t
}

func difficultyScore(preferred, difficulty ExperienceLevel) int {
	switch {
	case preferred == difficulty:
		return 10
	case preferred == ExperienceBeginner && difficulty == ExperienceIntermediate:
		return 3
	case preferred == ExperienceIntermediate && difficulty == ExperienceAdvanced:
		return 2
	default:
		return 0
	}
}

func daysScore(target, actual int) int {
	diff := target - actual
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 8
	case 1:
		return 5
	case 2:
		return 2
	default:
		return 0
	}
}

func splitScore(preferred, inferred SplitType) int {
	switch {
	case preferred == inferred:
		return 7
	case preferred == SplitFullBody && inferred == SplitUpperLower,
		preferred == SplitUpperLower && inferred == SplitFullBody:
		return 3
	default:
		return 0
	}
}

// equipmentScore only checks for the common free weight tags.
func equipmentScore(available []Equipment) int {
	for _, e := range []Equipment{EquipmentBodyweight, EquipmentDumbbell, EquipmentBarbell} {
		if slices.Contains(available, e) {
			return 3
		}
	}
	return 0
}
