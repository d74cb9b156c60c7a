package nutrition_test

import (
	"testing"
	"time"

	"github.com/2beens/gymcoach/internal/nutrition"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper"),
	)
}

var testNow = time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)

func dob(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestEstimateTDEE_Reference(t *testing.T) {
	profile := nutrition.UserProfile{
		Gender:            nutrition.GenderMale,
		WeightKg:          80,
		HeightCm:          180,
		DateOfBirth:       dob(1994, time.January, 10),
		ActivityLevel:     nutrition.ActivityModerate,
		ExerciseFrequency: nutrition.ExerciseThreeToFour,
	}

	assert.Equal(t, 30, profile.Age(testNow))
	assert.InDelta(t, 1780, nutrition.BMR(profile, testNow), 1e-9)
	assert.InDelta(t, 2848, nutrition.EstimateTDEE(profile, testNow), 1e-9)
}

func TestEstimateTDEE_Defaults(t *testing.T) {
	// male, 70kg, 175cm, 30 years, moderate, 3-4/week
	expected := (10*70 + 6.25*175 - 5*30 + 5) * 1.6
	assert.InDelta(t, expected, nutrition.EstimateTDEE(nutrition.UserProfile{}, testNow), 1e-9)
}

func TestEstimateTDEE_Tables(t *testing.T) {
	base := nutrition.UserProfile{
		Gender:   nutrition.GenderFemale,
		WeightKg: 60,
		HeightCm: 165,
	}
	bmr := 10*60 + 6.25*165 - 5*30 - 161.0

	testCases := []struct {
		activity   nutrition.ActivityLevel
		frequency  nutrition.ExerciseFrequency
		multiplier float64
	}{
		{nutrition.ActivitySedentary, nutrition.ExerciseNever, 1.20},
		{nutrition.ActivityLight, nutrition.ExerciseOneToTwo, 1.40},
		{nutrition.ActivityModerate, nutrition.ExerciseThreeToFour, 1.60},
		{nutrition.ActivityActive, nutrition.ExerciseFiveToSix, 1.85},
		{nutrition.ActivityVeryActive, nutrition.ExerciseDaily, 2.10},
	}

	for _, tc := range testCases {
		t.Run(string(tc.activity), func(t *testing.T) {
			p := base
			p.ActivityLevel = tc.activity
			p.ExerciseFrequency = tc.frequency
			assert.InDelta(t, bmr*tc.multiplier, nutrition.EstimateTDEE(p, testNow), 1e-9)
		})
	}
}

func TestEstimateTDEE_Floor(t *testing.T) {
	tiny := nutrition.UserProfile{
		Gender:            nutrition.GenderFemale,
		WeightKg:          10, // clamped to 30
		HeightCm:          50, // clamped to 120
		DateOfBirth:       dob(1930, time.March, 1),
		ActivityLevel:     nutrition.ActivitySedentary,
		ExerciseFrequency: nutrition.ExerciseNever,
	}
	assert.Equal(t, 30.0, tiny.EffectiveWeightKg())
	assert.Equal(t, 120.0, tiny.EffectiveHeightCm())
	assert.Equal(t, 1000.0, nutrition.EstimateTDEE(tiny, testNow))
}

func TestUserProfile_Age(t *testing.T) {
	assert.Equal(t, 30, nutrition.UserProfile{}.Age(testNow))
	// birthday not reached yet this year
	assert.Equal(t, 29, nutrition.UserProfile{DateOfBirth: dob(1994, time.June, 6)}.Age(testNow))
	assert.Equal(t, 30, nutrition.UserProfile{DateOfBirth: dob(1994, time.June, 5)}.Age(testNow))
	// floor of 14
	assert.Equal(t, 14, nutrition.UserProfile{DateOfBirth: dob(2020, time.January, 1)}.Age(testNow))
}
