// Package trend smooths body weight series with an exponentially weighted moving average.
package trend

import "time"

// SmoothingFactor is the EWMA weight given to the newest sample.
const SmoothingFactor = 0.15

// Sample is a single dated value in kilograms.
type Sample struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Calculate returns the trend series for samples (ascending by date) using SmoothingFactor.
// Duplicate dates are not consolidated here, see events.ConsolidateDaily.
func Calculate(samples []Sample) []Sample {
	return CalculateWithFactor(samples, SmoothingFactor)
}

// CalculateWithFactor is Calculate with an explicit alpha in (0, 1].
// The first trend value is seeded with the first raw value.
func CalculateWithFactor(samples []Sample, alpha float64) []Sample {
	result := make([]Sample, len(samples))
	if len(samples) == 0 {
		return result
	}

	result[0] = samples[0]
	for i := 1; i < len(samples); i++ {
		result[i] = Sample{
			Date:  samples[i].Date,
			Value: alpha*samples[i].Value + (1-alpha)*result[i-1].Value,
		}
	}

	return result
}
