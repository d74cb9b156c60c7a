package pkg

import "math"

const (
	poundsPerKilo = 2.2046226218
	cmPerInch     = 2.54
)

func KgToLb(kg float64) float64 {
	return kg * poundsPerKilo
}

func LbToKg(lb float64) float64 {
	return lb / poundsPerKilo
}

func InchToCm(in float64) float64 {
	return in * cmPerInch
}

// RoundTo rounds v half away from zero to the given number of decimals.
func RoundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
