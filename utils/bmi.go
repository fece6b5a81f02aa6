package utils

import "math"

// Round1 rounds to one decimal place, halves up. math.Round would pull
// -30.5 down to -31; weight changes need the half-up behavior in both
// directions.
func Round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// CalculateBMI expects weight in kilograms and height in centimeters.
// Returns 0 when the weight is missing.
func CalculateBMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	h := heightCm / 100.0
	return Round1(weightKg / (h * h))
}

func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return "Unknown"
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
