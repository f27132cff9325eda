package utils

import "math/rand"

// RandomBetween returns a float in [min, max).
func RandomBetween(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// RandomIntBetween returns an int in [min, max).
func RandomIntBetween(min, max int) int {
	return min + rand.Intn(max-min)
}

// RandomChoice returns a random element of options.
func RandomChoice(options []string) string {
	return options[rand.Intn(len(options))]
}

// Clamp bounds v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
