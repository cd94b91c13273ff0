package helpers

import "math"

// Round2 rounds a float to two decimal places. Used for averages exposed
// through the API (reference ratings).
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
