package util

import "math"

// RoundToWholeAmount rounds an MNT amount; the tögrög has no subdivisions.
func RoundToWholeAmount(amount float64) int64 {
	return int64(math.Round(amount))
}
