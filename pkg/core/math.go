package core

import "math"

// Clamp restricts v to the range [lo, hi]
func Clamp(lo, hi, v float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
