// Package physics provides the overlap and clamping helpers used by collision detection.
package physics

// SpansOverlap reports whether the closed interval [aMin, aMax] touches or
// intersects [bMin, bMax] once b is widened by tolerance on both ends.
// A tolerance of 0 still counts touching edges as overlap.
func SpansOverlap(aMin, aMax, bMin, bMax, tolerance float64) bool {
	return aMax >= bMin-tolerance && aMin <= bMax+tolerance
}

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp returns the value at fraction t between lo and hi.
func Lerp(lo, hi, t float64) float64 {
	return lo + (hi-lo)*t
}
