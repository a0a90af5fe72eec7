package core

import "math"

// Numeric tolerances shared by the geometry and shading code.
const (
	// Delta is the threshold below which a value is treated as zero
	Delta = 1e-10

	// RayOffset is how far secondary ray origins are pushed off a surface along its normal.
	// Too small brings back shadow acne, too large detaches shadows from their casters.
	RayOffset = 0.1
)

// IsZero reports whether x is within Delta of zero
func IsZero(x float64) bool {
	return math.Abs(x) < Delta
}

// AlignZero snaps values within Delta of zero to exactly zero
func AlignZero(x float64) float64 {
	if IsZero(x) {
		return 0
	}
	return x
}

// Sign returns -1, 0 or 1 following the sign of x after zero alignment
func Sign(x float64) int {
	x = AlignZero(x)
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
