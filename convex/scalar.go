package convex

import "math"

// Every geometric predicate in this package funnels through these
// comparators. Raw == on floats is never used: after a handful of
// arithmetic operations, two values that are geometrically "the same
// point" differ by a few ULPs, and without a tolerance we'd end up
// classifying absurdly thin slivers as genuine turns.

// ulpOfOne is the gap between 1.0 and the next representable float64.
const ulpOfOne = 0x1p-52

// zeroEps is the fixed absolute tolerance for the IsZero/IsPositive/
// IsNegative family. Note this is a different policy from eps(): zero
// tests don't scale with magnitude.
const zeroEps = 16 * ulpOfOne

// eps returns the comparison tolerance for values near a. It is
// relative: roughly 16 ULPs at a's magnitude, clamped so it never
// degenerates to zero.
//
// All the two-operand comparators derive their tolerance from the FIRST
// operand only. That makes Equal(a, b) and Equal(b, a) disagree right at
// the boundary when |a| and |b| differ wildly. The asymmetry is kept on
// purpose: existing fixtures depend on the exact boundary behavior.
func eps(a float64) float64 {
	m := 16 * math.Abs(a)
	if m < ulpOfOne {
		m = ulpOfOne
	} else if m > math.MaxFloat64 {
		m = math.MaxFloat64
	}
	return ulpOfOne * m
}

// Equal reports whether a and b are equal within the relative tolerance
// at a's magnitude.
func Equal(a, b float64) bool {
	e := eps(a)
	return a < b+e && a > b-e
}

// Inequal is the negation of Equal.
func Inequal(a, b float64) bool {
	return !Equal(a, b)
}

// Greater reports whether a is greater than b by more than the tolerance.
func Greater(a, b float64) bool {
	return a >= b+eps(a)
}

// Less reports whether a is less than b by more than the tolerance.
func Less(a, b float64) bool {
	return a <= b-eps(a)
}

// GreaterOrEqual reports whether a is greater than or tolerantly equal to b.
func GreaterOrEqual(a, b float64) bool {
	return a > b-eps(a)
}

// LessOrEqual reports whether a is less than or tolerantly equal to b.
func LessOrEqual(a, b float64) bool {
	return a < b+eps(a)
}

// IsZero reports whether v is within the fixed absolute tolerance of zero.
func IsZero(v float64) bool {
	return math.Abs(v) < zeroEps
}

// IsPositive reports whether v is positive beyond the fixed tolerance.
func IsPositive(v float64) bool {
	return v >= zeroEps
}

// IsNegative reports whether v is negative beyond the fixed tolerance.
func IsNegative(v float64) bool {
	return v <= -zeroEps
}

// Sign classifies v against the fixed zero tolerance: -1, 0 or +1. This
// is the fused form of the IsPositive/IsNegative pair; callers that need
// both answers should use it to avoid testing twice.
func Sign(v float64) int {
	switch {
	case v >= zeroEps:
		return 1
	case v <= -zeroEps:
		return -1
	default:
		return 0
	}
}
