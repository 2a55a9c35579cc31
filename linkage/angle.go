package linkage

import (
	"math"
	"strconv"
)

// Angle is an optional angle in degrees. The zero value is None, which
// marks "no real solution" for one branch of one unknown.
type Angle struct {
	deg float64
	ok  bool
}

// Some wraps a solved angle. A NaN or ±Inf value yields None, so a
// non-finite number is never reported as a valid angle.
func Some(deg float64) Angle {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return Angle{}
	}

	return Angle{deg: deg, ok: true}
}

// None returns the "no real solution" marker.
func None() Angle { return Angle{} }

// OK reports whether the angle holds a real solution.
func (a Angle) OK() bool { return a.ok }

// Value returns the angle in degrees and whether it is present.
func (a Angle) Value() (float64, bool) { return a.deg, a.ok }

// Or returns the angle, or fallback when it is None.
func (a Angle) Or(fallback float64) float64 {
	if !a.ok {
		return fallback
	}

	return a.deg
}

// Format renders the angle with prec decimals, or NotPossible for None.
func (a Angle) Format(prec int) string {
	if !a.ok {
		return NotPossible
	}

	return strconv.FormatFloat(a.deg, 'f', prec, 64)
}

// String renders the angle with four decimals.
func (a Angle) String() string { return a.Format(4) }
