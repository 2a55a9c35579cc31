package linkage

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fourbar/trig"
)

// LinkSet holds the four link lengths of a planar four-bar linkage.
// It is immutable once built; the zero value is not a valid linkage.
type LinkSet struct {
	a, b, c, d float64
}

// linkNames labels the lengths in error messages, in a, b, c, d order.
var linkNames = [4]string{"a (crank)", "b (coupler)", "c (rocker)", "d (ground)"}

// New validates the four lengths and returns a LinkSet.
//
// Errors:
//   - ErrNonFiniteLength: any length is NaN or ±Inf.
//   - ErrNonPositiveLength: any length is ≤ 0.
//
// The returned error names the first offending link.
func New(a, b, c, d float64) (LinkSet, error) {
	lengths := [4]float64{a, b, c, d}
	for i, v := range lengths {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return LinkSet{}, fmt.Errorf("link %s = %v: %w", linkNames[i], v, ErrNonFiniteLength)
		}
		if v <= 0 {
			return LinkSet{}, fmt.Errorf("link %s = %v: %w", linkNames[i], v, ErrNonPositiveLength)
		}
	}

	return LinkSet{a: a, b: b, c: c, d: d}, nil
}

// MustNew is like New but panics on invalid lengths.
// Intended for constants in tests and examples.
func MustNew(a, b, c, d float64) LinkSet {
	ls, err := New(a, b, c, d)
	if err != nil {
		panic(err)
	}

	return ls
}

// A returns the crank length.
func (ls LinkSet) A() float64 { return ls.a }

// B returns the coupler length.
func (ls LinkSet) B() float64 { return ls.b }

// C returns the rocker length.
func (ls LinkSet) C() float64 { return ls.c }

// D returns the ground length.
func (ls LinkSet) D() float64 { return ls.d }

// Lengths returns {a, b, c, d}.
func (ls LinkSet) Lengths() [4]float64 { return [4]float64{ls.a, ls.b, ls.c, ls.d} }

// Longest returns max(a, b, c, d).
func (ls LinkSet) Longest() float64 {
	return math.Max(math.Max(ls.a, ls.b), math.Max(ls.c, ls.d))
}

// String formats the lengths as "a=.. b=.. c=.. d=..".
func (ls LinkSet) String() string {
	return fmt.Sprintf("a=%g b=%g c=%g d=%g", ls.a, ls.b, ls.c, ls.d)
}

// Joints places the pins for pose p. C is reached through the rocker
// from D, so the coupler angle does not enter the result.
func (ls LinkSet) Joints(p Pose) Joints {
	return Joints{
		A: Point{0, 0},
		B: Point{ls.a * trig.Cosd(p.Deg2), ls.a * trig.Sind(p.Deg2)},
		C: Point{ls.d + ls.c*trig.Cosd(p.Deg4), ls.c * trig.Sind(p.Deg4)},
		D: Point{ls.d, 0},
	}
}

// ClosureResidual returns the distance between joint C reached along
// A→B→C (crank then coupler) and along A→D→C (ground then rocker).
// A pose that closes the vector loop has a residual near zero.
func (ls LinkSet) ClosureResidual(p Pose) float64 {
	j := ls.Joints(p)
	viaB := Point{
		X: j.B.X + ls.b*trig.Cosd(p.Deg3),
		Y: j.B.Y + ls.b*trig.Sind(p.Deg3),
	}

	return math.Hypot(viaB.X-j.C.X, viaB.Y-j.C.Y)
}
