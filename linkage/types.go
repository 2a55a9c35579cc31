package linkage

import "errors"

// Sentinel errors for LinkSet construction.
var (
	// ErrNonPositiveLength indicates a link length ≤ 0.
	ErrNonPositiveLength = errors.New("linkage: link length must be > 0")

	// ErrNonFiniteLength indicates a NaN or ±Inf link length.
	ErrNonFiniteLength = errors.New("linkage: link length must be finite")
)

// NotPossible is the text rendering of a missing (None) angle.
const NotPossible = "Not possible"

// GrashofClass is the mechanism class derived from a LinkSet.
type GrashofClass int

const (
	// Grashof: at least one link can fully rotate.
	Grashof GrashofClass = iota
	// NonGrashof: no link can fully rotate.
	NonGrashof
)

// String returns "Grashof" or "non-Grashof".
func (g GrashofClass) String() string {
	switch g {
	case Grashof:
		return "Grashof"
	case NonGrashof:
		return "non-Grashof"
	default:
		return "unknown"
	}
}

// Describe returns a one-line human-readable classification message.
func (g GrashofClass) Describe() string {
	if g == Grashof {
		return "This is a Grashof linkage - at least one link can fully rotate."
	}

	return "This is a non-Grashof linkage - no link can fully rotate."
}

// Configuration selects one of the two assembly branches.
type Configuration int

const (
	// Open pairs the "−√disc" roots of both quadratics.
	Open Configuration = iota
	// Crossed pairs the "+√disc" roots of both quadratics.
	Crossed
)

// Configurations lists both branches in reporting order.
var Configurations = [2]Configuration{Open, Crossed}

// String returns "open" or "crossed".
func (c Configuration) String() string {
	if c == Crossed {
		return "crossed"
	}

	return "open"
}

// Pose is one consistent (θ2, θ3, θ4) triple, all in degrees.
type Pose struct {
	Deg2 float64 // crank angle
	Deg3 float64 // coupler angle
	Deg4 float64 // rocker angle
}

// Point is a planar coordinate in the LinkSet's length unit.
type Point struct {
	X, Y float64
}

// Joints holds the four pin positions of a posed linkage.
//
//	A: crank pivot (origin)
//	B: crank/coupler pin
//	C: coupler/rocker pin (reached through the rocker)
//	D: rocker pivot (d, 0)
type Joints struct {
	A, B, C, D Point
}
