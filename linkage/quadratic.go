package linkage

import (
	"math"

	"github.com/katalvlaran/fourbar/trig"
)

// Quadratic is A·t² + B·t + C = 0 with t = tan(θ/2) for one unknown angle θ.
// Instances are transient: one per unknown per input angle.
type Quadratic struct {
	A, B, C float64
}

// Discriminant returns B² − 4AC.
func (q Quadratic) Discriminant() float64 {
	return q.B*q.B - 4*q.A*q.C
}

// HalfAngleRoots solves the quadratic for t and maps each root back to
// θ = 2·atan(t), in degrees within [−180°, 180°].
//
// Implementation:
//   - Stage 1: reject non-finite coefficients or discriminant.
//   - Stage 2: reject disc < 0 (no real assembly) and A == 0 (the
//     quadratic degenerates; the division below is undefined).
//   - Stage 3: open = 2·atand((−B − √disc) / 2A),
//     crossed = 2·atand((−B + √disc) / 2A).
//
// Both roots are None when any guard trips.
func (q Quadratic) HalfAngleRoots() (open, crossed Angle) {
	disc := q.Discriminant()
	if !finite(q.A, q.B, q.C, disc) {
		return None(), None()
	}
	if disc < 0 || q.A == 0 {
		return None(), None()
	}

	root := math.Sqrt(disc)
	den := 2 * q.A
	open = Some(2 * trig.Atand((-q.B-root)/den))
	crossed = Some(2 * trig.Atand((-q.B+root)/den))

	return open, crossed
}

// RockerQuadratic builds the θ4 system for crank angle deg2:
//
//	A = cos θ2 − K1 − K2·cos θ2 + K3
//	B = −2·sin θ2
//	C = K1 − (K2 + 1)·cos θ2 + K3
func RockerQuadratic(deg2 float64, k Coefficients) Quadratic {
	cos2, sin2 := trig.Cosd(deg2), trig.Sind(deg2)

	return Quadratic{
		A: cos2 - k.K1 - k.K2*cos2 + k.K3,
		B: -2 * sin2,
		C: k.K1 - (k.K2+1)*cos2 + k.K3,
	}
}

// CouplerQuadratic builds the θ3 system for crank angle deg2:
//
//	D = cos θ2 − K1 + K4·cos θ2 + K5
//	E = −2·sin θ2
//	F = K1 + (K4 − 1)·cos θ2 + K5
//
// The result reuses the Quadratic field names: A=D, B=E, C=F.
func CouplerQuadratic(deg2 float64, k Coefficients) Quadratic {
	cos2, sin2 := trig.Cosd(deg2), trig.Sind(deg2)

	return Quadratic{
		A: cos2 - k.K1 + k.K4*cos2 + k.K5,
		B: -2 * sin2,
		C: k.K1 + (k.K4-1)*cos2 + k.K5,
	}
}
