package trig

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi

	// FullTurn is one complete revolution in degrees.
	FullTurn = 360.0
)

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 { return deg * degToRad }

// Degrees converts an angle in radians to degrees.
func Degrees(rad float64) float64 { return rad * radToDeg }

// Cosd returns cos(x) for x in degrees.
func Cosd(x float64) float64 { return math.Cos(Radians(x)) }

// Sind returns sin(x) for x in degrees.
func Sind(x float64) float64 { return math.Sin(Radians(x)) }

// Atand returns atan(x) in degrees. The result lies in (−90°, 90°);
// Atand(±Inf) is ±90°.
func Atand(x float64) float64 { return Degrees(math.Atan(x)) }

// Normalize wraps deg into [0, 360).
//
// Non-finite inputs are returned unchanged.
func Normalize(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return deg
	}
	r := math.Mod(deg, FullTurn)
	if r < 0 {
		r += FullTurn
	}
	// -tiny + 360 can round up to exactly 360.
	if r >= FullTurn {
		r = 0
	}

	return r
}
