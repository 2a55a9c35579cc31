// Package trig provides degree-based trigonometric helpers used by the
// four-bar position solver.
//
// What:
//
//   - Cosd, Sind: cosine and sine of an angle given in degrees.
//   - Atand: arctangent returning degrees in (−90°, 90°).
//   - Radians, Degrees: unit conversions.
//   - Normalize: wrap any angle into [0°, 360°).
//
// All functions are pure, total over the reals and allocation-free.
// NaN and ±Inf propagate exactly as they do through the math package.
package trig
