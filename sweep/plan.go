package sweep

import (
	"fmt"
	"math"
)

// rangeTol absorbs floating-point error in (stop−start)/step so that an
// exact multiple of step still includes stop.
const rangeTol = 1e-9

// Plan describes the crank angles of one run. Build it with Range,
// DefaultRange, Single or List; the zero Plan is empty.
type Plan struct {
	mode              Mode
	start, stop, step float64
	list              []float64
	isRange           bool
}

// Range returns the inclusive sweep start, start+step, …, ≤ stop.
func Range(start, stop, step float64) Plan {
	return Plan{mode: ModeSweep, start: start, stop: stop, step: step, isRange: true}
}

// DefaultRange is 0° to 360° inclusive in 10° steps (37 samples).
func DefaultRange() Plan { return Range(0, 360, 10) }

// Single returns a one-angle query.
func Single(deg2 float64) Plan {
	return Plan{mode: ModeSingle, list: []float64{deg2}}
}

// List returns an explicit sequence of angles, solved in the given order.
func List(degs ...float64) Plan {
	cp := make([]float64, len(degs))
	copy(cp, degs)

	return Plan{mode: ModeSweep, list: cp}
}

// Mode reports how the Plan was built.
func (s Plan) Mode() Mode { return s.mode }

// String describes the Plan for log lines.
func (s Plan) String() string {
	switch {
	case s.isRange:
		return fmt.Sprintf("range %g..%g step %g", s.start, s.stop, s.step)
	case s.mode == ModeSingle && len(s.list) == 1:
		return fmt.Sprintf("single %g", s.list[0])
	default:
		return fmt.Sprintf("list of %d angles", len(s.list))
	}
}

// Angles expands the Plan into its ordered list of crank angles.
//
// Range samples are computed as start + i·step rather than by repeated
// addition, so long sweeps do not accumulate drift.
//
// Errors: ErrNonFiniteAngle, ErrBadStep, ErrBadRange, ErrTooManySamples,
// ErrEmptyPlan.
func (s Plan) Angles() ([]float64, error) {
	if !s.isRange {
		if len(s.list) == 0 {
			return nil, ErrEmptyPlan
		}
		for i, v := range s.list {
			if !isFinite(v) {
				return nil, fmt.Errorf("angle #%d = %v: %w", i, v, ErrNonFiniteAngle)
			}
		}
		out := make([]float64, len(s.list))
		copy(out, s.list)

		return out, nil
	}

	if !isFinite(s.start) || !isFinite(s.stop) || !isFinite(s.step) {
		return nil, ErrNonFiniteAngle
	}
	if s.step <= 0 {
		return nil, ErrBadStep
	}
	if s.stop < s.start {
		return nil, ErrBadRange
	}

	span := (s.stop - s.start) / s.step
	if span >= MaxSamples {
		return nil, ErrTooManySamples
	}
	n := int(math.Floor(span+rangeTol)) + 1

	out := make([]float64, n)
	for i := range out {
		out[i] = s.start + float64(i)*s.step
	}
	// Snap the last sample onto stop when it is within tolerance.
	if last := out[n-1]; last != s.stop && math.Abs(last-s.stop) <= rangeTol*s.step {
		out[n-1] = s.stop
	}

	return out, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
