package sweep

import (
	"errors"

	"github.com/katalvlaran/fourbar/linkage"
)

// Sentinel errors for sweep execution.
var (
	// ErrBadStep is returned when a Range step is not > 0.
	ErrBadStep = errors.New("sweep: step must be > 0")

	// ErrBadRange is returned when a Range stop is below its start.
	ErrBadRange = errors.New("sweep: stop must not be below start")

	// ErrEmptyPlan is returned when a Plan yields no angles.
	ErrEmptyPlan = errors.New("sweep: no input angles")

	// ErrNonFiniteAngle is returned for NaN or ±Inf angles or bounds.
	ErrNonFiniteAngle = errors.New("sweep: angle must be finite")

	// ErrTooManySamples is returned when a Range expands past MaxSamples.
	ErrTooManySamples = errors.New("sweep: too many samples")

	// ErrInvalidLinkSet is returned when the LinkSet has non-positive lengths.
	ErrInvalidLinkSet = errors.New("sweep: invalid link set")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sweep: invalid option supplied")
)

// MaxSamples bounds the number of angles a single Plan may expand to.
const MaxSamples = 1 << 20

// Mode tells whether a run came from a single-angle query or a sweep.
type Mode int

const (
	// ModeSweep: a Range or List of angles.
	ModeSweep Mode = iota
	// ModeSingle: exactly one explicit angle.
	ModeSingle
)

// String returns "sweep" or "single".
func (m Mode) String() string {
	if m == ModeSingle {
		return "single"
	}

	return "sweep"
}

// Sample pairs one crank angle with its solved branches.
type Sample struct {
	Deg2   float64
	Result linkage.BranchResult
}

// Pose returns the consistent pose of one branch, if it exists.
func (s Sample) Pose(cfg linkage.Configuration) (linkage.Pose, bool) {
	return s.Result.Pose(s.Deg2, cfg)
}

// AnalysisRun is the ordered output of one Run. Samples follow the order
// in which the Plan declared its angles.
type AnalysisRun struct {
	Links        linkage.LinkSet
	Class        linkage.GrashofClass
	Coefficients linkage.Coefficients
	Mode         Mode
	Samples      []Sample
}

// Len returns the number of samples.
func (r AnalysisRun) Len() int { return len(r.Samples) }

// Unsolved returns the crank angles at which neither branch assembles.
func (r AnalysisRun) Unsolved() []float64 {
	var out []float64
	for _, s := range r.Samples {
		if !s.Result.AnyReal() {
			out = append(out, s.Deg2)
		}
	}

	return out
}

// Complete reports whether every sample has at least one full pose.
func (r AnalysisRun) Complete() bool {
	for _, s := range r.Samples {
		if !s.Result.AnyReal() {
			return false
		}
	}

	return true
}
