package sweep_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/katalvlaran/fourbar/linkage"
	"github.com/katalvlaran/fourbar/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	crankRocker  = linkage.MustNew(20, 60, 50, 70)
	regression   = linkage.MustNew(10, 20, 15, 18)
	tripleRocker = linkage.MustNew(35, 50, 40, 30)
)

// TestRun_CrankRockerComplete: a Grashof crank-rocker assembles at every
// sample of a full turn.
func TestRun_CrankRockerComplete(t *testing.T) {
	run, err := sweep.Run(crankRocker, sweep.DefaultRange())
	require.NoError(t, err)

	assert.Equal(t, linkage.Grashof, run.Class)
	assert.Equal(t, sweep.ModeSweep, run.Mode)
	require.Equal(t, 37, run.Len())
	assert.True(t, run.Complete())
	assert.Empty(t, run.Unsolved())
	for i, s := range run.Samples {
		assert.Equal(t, float64(10*i), s.Deg2, "angle order")
		assert.True(t, s.Result.Solved(), "deg2=%v", s.Deg2)
	}
}

// TestRun_SentinelPropagation: a non-Grashof linkage loses its assembly
// near θ2=0 but the sweep still reports every sample.
func TestRun_SentinelPropagation(t *testing.T) {
	run, err := sweep.Run(tripleRocker, sweep.DefaultRange())
	require.NoError(t, err)

	assert.Equal(t, linkage.NonGrashof, run.Class)
	require.Equal(t, 37, run.Len())
	assert.False(t, run.Complete())
	assert.Equal(t, []float64{0, 10, 350, 360}, run.Unsolved())

	for _, s := range run.Samples {
		if !s.Result.AnyReal() {
			assert.True(t, s.Result.MissingRocker())
			assert.True(t, s.Result.MissingCoupler())
		}
	}
	assert.True(t, run.Samples[18].Result.Solved(), "deg2=180 assembles")
}

// TestRun_MatchesDirectSolve checks the engine is a pass-through of linkage.Solve.
func TestRun_MatchesDirectSolve(t *testing.T) {
	run, err := sweep.Run(regression, sweep.Single(45))
	require.NoError(t, err)
	require.Equal(t, 1, run.Len())

	k := linkage.NewCoefficients(regression)
	assert.Equal(t, k, run.Coefficients)
	assert.Equal(t, linkage.Solve(45, k), run.Samples[0].Result)
	assert.Equal(t, sweep.ModeSingle, run.Mode)

	pose, ok := run.Samples[0].Pose(linkage.Open)
	require.True(t, ok)
	assert.InDelta(t, 56.28138693346591, pose.Deg4, 1e-9)
}

// TestRun_Deterministic re-runs the same query and compares bit-for-bit.
func TestRun_Deterministic(t *testing.T) {
	plan := sweep.Range(0, 360, 1)
	a, err := sweep.Run(tripleRocker, plan)
	require.NoError(t, err)
	b, err := sweep.Run(tripleRocker, plan)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestRun_InvalidLinkSet rejects the zero LinkSet.
func TestRun_InvalidLinkSet(t *testing.T) {
	_, err := sweep.Run(linkage.LinkSet{}, sweep.DefaultRange())
	assert.ErrorIs(t, err, sweep.ErrInvalidLinkSet)
}

// TestRun_BadPlan surfaces Plan errors.
func TestRun_BadPlan(t *testing.T) {
	_, err := sweep.Run(regression, sweep.Range(0, 10, 0))
	assert.ErrorIs(t, err, sweep.ErrBadStep)
}

// TestRun_OptionViolations rejects nonsensical options.
func TestRun_OptionViolations(t *testing.T) {
	_, err := sweep.Run(regression, sweep.DefaultRange(), sweep.WithWorkers(0))
	assert.ErrorIs(t, err, sweep.ErrOptionViolation)

	_, err = sweep.Run(regression, sweep.DefaultRange(), sweep.WithOnSample(nil))
	assert.ErrorIs(t, err, sweep.ErrOptionViolation)

	_, err = sweep.Run(regression, sweep.DefaultRange(), nil)
	assert.NoError(t, err, "nil Option is ignored")
}

// TestRun_OnSampleOrder sees every sample once, in declared order.
func TestRun_OnSampleOrder(t *testing.T) {
	var seen []float64
	plan := sweep.List(270, 90, 0, 180)
	_, err := sweep.Run(regression, plan,
		sweep.WithWorkers(3),
		sweep.WithOnSample(func(s sweep.Sample) { seen = append(seen, s.Deg2) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []float64{270, 90, 0, 180}, seen)
}

// TestRun_SingleAngleNote logs the advisory note once per unknown.
func TestRun_SingleAngleNote(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	_, err := sweep.Run(tripleRocker, sweep.Single(0), sweep.WithLogger(logger))
	require.NoError(t, err)
	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "No real solution for deg4"))
	assert.Equal(t, 1, strings.Count(out, "No real solution for deg3"))

	buf.Reset()
	_, err = sweep.Run(tripleRocker, sweep.Single(90), sweep.WithLogger(logger))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

// TestRun_SweepNotes stays quiet unless verbose.
func TestRun_SweepNotes(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	_, err := sweep.Run(tripleRocker, sweep.DefaultRange(), sweep.WithLogger(logger))
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	_, err = sweep.Run(tripleRocker, sweep.DefaultRange(), sweep.WithLogger(logger), sweep.WithVerbose(true))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "non-Grashof")
	assert.Contains(t, out, "range 0..360 step 10: 37 samples")
	assert.Equal(t, 4, strings.Count(out, "no real assembly"))
}
