// Package sweep_test verifies that parallel sweeps match sequential ones.
package sweep_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/fourbar/sweep"
	"github.com/stretchr/testify/require"
)

// TestRun_WorkersMatchSequential compares fan-out widths bit-for-bit.
func TestRun_WorkersMatchSequential(t *testing.T) {
	plan := sweep.Range(0, 360, 0.5)
	ref, err := sweep.Run(tripleRocker, plan)
	require.NoError(t, err)

	for _, w := range []int{2, 3, 8, 64, 10000} {
		got, err := sweep.Run(tripleRocker, plan, sweep.WithWorkers(w))
		require.NoError(t, err)
		require.Equal(t, ref, got, "workers=%d", w)
	}
}

// TestRun_ConcurrentCallers runs many sweeps at once on shared inputs.
func TestRun_ConcurrentCallers(t *testing.T) {
	plan := sweep.DefaultRange()
	ref, err := sweep.Run(crankRocker, plan)
	require.NoError(t, err)

	const callers = 32
	results := make([]sweep.AnalysisRun, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(id int) {
			defer wg.Done()
			results[id], errs[id] = sweep.Run(crankRocker, plan, sweep.WithWorkers(1+id%4))
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, ref, results[i])
	}
}
