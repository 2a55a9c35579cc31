package sweep

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/fourbar/linkage"
)

// Run: Angle Sweep Engine.
//
// Description:
//
//	Run evaluates the closed-form solver once per angle of plan and
//	returns the results in the order plan declares them.
//
// Algorithm Outline:
//  1. Resolve options; expand plan into angles.
//  2. Reject a LinkSet with non-positive lengths (ErrInvalidLinkSet).
//  3. Compute the Freudenstein coefficients and Grashof class once.
//  4. Solve each angle, inline or over opts.Workers goroutines; every
//     worker writes only samples[i] for the indices it owns.
//  5. Emit advisory notes, then call OnSample for each sample in order.
//
// Complexity:
//
//	Time = O(n), Memory = O(n) for n angles.
//
// Re-running with the same LinkSet and Plan reproduces identical results
// regardless of the worker count.
func Run(ls linkage.LinkSet, plan Plan, opts ...Option) (AnalysisRun, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return AnalysisRun{}, err
	}

	angles, err := plan.Angles()
	if err != nil {
		return AnalysisRun{}, err
	}

	for _, v := range ls.Lengths() {
		if !(v > 0) || !isFinite(v) {
			return AnalysisRun{}, fmt.Errorf("%v: %w", ls, ErrInvalidLinkSet)
		}
	}

	run := AnalysisRun{
		Links:        ls,
		Class:        linkage.Classify(ls),
		Coefficients: linkage.NewCoefficients(ls),
		Mode:         plan.Mode(),
		Samples:      make([]Sample, len(angles)),
	}

	solveAll(run.Samples, angles, run.Coefficients, o.Workers)
	advise(run, plan, o)
	for _, s := range run.Samples {
		o.OnSample(s)
	}

	return run, nil
}

// solveAll fills samples[i] with the solution at angles[i].
func solveAll(samples []Sample, angles []float64, k linkage.Coefficients, workers int) {
	n := len(angles)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i, deg2 := range angles {
			samples[i] = Sample{Deg2: deg2, Result: linkage.Solve(deg2, k)}
		}

		return
	}

	// Strided partition: worker w owns indices w, w+workers, w+2·workers, …
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(first int) {
			defer wg.Done()
			for i := first; i < n; i += workers {
				samples[i] = Sample{Deg2: angles[i], Result: linkage.Solve(angles[i], k)}
			}
		}(w)
	}
	wg.Wait()
}

// advise writes the informational notes of a run to o.Logger.
//
// A single-angle query reports a missing rocker or coupler solution once
// each. Verbose runs also print the Grashof message and one line per
// unsolved sample of a sweep.
func advise(run AnalysisRun, plan Plan, o Options) {
	if o.Logger == nil {
		return
	}
	if o.Verbose {
		o.Logger.Printf("%v: %s", run.Links, run.Class.Describe())
		o.Logger.Printf("%s: %d samples", plan, run.Len())
	}

	if run.Mode == ModeSingle {
		s := run.Samples[0]
		if s.Result.MissingRocker() {
			o.Logger.Printf("No real solution for deg4 at this input angle (deg2=%.2f)", s.Deg2)
		}
		if s.Result.MissingCoupler() {
			o.Logger.Printf("No real solution for deg3 at this input angle (deg2=%.2f)", s.Deg2)
		}

		return
	}

	if !o.Verbose {
		return
	}
	for _, s := range run.Samples {
		if !s.Result.AnyReal() {
			o.Logger.Printf("deg2=%.2f: no real assembly", s.Deg2)
		}
	}
}
