// Package sweep drives the four-bar position solver across a set of crank
// angles and collects the results in declared order.
//
// What:
//
//   - Plan describes the input angles: an inclusive Range (start, stop,
//     step), a Single angle, or an explicit List.
//   - Run computes the Freudenstein coefficients once, solves every angle
//     and returns an AnalysisRun with one Sample per angle.
//
// Why:
//
//   - Sweeps reveal where real assemblies exist and where they vanish.
//   - Single-angle and sweep queries share one engine.
//
// Concurrency:
//
//	Samples are independent, so WithWorkers(n) fans the solves out over n
//	goroutines. Each worker writes only its own slot of a preallocated
//	slice, so the output order and values do not depend on n.
//
// Failure semantics:
//
//	A sample without a real solution is recorded with None angles and the
//	sweep continues. Only a bad Plan, an invalid LinkSet or an invalid
//	Option return an error.
//
// Errors:
//
//   - ErrBadStep, ErrBadRange, ErrEmptyPlan, ErrNonFiniteAngle, ErrTooManySamples: Plan problems.
//   - ErrInvalidLinkSet: zero-valued or otherwise unusable LinkSet.
//   - ErrOptionViolation: an Option received a nonsensical value.
package sweep
