package sweep

import (
	"fmt"
	"log"
)

// Option configures Run via functional arguments. An invalid value is
// recorded and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds the parameters and hooks of one Run.
type Options struct {
	// Workers is the number of goroutines solving samples. 1 runs inline.
	Workers int

	// Logger receives advisory notes. nil disables them.
	Logger *log.Logger

	// Verbose also logs the Grashof class and every unsolved angle.
	Verbose bool

	// OnSample is called once per sample, in declared angle order,
	// after all samples are solved.
	OnSample func(Sample)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Workers = 1 (inline, no goroutines)
//   - no logger, Verbose = false
//   - no-op OnSample hook.
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Logger:   nil,
		Verbose:  false,
		OnSample: func(Sample) {},
	}
}

// WithWorkers sets the fan-out width. n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("WithWorkers(%d): %w", n, ErrOptionViolation)

			return
		}
		o.Workers = n
	}
}

// WithLogger routes advisory notes to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithVerbose toggles per-sample diagnostics.
func WithVerbose(v bool) Option {
	return func(o *Options) {
		o.Verbose = v
	}
}

// WithOnSample installs a per-sample hook. A nil fn is rejected.
func WithOnSample(fn func(Sample)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("WithOnSample(nil): %w", ErrOptionViolation)

			return
		}
		o.OnSample = fn
	}
}

// gatherOptions applies opts over DefaultOptions and returns the first
// recorded violation, if any.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
