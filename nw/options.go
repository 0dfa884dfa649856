// SPDX-License-Identifier: MIT

package nw

// Panic messages for nonsensical option values (programmer error).
const (
	panicWorkersNegative = "nw: WithParallelFill: workers must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*options)

// options is the effective configuration after applying Option setters.
type options struct {
	alphabet Alphabet // nil ⇒ unconstrained
	parallel bool     // anti-diagonal fill instead of row-major
	workers  int      // 0 ⇒ runtime.GOMAXPROCS(0)
}

// WithAlphabet restricts both input sequences to alphabet.
// Any symbol outside it makes the run fail with ErrInvalidInput.
func WithAlphabet(alphabet Alphabet) Option {
	return func(o *options) { o.alphabet = alphabet }
}

// WithParallelFill switches the fill to the anti-diagonal wavefront.
// workers bounds the goroutines per diagonal; 0 uses GOMAXPROCS.
// Panics when workers is negative.
//
// The result is identical to the row-major fill; only the schedule differs.
func WithParallelFill(workers int) Option {
	if workers < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *options) {
		o.parallel = true
		o.workers = workers
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
