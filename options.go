package crossclust

type options struct {
	logger  *Logger
	workers int
}

// Option configures constructor behavior.
type Option func(*options)

// WithLogger configures structured logging for facade operations.
//
// If nil is passed, the default text logger is used; use NoopLogger to
// disable logging entirely.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NewLogger(nil)
		}
		o.logger = l
	}
}

// WithWorkers sets the number of goroutines used for independent pairwise
// computations (adjacent-pair tables in BuildTree, clusterer calls in
// Sweep). Values < 1 mean runtime.NumCPU(). Parallelism never changes
// results: merges are deterministic.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
