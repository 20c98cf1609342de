package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

type Option func(*Runner)

// WithIterations sets how many times the evaluator is called.
func WithIterations(n int) Option {
	return func(r *Runner) {
		r.iterations = n
	}
}

// WithOrder sets the truncation order passed to the evaluator.
func WithOrder(nmax int) Option {
	return func(r *Runner) {
		r.order = nmax
	}
}

// WithPoint sets the evaluation point passed to the evaluator.
func WithPoint(x float64) Option {
	return func(r *Runner) {
		r.point = x
	}
}

// WithLogger sets the logger used to report the benchmark result.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) {
		r.log = logger
	}
}

// WithRegistry sets a prometheus registry; when present, per-batch
// evaluation durations are observed into a histogram registered on it.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(r *Runner) {
		r.reg = reg
	}
}
