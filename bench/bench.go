// Package bench times the series evaluator in a tight loop. It measures
// wall-clock throughput only; correctness is the series package's test
// suite's job, and the two are deliberately kept apart.
package bench

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/dora-network/exp-series/errors"
	"github.com/dora-network/exp-series/series"
)

// batchSize bounds how long the runner goes between context checks and
// histogram observations.
const batchSize = 4096

// Runner calls series.SumExp repeatedly with a fixed order and point and
// reports how long it took. Construct it with New and the With* options.
type Runner struct {
	iterations int
	order      int
	point      float64
	log        zerolog.Logger
	reg        *prometheus.Registry
	durations  prometheus.Histogram
}

// Result is one completed benchmark run.
type Result struct {
	Iterations int           `json:"iterations"`
	Order      int           `json:"order"`
	Point      float64       `json:"point"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	NsPerOp    float64       `json:"ns_per_op"`
	Value      float64       `json:"value"`
}

// New validates the options and returns a Runner ready to Run.
func New(opts ...Option) (*Runner, error) {
	r := &Runner{
		iterations: 1_000_000,
		order:      10,
		point:      1.0,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.iterations <= 0 {
		return nil, errors.ErrIterationsMustBePositive
	}
	if r.order < 0 {
		return nil, errors.ErrNegativeOrder
	}
	if r.reg != nil {
		r.durations = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "expseries",
			Name:      "eval_batch_duration_seconds",
			Help:      "Duration of series evaluation batches.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 8),
		})
		if err := r.reg.Register(r.durations); err != nil {
			return nil, errors.Wrap(errors.InternalError, err, "register duration histogram")
		}
	}
	return r, nil
}

// Run executes the configured number of evaluations and returns the timing.
// The context is checked between batches, not between single evaluations.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	var value float64
	done := 0
	start := time.Now()
	for done < r.iterations {
		if err := ctx.Err(); err != nil {
			return Result{}, errors.Wrap(errors.InternalError, err, "benchmark interrupted")
		}
		n := batchSize
		if left := r.iterations - done; left < n {
			n = left
		}
		batchStart := time.Now()
		for i := 0; i < n; i++ {
			v, err := series.SumExp(r.order, r.point)
			if err != nil {
				return Result{}, err
			}
			value = v
		}
		if r.durations != nil {
			r.durations.Observe(time.Since(batchStart).Seconds())
		}
		done += n
	}
	elapsed := time.Since(start)

	res := Result{
		Iterations: r.iterations,
		Order:      r.order,
		Point:      r.point,
		Elapsed:    elapsed,
		NsPerOp:    float64(elapsed.Nanoseconds()) / float64(r.iterations),
		Value:      value,
	}
	r.log.Info().
		Int("iterations", res.Iterations).
		Int("order", res.Order).
		Float64("point", res.Point).
		Dur("elapsed", res.Elapsed).
		Float64("ns_per_op", res.NsPerOp).
		Msg("benchmark complete")
	return res, nil
}
