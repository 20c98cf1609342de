package series

import (
	"github.com/dora-network/exp-series/errors"
)

// SumExp approximates e^x by the partial sum of x^n/n! for n = 0..nmax.
// The n-th term is produced from the (n-1)-th by element *= x/n, which keeps
// intermediate magnitudes bounded by the terms themselves instead of the
// separate x^n and n! factors.
//
// The result is pure and deterministic in (nmax, x). IEEE special values are
// returned as computed: a large enough x with a large nmax overflows the
// running term to +Inf mid-loop, and non-finite x propagates through the
// recurrence. For large negative x the alternating terms mostly cancel and
// the final sum carries the resulting cancellation error; that is a property
// of forward summation of this series, not something this function corrects.
func SumExp(nmax int, x float64) (float64, error) {
	if nmax < 0 {
		return 0, errors.ErrNegativeOrder
	}
	sum, element := 1.0, 1.0
	for n := 1; n <= nmax; n++ {
		element *= x / float64(n)
		sum += element
	}
	return sum, nil
}
