// Package decimal evaluates the truncated exponential series over exact
// decimals. It trades the speed of the float64 evaluator for arithmetic with
// no binary rounding, which makes it useful as a cross-check in tests.
package decimal

import (
	"github.com/govalues/decimal"

	"github.com/dora-network/exp-series/errors"
)

// SumExp approximates e^x by the partial sum of x^n/n! for n = 0..nmax using
// the same term recurrence as the float64 evaluator. Decimal arithmetic
// failures (coefficient overflow for large |x| and order) are surfaced as
// internal errors rather than IEEE special values, since decimals have none.
func SumExp(nmax int, x decimal.Decimal) (decimal.Decimal, error) {
	if nmax < 0 {
		return decimal.Decimal{}, errors.ErrNegativeOrder
	}
	sum := decimal.One
	element := decimal.One
	for n := 1; n <= nmax; n++ {
		num, err := element.Mul(x)
		if err != nil {
			return decimal.Decimal{}, errors.Wrap(errors.InternalError, err, "series term")
		}
		den, err := decimal.New(int64(n), 0)
		if err != nil {
			return decimal.Decimal{}, errors.Wrap(errors.InternalError, err, "series term")
		}
		element, err = num.Quo(den)
		if err != nil {
			return decimal.Decimal{}, errors.Wrap(errors.InternalError, err, "series term")
		}
		sum, err = sum.Add(element)
		if err != nil {
			return decimal.Decimal{}, errors.Wrap(errors.InternalError, err, "series sum")
		}
	}
	return sum, nil
}

func EQ(a, b decimal.Decimal) bool {
	return a.Cmp(b) == 0
}

func GT(a, b decimal.Decimal) bool {
	return a.Cmp(b) > 0
}

func LT(a, b decimal.Decimal) bool {
	return a.Cmp(b) < 0
}
