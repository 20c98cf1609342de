package series

import (
	"math/big"

	"github.com/dora-network/exp-series/errors"
)

// SumExpBig evaluates the same truncated series as SumExp over big.Float,
// at the precision of x (at least 53 bits). At high precision the result
// isolates the truncation error of the partial sum from the rounding and
// cancellation error of float64 arithmetic.
func SumExpBig(nmax int, x *big.Float) (*big.Float, error) {
	if nmax < 0 {
		return nil, errors.ErrNegativeOrder
	}
	prec := x.Prec()
	if prec < 53 {
		prec = 53
	}
	sum := big.NewFloat(1).SetPrec(prec)
	element := big.NewFloat(1).SetPrec(prec)
	den := new(big.Float).SetPrec(prec)
	for n := 1; n <= nmax; n++ {
		element.Mul(element, x)
		element.Quo(element, den.SetInt64(int64(n)))
		sum.Add(sum, element)
	}
	return sum, nil
}
