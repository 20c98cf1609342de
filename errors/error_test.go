package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dora-network/exp-series/errors"
)

func TestTypedError(t *testing.T) {
	err := errors.New(errors.InvalidInputError, "bad input")
	require.EqualError(t, err, "bad input")
	require.True(t, errors.Is(err, errors.InvalidInputError))
	require.False(t, errors.Is(err, errors.InternalError))

	wrapped := errors.Wrap(errors.InternalError, err, "while validating")
	require.EqualError(t, wrapped, "while validating: bad input")
	require.True(t, errors.Is(wrapped, errors.InternalError))
	require.True(t, stderrors.Is(wrapped, err))
}

func TestNewf_WrapsSentinels(t *testing.T) {
	err := errors.Newf(errors.InvalidInputError, "%q: %w", "ten", errors.ErrInvalidOrder)
	require.ErrorIs(t, err, errors.ErrInvalidOrder)
	require.True(t, errors.Is(err, errors.InvalidInputError))
	require.Contains(t, err.Error(), `"ten"`)
}

func TestSentinels_AllInvalidInput(t *testing.T) {
	// Every malformed-argument condition at the call boundary shares one type.
	for _, err := range []error{
		errors.ErrNegativeOrder,
		errors.ErrNotANumber,
		errors.ErrInvalidOrder,
		errors.ErrNoPoints,
		errors.ErrIterationsMustBePositive,
	} {
		require.True(t, errors.Is(err, errors.InvalidInputError), "%v", err)
	}
}
