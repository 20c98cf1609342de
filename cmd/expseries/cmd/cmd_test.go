package cmd

import (
	"bytes"
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/dora-network/exp-series/bench"
	"github.com/dora-network/exp-series/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	jsonOut = false
	return buf.String(), err
}

func TestEval_Text(t *testing.T) {
	out, err := execute(t, "eval", "10", "1.0", "-3.0")
	require.NoError(t, err)
	require.Contains(t, out, "2.718281")
	require.Contains(t, out, "5.3325")
}

func TestEval_JSON(t *testing.T) {
	out, err := execute(t, "--json", "eval", "10", "1.0", "2.0")
	require.NoError(t, err)

	var rows []evalRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)

	require.Equal(t, 1.0, rows[0].X)
	require.InDelta(t, math.E, rows[0].Approx, 1e-7)
	require.InDelta(t, 0.0, rows[0].Diff, 1e-7)

	require.Equal(t, 2.0, rows[1].X)
	require.InDelta(t, math.Exp(2.0), rows[1].Approx, 1e-4)
}

func TestEval_Errors(t *testing.T) {
	tcs := []struct {
		title  string
		args   []string
		expErr error
	}{
		{
			"order is not an integer",
			[]string{"eval", "ten", "1.0"},
			errors.ErrInvalidOrder,
		},
		{
			"no evaluation points",
			[]string{"eval", "10"},
			errors.ErrNoPoints,
		},
		{
			"point is not a number",
			[]string{"eval", "10", "one"},
			errors.ErrNotANumber,
		},
		{
			"negative order",
			[]string{"eval", "-1", "1.0"},
			errors.ErrNegativeOrder,
		},
	}

	for _, tc := range tcs {
		t.Run(
			tc.title, func(t *testing.T) {
				_, err := execute(t, tc.args...)
				require.ErrorIs(t, err, tc.expErr)
				require.True(t, errors.Is(err, errors.InvalidInputError))
			},
		)
	}
}

func TestEval_ErrorsNameTheToken(t *testing.T) {
	_, err := execute(t, "eval", "ten", "1.0")
	require.ErrorIs(t, err, errors.ErrInvalidOrder)
	require.Contains(t, err.Error(), `"ten"`)

	_, err = execute(t, "eval", "10", "one")
	require.ErrorIs(t, err, errors.ErrNotANumber)
	require.Contains(t, err.Error(), `"one"`)
}

func TestBench_JSON(t *testing.T) {
	out, err := execute(t, "--json", "bench", "--iterations", "1000", "--order", "10", "--point", "1.0")
	require.NoError(t, err)

	var res bench.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, 1000, res.Iterations)
	require.Equal(t, 10, res.Order)
	require.InDelta(t, math.E, res.Value, 1e-7)
}
