package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/dora-network/exp-series/errors"
	"github.com/dora-network/exp-series/series"
)

var evalCmd = &cobra.Command{
	Use:   "eval <nmax> <x>...",
	Short: "Evaluate the truncated series at one or more points",
	Long: `Evaluate the partial sum of x^n/n! for n = 0..nmax at each point x.

For every point one row is printed: the point, the approximation, and the
signed difference from the host math library's exp.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

type evalRow struct {
	X      float64 `json:"x"`
	Approx float64 `json:"approx"`
	Diff   float64 `json:"diff"`
}

func runEval(cmd *cobra.Command, args []string) error {
	nmax, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Newf(errors.InvalidInputError, "%q: %w", args[0], errors.ErrInvalidOrder)
	}
	if len(args) < 2 {
		return errors.ErrNoPoints
	}

	rows := make([]evalRow, 0, len(args)-1)
	for _, arg := range args[1:] {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return errors.Newf(errors.InvalidInputError, "%q: %w", arg, errors.ErrNotANumber)
		}
		approx, err := series.SumExp(nmax, x)
		if err != nil {
			return err
		}
		rows = append(rows, evalRow{X: x, Approx: approx, Diff: approx - math.Exp(x)})
	}

	if jsonOut {
		out, err := json.Marshal(rows)
		if err != nil {
			return errors.Wrap(errors.InternalError, err, "marshal rows")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	for _, row := range rows {
		fmt.Fprintf(cmd.OutOrStdout(), "%14.6f %22.14e %14.6e\n", row.X, row.Approx, row.Diff)
	}
	return nil
}
