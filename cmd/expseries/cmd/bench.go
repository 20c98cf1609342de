package cmd

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/dora-network/exp-series/bench"
	"github.com/dora-network/exp-series/errors"
	"github.com/dora-network/exp-series/logger"
)

var (
	benchIterations int
	benchOrder      int
	benchPoint      float64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the series evaluator in a tight loop",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchIterations, "iterations", 1_000_000, "number of evaluations")
	benchCmd.Flags().IntVar(&benchOrder, "order", 10, "truncation order")
	benchCmd.Flags().Float64Var(&benchPoint, "point", 1.0, "evaluation point")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	runner, err := bench.New(
		bench.WithIterations(benchIterations),
		bench.WithOrder(benchOrder),
		bench.WithPoint(benchPoint),
		bench.WithLogger(*logger.Global()),
	)
	if err != nil {
		return err
	}

	res, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOut {
		out, err := json.Marshal(res)
		if err != nil {
			return errors.Wrap(errors.InternalError, err, "marshal result")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "iterations=%d order=%d point=%g elapsed=%s ns/op=%.1f value=%.14f\n",
		res.Iterations, res.Order, res.Point, res.Elapsed, res.NsPerOp, res.Value)
	return nil
}
