package cmd

import (
	"github.com/spf13/cobra"
)

var jsonOut bool

var rootCmd = &cobra.Command{
	Use:   "expseries",
	Short: "Truncated Taylor-series evaluation of e^x",
	Long: `expseries evaluates e^x by summing the first nmax+1 terms of the
Taylor series, using the term recurrence element *= x/n.

Commands:
  eval   - evaluate the partial sum at one or more points
  bench  - time the evaluator in a tight loop`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit JSON instead of text")
}
