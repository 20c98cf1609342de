package main

import (
	"os"

	"github.com/dora-network/exp-series/cmd/expseries/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
