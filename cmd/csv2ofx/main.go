package main

import (
	"fmt"
	"os"

	"github.com/cleared-dev/csv2ofx/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "csv2ofx: %v\n", err)
		os.Exit(1)
	}
}
