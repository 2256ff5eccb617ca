package main

import (
	"fmt"
	"os"

	"github.com/pfrederiksen/hz19-events/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
