package main

import (
	"fmt"
	"os"

	"odgrip/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "odgrip: %v\n", err)
		os.Exit(1)
	}
}
