package main

import (
	"fmt"
	"os"

	"github.com/Manan23-dev/sago-founder-reengagement-agent/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
