// plotgrid: a coordinate-plane plotting and quiz trainer for the terminal.
//
// Run: go run ./cmd/plotgrid/
//
//	go run ./cmd/plotgrid/ snapshot --out grid.png --point 3,4
package main

import (
	"fmt"
	"os"

	"github.com/wesen/plotgrid/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
