// Command gridsearch runs the grid search strategies from a terminal or
// serves them over HTTP.
//
//	gridsearch algorithms
//	gridsearch scenarios [--dir maps/]
//	gridsearch run --algorithm IDDFS --scenario demo --animate
//	gridsearch serve --addr :8080
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
