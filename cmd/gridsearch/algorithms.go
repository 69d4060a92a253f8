package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/search"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the search algorithms",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, alg := range search.Algorithms() {
				fmt.Fprintln(cmd.OutOrStdout(), alg)
			}
		},
	}
}
