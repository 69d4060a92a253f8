package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newScenariosCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List the available scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSIZE\tDESCRIPTION")
			for _, name := range cat.Names() {
				sc, err := cat.Get(name)
				if err != nil {
					return err
				}
				size := "invalid"
				if g, err := sc.Build(); err == nil {
					size = fmt.Sprintf("%dx%d", g.Rows(), g.Cols())
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", sc.Name, size, sc.Description)
			}

			return tw.Flush()
		},
	}
}
