package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/search"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the available search strategies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		for _, s := range search.Strategies() {
			var notes string
			switch {
			case s == search.BS:
				notes = " (needs --width)"
			case s.Optimal():
				notes = " (optimal)"
			}
			fmt.Fprintf(out, "%-5s %s%s\n", s.Abbrev(), s, notes)
		}
		return nil
	},
}
