// lvsearch runs state-space search strategies on problems described in YAML.
//
// Usage:
//
//	lvsearch run -f problem.yaml -s AS [--depth N] [--width W] [--seed N] [--trace]
//	lvsearch run -f problem.yaml --all --width 2
//	lvsearch strategies
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "lvsearch",
	Short: "Run uninformed, heuristic and optimal search on graph and maze problems",
	Long: "lvsearch loads a graph or maze problem from a YAML file and searches it\n" +
		"with one of DFS, BFS, NDS, IDS, HC, GS, BS, UC, OUC, BBUC, EEUC or A*.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
