package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/internal/problemfile"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/space"
)

var runFlags struct {
	file      string
	strategy  string
	all       bool
	depth     int
	width     int
	seed      uint64
	trace     bool
	logLevel  string
	logFormat string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Search a problem file with one or all strategies",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVarP(&runFlags.file, "file", "f", "", "Problem YAML file (required)")
	f.StringVarP(&runFlags.strategy, "strategy", "s", "AS", "Strategy abbreviation or name")
	f.BoolVar(&runFlags.all, "all", false, "Run every strategy in turn")
	f.IntVar(&runFlags.depth, "depth", -1, "Depth limit in states (-1 = unbounded)")
	f.IntVar(&runFlags.width, "width", 0, "Beam width for BS (required for BS)")
	f.Uint64Var(&runFlags.seed, "seed", 0, "Seed for NDS (0 = random)")
	f.BoolVar(&runFlags.trace, "trace", false, "Print the queue at every iteration")
	f.StringVar(&runFlags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	f.StringVar(&runFlags.logFormat, "log-format", "text", "Log format: text or json")

	_ = runCmd.MarkFlagRequired("file")
}

func runRun(cmd *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(runFlags.logLevel)
	if err != nil {
		return err
	}
	logger := logging.New(level, runFlags.logFormat, cmd.ErrOrStderr()).
		With(slog.String("run_id", uuid.NewString()))

	prob, err := problemfile.Load(runFlags.file)
	if err != nil {
		return err
	}
	logger.Info("problem loaded", slog.String("file", runFlags.file), slog.String("kind", string(prob.Kind)))

	strategies := search.Strategies()
	if !runFlags.all {
		s, err := search.ParseStrategy(runFlags.strategy)
		if err != nil {
			return err
		}
		strategies = []search.Strategy{s}
	}

	out := cmd.OutOrStdout()
	for _, s := range strategies {
		if err := runOne(out, logger, prob, s); err != nil {
			return fmt.Errorf("%s: %w", s.Abbrev(), err)
		}
	}

	return nil
}

// runOne searches prob with s and prints the report.
func runOne(out io.Writer, logger *slog.Logger, prob *problemfile.Problem, s search.Strategy) error {
	opts := []search.Option{search.WithLogger(logger)}
	if runFlags.depth >= 0 {
		opts = append(opts, search.WithDepthLimit(runFlags.depth))
	}
	if s == search.BS {
		opts = append(opts, search.WithBeamWidth(runFlags.width))
	}
	if runFlags.seed != 0 {
		opts = append(opts, search.WithSeed(runFlags.seed))
	}
	if runFlags.trace {
		opts = append(opts, search.WithTrace(traceWriter(out, prob)))
	}

	res, err := search.Run(prob, s, opts...)
	if err != nil {
		return err
	}
	if s == search.IDS {
		fmt.Fprintf(out, "Final depth limit: %d\n", res.DepthLimit)
	}
	fmt.Fprint(out, res.Summary())
	if res.Found {
		fmt.Fprintf(out, "Path (cost %g):\n%s\n", res.Path.Cost(), prob.Format(res.Path))
	}
	fmt.Fprintln(out)

	return nil
}

// traceWriter prints every step the way the queue trace is laid out:
// removed path, new paths, and the queue after the update.
func traceWriter(out io.Writer, prob *problemfile.Problem) func(search.Step) {
	return func(st search.Step) {
		if st.Iteration == 0 {
			if st.DepthLimit >= 0 {
				fmt.Fprintf(out, "--> DEPTH: %d\n", st.DepthLimit)
			}
			fmt.Fprintf(out, "Initial queue:\n%s\n\n", label(prob, st.Frontier))
			return
		}
		fmt.Fprintf(out, "Iteration %d\n", st.Iteration)
		fmt.Fprintf(out, "Path removed from queue:\n%s\n", label(prob, st.Removed))
		fmt.Fprintf(out, "New paths:\n%s\n", label(prob, st.NewPaths))
		fmt.Fprintf(out, "Paths in queue:\n%s\n\n", label(prob, st.Frontier))
	}
}

// label renders a list of paths on one line.
func label(prob *problemfile.Problem, ps []space.Path) string {
	s := "["
	for i, p := range ps {
		if i > 0 {
			s += ","
		}
		if prob.Kind == problemfile.KindGraph {
			s += prob.Format(p)
		} else {
			s += p.String()
		}
	}

	return s + "]"
}
