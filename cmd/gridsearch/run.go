package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/observer"
	"github.com/katalvlaran/gridsearch/render"
	"github.com/katalvlaran/gridsearch/scenario"
	"github.com/katalvlaran/gridsearch/search"
)

type runFlags struct {
	algorithm string
	scenario  string
	file      string
	maze      string
	seed      int64
	depth     int
	ceiling   int
	animate   bool
	noColor   bool
	trace     bool
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one algorithm on a scenario and draw the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return a.run(ctx, cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.algorithm, "algorithm", "a", "BFS", "BFS, DFS, UCS, DLS, IDDFS or Bidirectional")
	fl.StringVarP(&f.scenario, "scenario", "s", "demo", "Scenario name")
	fl.StringVarP(&f.file, "file", "f", "", "Scenario YAML file (overrides --scenario)")
	fl.StringVar(&f.maze, "maze", "", "Generate a ROWSxCOLS maze instead of loading a scenario")
	fl.Int64Var(&f.seed, "seed", 1, "Seed for --maze")
	fl.IntVar(&f.depth, "depth", -1, "DLS depth limit (default from scenario, else 15)")
	fl.IntVar(&f.ceiling, "ceiling", 0, "Largest IDDFS limit (default from scenario, else 49)")
	fl.BoolVar(&f.animate, "animate", false, "Redraw the grid after every event")
	fl.BoolVar(&f.noColor, "no-color", false, "Draw with glyphs only")
	fl.BoolVar(&f.trace, "trace", false, "Log every event at debug level")

	return cmd
}

func (a *app) loadScenario(f runFlags) (*scenario.Scenario, error) {
	if f.maze != "" {
		rows, cols, err := scenario.ParseSize(f.maze)
		if err != nil {
			return nil, err
		}
		return scenario.Maze(rows, cols, f.seed)
	}
	if f.file != "" {
		return scenario.Load(f.file)
	}
	cat, err := a.catalog()
	if err != nil {
		return nil, err
	}

	return cat.Get(f.scenario)
}

func (a *app) run(ctx context.Context, cmd *cobra.Command, f runFlags) error {
	alg, err := search.ParseAlgorithm(f.algorithm)
	if err != nil {
		return err
	}
	sc, err := a.loadScenario(f)
	if err != nil {
		return err
	}
	g, err := sc.Build()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var canvasOpts []render.Option
	if f.noColor {
		canvasOpts = append(canvasOpts, render.WithProfile(termenv.Ascii))
	}
	if f.animate {
		canvasOpts = append(canvasOpts, render.WithLive(true))
	}
	canvas := render.NewCanvas(g, out, canvasOpts...)

	var obs = observer.Join(canvas)
	if f.trace {
		obs = append(obs, observer.NewLogger(a.log))
	}
	var watcher search.Observer = obs
	if f.animate {
		watcher = observer.NewThrottle(obs,
			observer.WithDelays(a.cfg.Delay, a.cfg.FastDelay),
			observer.WithContext(ctx),
			observer.WithQuietCells(g.Start(), g.Goal()),
		)
	}

	opts := append(sc.SearchOptions(),
		search.WithContext(ctx),
		search.WithObserver(watcher),
		search.WithLogger(a.log),
	)
	if f.depth >= 0 {
		opts = append(opts, search.WithDepthLimit(f.depth))
	}
	if f.ceiling != 0 {
		opts = append(opts, search.WithMaxIterativeDepth(f.ceiling))
	}

	res, err := search.Run(alg, g, opts...)
	if err != nil {
		return err
	}
	if !f.animate {
		if err := canvas.Render(); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "%s on %s: %s", res.Algorithm, sc.Name, res.Status)
	if res.Found() {
		fmt.Fprintf(out, ", %d moves, cost %.1f", res.Edges(), res.Cost)
	}
	fmt.Fprintf(out, " (expanded %d, discovered %d", res.Expanded, res.Discovered)
	if alg == search.AlgIDDFS {
		fmt.Fprintf(out, ", passes %d", res.Iterations)
	}
	if alg == search.AlgDLS || alg == search.AlgIDDFS {
		fmt.Fprintf(out, ", limit %d", res.DepthLimit)
	}
	fmt.Fprintln(out, ")")

	return nil
}
