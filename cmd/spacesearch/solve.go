package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spacesearch/internal/config"
	"github.com/katalvlaran/spacesearch/internal/logging"
	"github.com/katalvlaran/spacesearch/internal/solve"
	"github.com/katalvlaran/spacesearch/metrics"
	"github.com/katalvlaran/spacesearch/search"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a maze",
		Long: `Solve reads a maze from --maze-file or the "maze" key of --config and prints
each solution found. Flags override values from the config file.

Maze cells: '#' wall, '.' cost 1, '1'-'9' that cost, 'S' start, 'G' goal.`,
		Args: cobra.NoArgs,
		RunE: runSolve,
	}

	f := cmd.Flags()
	f.StringP("config", "c", "", "YAML run description")
	f.StringP("maze-file", "m", "", "Maze text file, one row per line")
	f.StringP("strategy", "s", config.AStar, "Strategy: bfs, dfs, guided or astar")
	f.Bool("route", true, "Report full routes instead of end points")
	f.Bool("hashable", true, "Skip states that were already seen")
	f.Int("conn", 4, "Grid connectivity: 4 or 8")
	f.Int("max-expansions", 0, "Stop after this many expansions (0 = unlimited)")
	f.IntP("solutions", "n", 1, "Number of solutions to report")
	f.Bool("metrics", false, "Print a metrics summary after the run")

	return cmd
}

func runSolve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.NewWriter(cmd.ErrOrStderr(), level)

	req, err := solve.FromConfig(cfg)
	if err != nil {
		return err
	}
	req.Logger = logger
	req.Options = append(req.Options,
		search.WithContext(cmd.Context()),
		search.WithLogger(logger),
	)

	label := solve.Label(cfg.Strategy, cfg.Route, cfg.Hashable)
	var (
		reg       *prometheus.Registry
		collector *metrics.Collector
	)
	if withMetrics, _ := cmd.Flags().GetBool("metrics"); withMetrics {
		reg = prometheus.NewRegistry()
		if collector, err = metrics.NewCollector(reg); err != nil {
			return err
		}
		req.Options = append(req.Options, search.WithHook(collector.Hook(label)))
	}

	rep, err := solve.Run(req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printReport(out, req, rep)

	if collector != nil {
		for _, sol := range rep.Solutions {
			if cfg.Route {
				collector.ObservePath(label, len(sol.Path))
			}
			if sol.HasCost {
				collector.SetCost(label, float64(sol.Cost))
			}
		}
		samples, err := metrics.Snapshot(reg)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "metrics:")
		for _, smp := range samples {
			fmt.Fprintln(out, " ", smp)
		}
	}

	return nil
}

// loadConfig layers defaults, the config file, the maze file and changed flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()
	cfg := config.Default()
	if path, _ := f.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if path, _ := f.GetString("maze-file"); path != "" {
		rows, err := config.LoadMaze(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Maze = rows
	}

	if f.Changed("strategy") {
		cfg.Strategy, _ = f.GetString("strategy")
	}
	if f.Changed("route") {
		cfg.Route, _ = f.GetBool("route")
	}
	if f.Changed("hashable") {
		cfg.Hashable, _ = f.GetBool("hashable")
	}
	if f.Changed("conn") {
		cfg.Connectivity, _ = f.GetInt("conn")
	}
	if f.Changed("max-expansions") {
		cfg.MaxExpansions, _ = f.GetInt("max-expansions")
	}
	if f.Changed("solutions") {
		cfg.Solutions, _ = f.GetInt("solutions")
	}
	if f.Changed("log-level") {
		cfg.LogLevel, _ = f.GetString("log-level")
	}

	return cfg, nil
}

func printReport(w io.Writer, req solve.Request, rep *solve.Report) {
	fmt.Fprintf(w, "manager: %s\n", rep.Label)
	for i, sol := range rep.Solutions {
		if req.Route {
			fmt.Fprintf(w, "solution %d: %d steps", i+1, len(sol.Path)-1)
		} else {
			fmt.Fprintf(w, "solution %d: at %v", i+1, sol.Path[0])
		}
		if sol.HasCost {
			fmt.Fprintf(w, ", cost %d", sol.Cost)
		}
		fmt.Fprintln(w)
		if req.Route {
			for _, row := range req.Grid.Render(sol.Path) {
				fmt.Fprintln(w, "  "+row)
			}
		}
	}
	if len(rep.Solutions) == 0 {
		fmt.Fprintln(w, "no solution")
	}

	st := rep.Stats
	fmt.Fprintf(w, "status: %s\n", rep.Status)
	fmt.Fprintf(w, "stats: popped=%d expanded=%d generated=%d admitted=%d rejected=%d\n",
		st.Popped, st.Expanded, st.Generated, st.Admitted, st.Rejected)
	if rep.Err != nil {
		fmt.Fprintf(w, "stopped: %v\n", rep.Err)
	}
}
