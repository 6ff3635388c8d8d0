package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"benchpress/internal/bench"
	"benchpress/internal/config"
	"benchpress/internal/metrics"
	"benchpress/internal/report"
	"benchpress/internal/store"
	"benchpress/internal/sweep"
	"benchpress/internal/ui"
	"benchpress/internal/workload"
)

var (
	sweepParams        []string
	sweepMinTime       time.Duration
	sweepMaxIterations int
	sweepNoEquivalence bool
	sweepPlot          string
	sweepSave          bool
	sweepMarkdown      bool
	sweepNoTUI         bool
	sweepMetrics       bool
)

var sweepCmd = &cobra.Command{
	Use:   "sweep <workload>",
	Short: "Benchmark a workload across a parameter grid",
	Long: `Runs a workload's candidates once per combination of the given
parameter values and concatenates the per-combination summaries into one
table. Parameters are given as --param name=v1,v2,... and combinations
are enumerated row-major, last parameter fastest. Without --param the
workload's default grid is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
	sweepCmd.Flags().StringArrayVar(&sweepParams, "param", nil, "parameter grid, e.g. --param n=1000,10000")
	sweepCmd.Flags().DurationVar(&sweepMinTime, "min-time", 0, "cumulative time budget per candidate (overrides config)")
	sweepCmd.Flags().IntVar(&sweepMaxIterations, "max-iterations", 0, "hard cap on iterations per candidate (overrides config)")
	sweepCmd.Flags().BoolVar(&sweepNoEquivalence, "no-equivalence", false, "skip the output equivalence check")
	sweepCmd.Flags().StringVar(&sweepPlot, "plot", "", "render sample distribution per grid point")
	sweepCmd.Flags().BoolVar(&sweepSave, "save", false, "save results to history")
	sweepCmd.Flags().BoolVar(&sweepMarkdown, "markdown", false, "print a rendered markdown report")
	sweepCmd.Flags().BoolVar(&sweepNoTUI, "no-tui", false, "disable the live progress view")
	sweepCmd.Flags().BoolVar(&sweepMetrics, "metrics", false, "serve prometheus metrics during the sweep")
}

// parseParamValue keeps ints as ints so workloads can read sizes
// without string conversion.
func parseParamValue(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func parseGrid(params []string) (*sweep.Grid, error) {
	grid := sweep.NewGrid()
	for _, p := range params {
		name, list, ok := strings.Cut(p, "=")
		if !ok || name == "" || list == "" {
			return nil, fmt.Errorf("invalid --param %q, expected name=v1,v2,...", p)
		}
		var values []any
		for _, raw := range strings.Split(list, ",") {
			values = append(values, parseParamValue(strings.TrimSpace(raw)))
		}
		grid.Add(name, values...)
	}
	return grid, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	w, err := workload.Lookup(args[0])
	if err != nil {
		return err
	}

	grid := w.DefaultGrid()
	if len(sweepParams) > 0 {
		grid, err = parseGrid(sweepParams)
		if err != nil {
			return err
		}
	}

	opts := resolveOptions(cmd.Flags(), sweepMinTime, sweepMaxIterations, sweepNoEquivalence)
	builder := func(p sweep.Point) ([]bench.Candidate, bench.Options) {
		return w.Build(p), opts
	}

	var m *metrics.Metrics
	if sweepMetrics {
		m = metrics.New()
		m.GridPointsTotal.Set(float64(grid.Size()))
		if err := m.Serve(config.Resolve().MetricsPort); err != nil {
			return err
		}
	}

	var result *sweep.SweepResult
	if !sweepNoTUI && isatty.IsTerminal(os.Stdout.Fd()) {
		result, err = pressWithTUI(grid, builder, m)
	} else {
		result, err = pressPlain(cmd, grid, builder, m)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	if sweepMarkdown {
		fmt.Fprint(cmd.OutOrStdout(), report.RenderMarkdown(report.Markdown(result)))
	} else {
		report.WriteSweepTable(cmd.OutOrStdout(), result)
	}

	if sweepPlot != "" {
		layout, err := report.ParseLayout(sweepPlot)
		if err != nil {
			return err
		}
		if err := plotSweep(cmd, result, layout); err != nil {
			return err
		}
	}

	if sweepSave {
		if err := saveRun(w.Name, store.FlattenSweep(result)); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nResults saved.")
	}

	return nil
}

func pressPlain(cmd *cobra.Command, grid *sweep.Grid, builder sweep.Builder, m *metrics.Metrics) (*sweep.SweepResult, error) {
	onPoint := func(index, total int, p sweep.Point) {
		fmt.Fprintf(cmd.OutOrStdout(), "[%d/%d] %s\n", index+1, total, p.Label())
		if m != nil {
			m.GridPointIndex.Set(float64(index))
		}
	}
	return sweep.PressWithProgress(grid, builder, onPoint, metricsIterFunc(m))
}

func pressWithTUI(grid *sweep.Grid, builder sweep.Builder, m *metrics.Metrics) (*sweep.SweepResult, error) {
	events := make(chan tea.Msg, 256)
	prog := tea.NewProgram(ui.NewSweepModel(events))

	type outcome struct {
		result *sweep.SweepResult
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		onPoint := func(index, total int, p sweep.Point) {
			// Non-blocking: the sweep keeps running even if the view
			// was detached.
			select {
			case events <- ui.PointMsg{Index: index, Total: total, Label: p.Label()}:
			default:
			}
			if m != nil {
				m.GridPointIndex.Set(float64(index))
			}
		}
		iterMetrics := metricsIterFunc(m)
		onIter := func(candidate string, iteration int, sample bench.Sample) {
			// Non-blocking send keeps the timing loop independent of
			// the renderer.
			select {
			case events <- ui.IterMsg{Candidate: candidate, Iteration: iteration, GCHit: sample.GCHit}:
			default:
			}
			if iterMetrics != nil {
				iterMetrics(candidate, iteration, sample)
			}
		}
		result, err := sweep.PressWithProgress(grid, builder, onPoint, onIter)
		select {
		case events <- ui.DoneMsg{Err: err}:
		default:
			// View already detached or backed up; stop it directly.
			prog.Quit()
		}
		done <- outcome{result: result, err: err}
	}()

	if _, err := prog.Run(); err != nil {
		return nil, err
	}
	o := <-done
	return o.result, o.err
}

func metricsIterFunc(m *metrics.Metrics) bench.ProgressFunc {
	if m == nil {
		return nil
	}
	return func(candidate string, iteration int, sample bench.Sample) {
		m.ObserveIteration(candidate, sample.Elapsed, sample.GCHit)
	}
}

func plotSweep(cmd *cobra.Command, result *sweep.SweepResult, layout report.Layout) error {
	width := config.Resolve().PlotWidth
	// One chart per grid point so candidates within a point share an axis.
	byPoint := make(map[string][]int)
	var order []string
	for i, row := range result.Rows {
		label := row.Point.Label()
		if _, seen := byPoint[label]; !seen {
			order = append(order, label)
		}
		byPoint[label] = append(byPoint[label], i)
	}
	for _, label := range order {
		var results []bench.Result
		for _, i := range byPoint[label] {
			results = append(results, result.Rows[i].Result)
		}
		chart, err := report.Plot(results, layout, width)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n%s\n", label, chart)
	}
	return nil
}
