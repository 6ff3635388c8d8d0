package main

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"benchpress/internal/bench"
	"benchpress/internal/config"
	"benchpress/internal/report"
	"benchpress/internal/store"
	"benchpress/internal/workload"
)

var (
	runMinTime       time.Duration
	runMaxIterations int
	runNoEquivalence bool
	runPlot          string
	runSave          bool
	runMarkdown      bool
)

// newStoreFunc allows mocking in tests.
var newStoreFunc = func(backend, path string) (store.Store, error) {
	return store.Open(backend, path)
}

// runExecCommand allows mocking the git lookup in tests.
var runExecCommand = exec.Command

var runCmd = &cobra.Command{
	Use:   "run <workload>",
	Short: "Benchmark one built-in workload at its default size",
	Long: `Runs every candidate of a built-in workload through the measurement
loop and prints a summary table. Available workloads:

` + workloadHelp(),
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().DurationVar(&runMinTime, "min-time", 0, "cumulative time budget per candidate (overrides config)")
	runCmd.Flags().IntVar(&runMaxIterations, "max-iterations", 0, "hard cap on iterations per candidate (overrides config)")
	runCmd.Flags().BoolVar(&runNoEquivalence, "no-equivalence", false, "skip the output equivalence check")
	runCmd.Flags().StringVar(&runPlot, "plot", "", "render sample distribution (beeswarm, jitter, ridge, boxplot, violin)")
	runCmd.Flags().BoolVar(&runSave, "save", false, "save results to history")
	runCmd.Flags().BoolVar(&runMarkdown, "markdown", false, "print a rendered markdown report")
}

func workloadHelp() string {
	var b strings.Builder
	for _, name := range workload.Names() {
		w, _ := workload.Lookup(name)
		fmt.Fprintf(&b, "  %-8s %s\n", w.Name, w.Description)
	}
	return b.String()
}

func runRun(cmd *cobra.Command, args []string) error {
	w, err := workload.Lookup(args[0])
	if err != nil {
		return err
	}

	// A plain run uses the first point of the workload's default grid.
	points := w.DefaultGrid().Points()
	point := points[0]
	candidates := w.Build(point)
	opts := resolveOptions(cmd.Flags(), runMinTime, runMaxIterations, runNoEquivalence)

	fmt.Fprintf(cmd.OutOrStdout(), "Running %s (%s), min_time=%s max_iterations=%d\n\n",
		w.Name, point.Label(), opts.MinTime, opts.MaxIterations)

	results, err := bench.Mark(candidates, opts)
	if err != nil {
		return err
	}

	if runMarkdown {
		fmt.Fprint(cmd.OutOrStdout(), report.RenderMarkdown(report.MarkdownResults(results)))
	} else {
		report.WriteTable(cmd.OutOrStdout(), results)
	}

	if runPlot != "" {
		layout, err := report.ParseLayout(runPlot)
		if err != nil {
			return err
		}
		chart, err := report.Plot(results, layout, config.Resolve().PlotWidth)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", chart)
	}

	if runSave {
		if err := saveRun(w.Name, store.FlattenResults(results)); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nResults saved.")
	}

	return nil
}

func saveRun(workloadName string, records []store.Record) error {
	settings := config.Resolve()
	st, err := newStoreFunc(settings.StoreBackend, settings.StorePath)
	if err != nil {
		return err
	}
	defer st.Close()

	run := store.Run{
		Timestamp: time.Now(),
		Workload:  workloadName,
		Records:   records,
	}
	if commit, err := gitCommit(); err == nil {
		run.Commit = commit
	}
	return st.Save(run)
}

func gitCommit() (string, error) {
	cmd := runExecCommand("git", "rev-parse", "--short", "HEAD")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
