package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"benchpress/internal/bench"
	"benchpress/internal/config"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "benchpress",
	Short: "benchpress: compare the speed and allocation of Go operations",
	Long: `benchpress is a micro-benchmark harness. It times named candidate
operations under a cumulative time budget, excludes iterations skewed by
garbage collection, checks that all candidates produce equal outputs,
and can sweep a parameter grid to compare candidates across sizes.`,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'benchpress --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.benchpress.yaml)")
}

func initConfig() {
	config.Load(cfgFile)
}

// resolveOptions merges config defaults with per-command flag overrides.
// A flag only wins when the user set it explicitly.
func resolveOptions(flags *pflag.FlagSet, minTime time.Duration, maxIter int, noEquivalence bool) bench.Options {
	settings := config.Resolve()
	opts := bench.Options{
		MinTime:          settings.MinTime,
		MaxIterations:    settings.MaxIterations,
		CheckEquivalence: settings.CheckEquivalence,
	}
	if flags.Changed("min-time") {
		opts.MinTime = minTime
	}
	if flags.Changed("max-iterations") {
		opts.MaxIterations = maxIter
	}
	if noEquivalence {
		opts.CheckEquivalence = false
	}
	return opts
}
