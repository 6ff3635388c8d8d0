package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"benchpress/internal/config"
	"benchpress/internal/store"
)

var compareThreshold float64

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the two most recent saved runs",
	Long: `Matches the rows of the latest run against the run before it and
reports the percentage change of the median elapsed time and allocated
bytes. Changes beyond the threshold are flagged as regressions or
improvements.`,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().Float64Var(&compareThreshold, "threshold", 10.0, "percentage threshold for regression warning")
}

func runCompare(cmd *cobra.Command, args []string) error {
	settings := config.Resolve()
	st, err := newStoreFunc(settings.StoreBackend, settings.StorePath)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.LoadAll()
	if err != nil {
		return err
	}
	if len(runs) < 2 {
		return fmt.Errorf("need at least two saved runs to compare, have %d", len(runs))
	}

	prev, curr := runs[len(runs)-2], runs[len(runs)-1]
	comparisons := store.Compare(prev, curr)
	if len(comparisons) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No comparable rows between the last two runs.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ROW\tMEDIAN\tDIFF %\tALLOC DIFF %\tSTATUS")
	for _, c := range comparisons {
		status := "PASS"
		if c.MedianDiff > compareThreshold {
			status = "REGRESSION"
		} else if c.MedianDiff < -compareThreshold {
			status = "IMPROVED"
		}
		fmt.Fprintf(w, "%s\t%s\t%+.2f%%\t%+.2f%%\t%s\n",
			c.Key, c.Curr.Median, c.MedianDiff, c.AllocDiff, status)
	}
	return w.Flush()
}
