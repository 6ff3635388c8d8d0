package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"benchpress/internal/config"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved benchmark runs",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
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
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved runs.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tWORKLOAD\tCOMMIT\tROWS")
	for _, run := range runs {
		commit := run.Commit
		if commit == "" {
			commit = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			run.Timestamp.Format("2006-01-02 15:04:05"), run.Workload, commit, len(run.Records))
	}
	return w.Flush()
}
