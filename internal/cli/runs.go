package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newRunsCmd(getApp func() *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List the most recent impact reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := getApp().Reports.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No report runs found.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					shortID(run.ID),
					run.GeneratedAt.Format(time.DateTime),
					strconv.Itoa(run.Records),
					strconv.Itoa(run.TotalCancelled),
					strconv.Itoa(run.FallbackRecords),
					run.Filters,
				})
			}
			return writeTable(cmd.OutOrStdout(), []string{"ID", "GENERATED", "RECORDS", "CANCELLED", "FALLBACK", "FILTERS"}, rows)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of runs to show")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
