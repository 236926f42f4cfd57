package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/absence-report/internal/report"
	"github.com/spf13/cobra"
)

func newPivotCmd(getApp func() *App) *cobra.Command {
	var (
		periods    []string
		groupBy    []string
		metrics    []string
		comparison string
		dateColumn string
		list       bool
		out        outputFlags
	)

	cmd := &cobra.Command{
		Use:   "pivot",
		Short: "Sum appointment metrics grouped by text columns",
		Long: `Sum the numeric columns of the appointments dataset grouped by its text
columns, with a TOTAL margin row.

Examples:
  absence-report pivot --list
  absence-report pivot --group-by SERVICIO --metric AUSENTES
  absence-report pivot --period marzo --group-by SERVICIO --metric TURNOS
  absence-report pivot --period 01/01/2024 --period 01/02/2024 --group-by SERVICIO --metric TURNOS --comparison by_period`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				d, err := getApp().Reports.PivotDimensions(cmd.Context(), dateColumn)
				if err != nil {
					return fmt.Errorf("failed to read appointments: %w", err)
				}
				printDimensions(cmd, d)
				return nil
			}

			if err := out.validate(); err != nil {
				return err
			}
			mode, err := report.ParseComparison(comparison)
			if err != nil {
				return err
			}

			opts := report.PivotOptions{
				DateColumn: dateColumn,
				GroupBy:    groupBy,
				Metrics:    metrics,
				Comparison: mode,
			}
			for _, p := range periods {
				if err := opts.AddPeriod(p); err != nil {
					return fmt.Errorf("invalid --period: %w", err)
				}
			}

			result, err := getApp().Reports.Pivot(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("failed to build pivot: %w", err)
			}

			header, rows := result.Records()
			return out.write(cmd, header, rows, result)
		},
	}

	cmd.Flags().StringArrayVarP(&periods, "period", "p", nil, "keep only this date or month name (repeatable, default all)")
	cmd.Flags().StringArrayVarP(&groupBy, "group-by", "g", nil, "text column to group by (repeatable)")
	cmd.Flags().StringArrayVarP(&metrics, "metric", "m", nil, "numeric column to sum (repeatable)")
	cmd.Flags().StringVar(&comparison, "comparison", string(report.ComparisonNone), "none or by_period")
	cmd.Flags().StringVar(&dateColumn, "date-column", report.DefaultDateColumn, "period column of the dataset")
	cmd.Flags().BoolVar(&list, "list", false, "list periods, groupable columns and metrics")
	out.register(cmd, "Tabla dinámica")

	return cmd
}

func printDimensions(cmd *cobra.Command, d *report.Dimensions) {
	w := cmd.OutOrStdout()

	dates := make([]string, 0, len(d.Periods))
	for _, p := range d.Periods {
		dates = append(dates, p.Format(time.DateOnly))
	}

	fmt.Fprintf(w, "Periods (%s): %s\n", d.DateColumn, strings.Join(dates, ", "))
	fmt.Fprintf(w, "Group by: %s\n", strings.Join(d.GroupBy, ", "))
	fmt.Fprintf(w, "Metrics: %s\n", strings.Join(d.Metrics, ", "))
}
