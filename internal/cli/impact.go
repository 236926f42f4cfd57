package cli

import (
	"fmt"
	"time"

	"github.com/diegoclair/absence-report/internal/domain"
	"github.com/diegoclair/absence-report/internal/report"
	"github.com/spf13/cobra"
)

func newImpactCmd(getApp func() *App) *cobra.Command {
	var (
		from          string
		to            string
		departments   []string
		services      []string
		reasons       []string
		professionals []string
		groupBy       string
		top           int
		detail        bool
		out           outputFlags
	)

	cmd := &cobra.Command{
		Use:   "impact",
		Short: "Count the sessions cancelled by each leave",
		Long: `Count the sessions cancelled by each leave and group the totals.

Professionals missing from the schedule are counted by calendar days.

Examples:
  absence-report impact --from 01/03/2024 --to 31/03/2024
  absence-report impact --group-by service --top 5
  absence-report impact --professional "PEREZ, ANA" --detail
  absence-report impact --detail --format xlsx --output ausencias.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}

			fromDate, err := parseFlagDate("from", from)
			if err != nil {
				return err
			}
			toDate, err := parseFlagDate("to", to)
			if err != nil {
				return err
			}
			group, err := report.ParseGroupBy(groupBy)
			if err != nil {
				return err
			}

			opts := report.NewOptions(
				report.WithWindow(fromDate, toDate),
				report.WithDepartments(departments...),
				report.WithServices(services...),
				report.WithReasons(reasons...),
				report.WithProfessionals(professionals...),
				report.WithGroupBy(group),
				report.WithTop(top),
			)

			result, err := getApp().Reports.Impact(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("failed to build impact report: %w", err)
			}

			header, rows := result.Table()
			if detail {
				header, rows = result.Detail()
			}
			if err := out.write(cmd, header, rows, result); err != nil {
				return err
			}

			if out.format == formatTable {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d leaves, %d cancelled sessions (%d by calendar days, %d invalid, %d without dates)\n",
					result.Total.Records, result.Total.CancelledSessions,
					result.FallbackRecords, result.InvalidRecords, result.SkippedRecords)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first day of the window (DD/MM/YYYY or YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last day of the window (DD/MM/YYYY or YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&departments, "department", nil, "keep only this department (repeatable)")
	cmd.Flags().StringArrayVar(&services, "service", nil, "keep only this service (repeatable)")
	cmd.Flags().StringArrayVar(&reasons, "reason", nil, "keep only this reason (repeatable)")
	cmd.Flags().StringArrayVar(&professionals, "professional", nil, "keep only this professional (repeatable)")
	cmd.Flags().StringVarP(&groupBy, "group-by", "g", string(report.GroupByDepartment), "group by department, service, reason, professional or month")
	cmd.Flags().IntVarP(&top, "top", "n", 0, "show only the n groups with most cancelled sessions (0 = all)")
	cmd.Flags().BoolVar(&detail, "detail", false, "one row per leave instead of grouped totals")
	out.register(cmd, "Ausencias")

	return cmd
}

func parseFlagDate(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	d, ok := domain.ParseDate(value)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid --%s date %q, use DD/MM/YYYY or YYYY-MM-DD", name, value)
	}
	return d, nil
}
