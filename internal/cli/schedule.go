package cli

import (
	"fmt"
	"strings"

	"github.com/diegoclair/absence-report/internal/domain"
	"github.com/spf13/cobra"
)

func newScheduleCmd(getApp func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule NAME",
		Short: "Show the weekly sessions of a professional",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			weekdays, found, err := getApp().Reports.ProfessionalSchedule(cmd.Context(), name)
			if err != nil {
				return fmt.Errorf("failed to read schedule: %w", err)
			}

			w := cmd.OutOrStdout()
			if !found {
				fmt.Fprintf(w, "%s is not in the schedule; leaves are counted by calendar days.\n", domain.NormalizeKey(name))
				return nil
			}

			total := 0
			rows := make([][]string, 0, len(weekdays))
			for _, day := range domain.AllWeekdays {
				if n := weekdays[day]; n > 0 {
					total += n
					rows = append(rows, []string{domain.WeekdayLabels[day], fmt.Sprint(n)})
				}
			}

			fmt.Fprintf(w, "%s: %d weekly sessions\n\n", domain.NormalizeKey(name), total)
			return writeTable(w, []string{"DIA", "SESIONES"}, rows)
		},
	}
}
