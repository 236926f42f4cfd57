package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/absence-report/internal/domain/contract"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App is what the sub-commands run against
type App struct {
	Reports contract.ReportService
	Logger  *zap.Logger
}

// GlobalFlags are the persistent flags shared by every sub-command. Empty
// values fall back to the environment configuration.
type GlobalFlags struct {
	Schedule     string
	Leaves       string
	Appointments string
	Database     string
	Verbose      bool
}

// Setup builds the App once the flags are parsed. The returned func releases
// whatever Setup opened.
type Setup func(ctx context.Context, flags GlobalFlags) (*App, func(), error)

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
}

type commandContextKey struct{}

// NewRootCmd builds the command tree. The returned func must be called once
// the command has finished.
func NewRootCmd(setup Setup) (*cobra.Command, func()) {
	var (
		flags   GlobalFlags
		app     *App
		cleanup func()
	)

	getApp := func() *App { return app }

	rootCmd := &cobra.Command{
		Use:   "absence-report",
		Short: "Absence report - cancelled sessions caused by professional leaves",
		Long: `absence-report estimates how many scheduled sessions each leave of absence
cancels, using the weekly schedule of every professional.

Sources can be published Google Sheets CSV links, XLSX links or local files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			app, cleanup, err = setup(cmd.Context(), flags)
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}

			info := commandContext{
				correlationID: uuid.New(),
				startedAt:     time.Now(),
			}
			cmd.SetContext(context.WithValue(cmd.Context(), commandContextKey{}, info))
			app.Logger.Debug("command start",
				zap.String("command", cmd.CommandPath()),
				zap.String("correlation_id", info.correlationID.String()),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
			if !ok || app == nil {
				return
			}
			app.Logger.Debug("command end",
				zap.String("command", cmd.CommandPath()),
				zap.String("correlation_id", info.correlationID.String()),
				zap.Int64("duration_ms", time.Since(info.startedAt).Milliseconds()),
			)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.Schedule, "schedule", "", "schedule source (URL or file)")
	rootCmd.PersistentFlags().StringVar(&flags.Leaves, "leaves", "", "leave source (URL or file)")
	rootCmd.PersistentFlags().StringVar(&flags.Appointments, "appointments", "", "appointments source for pivots (URL or file)")
	rootCmd.PersistentFlags().StringVar(&flags.Database, "db", "", "SQLite database path for the source cache and run history")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newImpactCmd(getApp),
		newPivotCmd(getApp),
		newScheduleCmd(getApp),
		newRunsCmd(getApp),
	)

	return rootCmd, func() {
		if cleanup != nil {
			cleanup()
		}
	}
}
