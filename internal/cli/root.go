package cli

import (
	"context"
	"log/slog"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/logging"
	"cpu-scheduler/internal/store"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg    *config.SchedulerConfig
	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the scheduler binary.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpu-scheduler",
		Short: "Single processor cpu scheduling simulator",
		Long:  "cpu-scheduler computes gantt charts and statistics for fcfs, sjf, priority, round robin and srtf.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagConfig != "" {
				loaded, err := config.Load(flagConfig)
				if err != nil {
					return err
				}
				cfg = loaded
			} else {
				cfg = config.GetSchedulerConfig()
			}

			level, format := cfg.LogLevel, cfg.LogFormat
			if cmd.Flags().Changed("log-level") {
				level = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				format = flagLogFormat
			}
			if flagDebug {
				level = "debug"
			}
			created, err := logging.New(logging.Options{Level: level, Format: format, Writer: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			logger = created
			slog.SetDefault(logger)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (default ./config.yaml)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newServeCmd(),
		newRunCmd(),
		newHistoryCmd(),
	)

	return root
}

func openStore(ctx context.Context, path string) (*store.SQLiteStore, error) {
	st, err := store.NewSQLiteStore(path, logger)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	logger.Debug("database ready", "path", path)
	return st, nil
}
