package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cpu-scheduler/api"
	"cpu-scheduler/internal/store"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		port    int
		noStore bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling api over http",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			var st store.Store
			if !noStore && cfg.StorePath != "" {
				sqlite, err := openStore(cmd.Context(), cfg.StorePath)
				if err != nil {
					return err
				}
				defer sqlite.Close()
				st = sqlite
			}

			app := api.NewRouter(api.NewSchedulerHandlerImpl(cfg, st, logger), logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				addr := fmt.Sprintf(":%d", cfg.Port)
				logger.Info("server starting", "addr", addr, "history", st != nil)
				errCh <- app.Listen(addr)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}
			logger.Info("shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := app.ShutdownWithContext(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 9095, "Listen port (overrides config)")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "Do not persist computed schedules")
	return cmd
}
