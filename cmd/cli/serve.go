package cli

import (
	"context"
	"os/signal"
	"syscall"

	api "rentdesk-backend/cmd/api"
	"rentdesk-backend/internal/reminder/scheduler"
	"rentdesk-backend/pkg/config"

	"github.com/spf13/cobra"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := NewApp(ctx, config.Load())
			if err != nil {
				return err
			}
			defer app.Close()

			reminderScheduler := scheduler.NewReminderScheduler(app.Usecases.Reminder, app.Config.ReminderInterval, app.Log)
			reminderScheduler.Start()
			defer reminderScheduler.Stop()

			handler := api.NewHandler(app.Config, app.Log, app.Usecases)
			return handler.Start(ctx)
		},
	}
}

// commandContext falls back to Background for commands run outside Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
