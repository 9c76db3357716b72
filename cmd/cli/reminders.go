package cli

import (
	"fmt"

	"rentdesk-backend/pkg/config"

	"github.com/spf13/cobra"
)

func RemindersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminders",
		Short: "Manage rent and lease expiry reminders",
	}
	cmd.AddCommand(generateRemindersCmd())
	return cmd
}

func generateRemindersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Create missing reminders for active leases",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			app, err := NewApp(ctx, config.Load())
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.Usecases.Reminder.GenerateReminders(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %d reminders (rent_due=%d, lease_expiry=%d)\n",
				result.Total(), result.RentDue, result.LeaseExpiry)
			return nil
		},
	}
}
