// Package cli defines the rentdesk command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd returns the rentdesk command. Without a subcommand it serves
// the API.
func NewRootCmd() *cobra.Command {
	serve := ServeCmd()
	rootCmd := &cobra.Command{
		Use:           "rentdesk",
		Short:         "Property and tenant management backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	rootCmd.AddCommand(
		serve,
		MigrateCmd(),
		RemindersCmd(),
		TokenCmd(),
	)
	return rootCmd
}
