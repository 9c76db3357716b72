package cli

import (
	"errors"
	"fmt"

	"rentdesk-backend/pkg/auth"
	"rentdesk-backend/pkg/config"

	"github.com/spf13/cobra"
)

func TokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage API bearer tokens",
	}
	cmd.AddCommand(issueTokenCmd())
	return cmd
}

func issueTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Print a signed bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			cfg := config.Load()
			if !cfg.AuthEnabled() {
				return errors.New("JWT_SECRET is not set")
			}
			if ttl <= 0 {
				ttl = cfg.JWTTTL
			}

			token, err := auth.NewTokenManager(cfg.JWTSecret, ttl).Issue(subject)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().String("subject", "admin", "Token subject")
	cmd.Flags().Duration("ttl", 0, "Token lifetime (defaults to JWT_TTL)")
	return cmd
}
