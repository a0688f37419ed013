package auth

import (
	"fmt"

	"safetylog/cmd/client/cmd/types"
	"safetylog/internal/app/client"

	"github.com/spf13/cobra"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		if err := app.Logout(); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		app.Notifier().Show("Logged out")
		return nil
	},
}
