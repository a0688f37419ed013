// cmd/client/cmd/auth/register.go
package auth

import (
	"fmt"

	"safetylog/cmd/client/cmd/types"
	"safetylog/internal/app/client"
	"safetylog/internal/domain/session"

	"github.com/spf13/cobra"
)

var (
	registerUser string
	registerRole string
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a username with a fixed role",
	Long: `Registers a username so later logins always resolve to the same
role, regardless of what the login asserts.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		if registerUser == "" {
			fmt.Print("Username: ")
			_, _ = fmt.Scanln(&registerUser)
		}

		u, err := app.Users().Register(cmd.Context(), registerUser, session.Role(registerRole))
		if err != nil {
			return fmt.Errorf("register: %w", err)
		}

		app.Notifier().Show(fmt.Sprintf("Registered %s as %s", u.Username, u.Role))
		return nil
	},
}

func init() {
	RegisterCmd.Flags().StringVarP(&registerUser, "user", "u", "", "username")
	RegisterCmd.Flags().StringVarP(&registerRole, "role", "r", string(session.RoleUser), "role (user or admin)")
}
