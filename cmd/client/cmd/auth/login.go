// cmd/client/cmd/auth/login.go
package auth

import (
	"fmt"

	"safetylog/cmd/client/cmd/types"
	"safetylog/internal/app/client"
	"safetylog/internal/domain/session"

	"github.com/spf13/cobra"
)

var (
	loginUser string
	loginRole string
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Start a session",
	Long: `Starts a local session for the given username and role.

The role is cosmetic and self-asserted. If the username was registered
earlier, the registered role is used instead of the asserted one.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		if loginUser == "" {
			fmt.Print("Username: ")
			_, _ = fmt.Scanln(&loginUser)
		}

		sess, err := app.Login(cmd.Context(), loginUser, session.Role(loginRole))
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}

		app.Notifier().Show(fmt.Sprintf("Logged in as %s (%s)", sess.Username, sess.Role))
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginUser, "user", "u", "", "username")
	LoginCmd.Flags().StringVarP(&loginRole, "role", "r", string(session.RoleUser), "role (user or admin)")
}
