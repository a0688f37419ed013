package auth

import (
	"fmt"

	"safetylog/cmd/client/cmd/types"
	"safetylog/internal/app/client"

	"github.com/spf13/cobra"
)

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		sess := app.CurrentSession()
		if sess == nil {
			fmt.Println("Not logged in")
			return nil
		}
		fmt.Printf("%s (%s)\n", sess.Username, sess.Role)
		return nil
	},
}
