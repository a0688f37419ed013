package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd is the parent command for session management.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the local session",
	Long:  `Log in, log out, register a username and inspect the current session.`,
}
