package cmd

import (
	"fmt"

	"safetylog/cmd/client/cmd/types"
	"safetylog/internal/app/client"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the display theme",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		if len(args) == 0 {
			fmt.Println(app.Theme())
			return nil
		}

		if err := app.SetTheme(args[0]); err != nil {
			return err
		}
		fmt.Printf("Theme set to %s\n", args[0])
		return nil
	},
}
