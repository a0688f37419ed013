package incident

import (
	"fmt"
	"strconv"
	"strings"

	"safetylog/cmd/client/cmd/types"
	"safetylog/internal/app/client"

	"github.com/spf13/cobra"
)

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one incident record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		inc, err := app.Incidents().Get(cmd.Context(), app.CurrentSession(), id)
		if err != nil {
			return fmt.Errorf("get incident: %w", err)
		}

		fmt.Printf("ID:          %d\n", inc.ID)
		fmt.Printf("Title:       %s\n", inc.Title)
		fmt.Printf("Type:        %s\n", inc.Type)
		fmt.Printf("Impact:      %s\n", orDash(string(inc.Impact)))
		fmt.Printf("Date:        %s\n", inc.Timestamp.Format("2006-01-02 15:04:05"))
		fmt.Printf("Logged by:   %s\n", orDash(inc.LoggedBy))
		fmt.Printf("Description: %s\n", inc.Description)
		if len(inc.Files) > 0 {
			fmt.Printf("Files:       %s\n", strings.Join(inc.FileNames(), ", "))
		}
		return nil
	},
}
