// cmd/client/cmd/incident/delete.go
package incident

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"safetylog/cmd/client/cmd/types"
	"safetylog/internal/app/client"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var deleteYes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an incident record",
	Long: `Deletes a record after confirmation. Deleting an id that does not
exist is not an error; the log is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		if !deleteYes {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("refusing to delete without --yes on a non-interactive terminal")
			}
			fmt.Printf("Delete incident %d? [y/N]: ", id)
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() {
				return fmt.Errorf("confirmation aborted")
			}
			answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
			if answer != "y" && answer != "yes" {
				fmt.Println("Cancelled")
				return nil
			}
		}

		if err := app.Incidents().Delete(cmd.Context(), app.CurrentSession(), id); err != nil {
			return fmt.Errorf("delete incident: %w", err)
		}

		app.Notifier().Show(fmt.Sprintf("Incident %d deleted", id))
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}
