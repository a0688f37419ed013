// cmd/client/cmd/incident/summary.go
package incident

import (
	"encoding/json"
	"fmt"
	"os"

	"safetylog/cmd/client/cmd/types"
	"safetylog/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var summaryJSON bool

var SummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show impact statistics",
	Long:  `Counts records per impact level. With an active session this view is admin-only.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		summary, err := app.Incidents().Summarize(cmd.Context(), app.CurrentSession())
		if err != nil {
			return fmt.Errorf("summarize incidents: %w", err)
		}

		if summaryJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(summary)
		}

		color.New(color.FgRed).Printf("High:   %d\n", summary.High)
		color.New(color.FgYellow).Printf("Medium: %d\n", summary.Medium)
		color.New(color.FgGreen).Printf("Low:    %d\n", summary.Low)
		fmt.Printf("Total:  %d\n", summary.Total)
		return nil
	},
}

func init() {
	SummaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "output as JSON")
}
