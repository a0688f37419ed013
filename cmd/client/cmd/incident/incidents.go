package incident

import (
	"github.com/spf13/cobra"
)

// IncidentCmd is the parent command for all incident log operations.
var IncidentCmd = &cobra.Command{
	Use:   "incident",
	Short: "Manage the incident log",
	Long:  `Log, browse, update, delete and export HSE incident records.`,
}
