// cmd/client/cmd/incident/export.go
package incident

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"safetylog/cmd/client/cmd/types"
	"safetylog/internal/app/client"
	"safetylog/internal/domain/incident"

	"github.com/spf13/cobra"
)

var exportOutput string

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the incident log to CSV",
	Long: `Writes the visible records to a CSV file. An empty log is refused
and no file is written.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		// Build the whole document first so a failure mid-export never
		// leaves a partial file behind.
		var buf bytes.Buffer
		err := app.Incidents().ExportCSV(cmd.Context(), app.CurrentSession(), &buf)
		if err != nil {
			if errors.Is(err, incident.ErrNoIncidents) {
				app.Notifier().ShowError("Nothing to export")
				return nil
			}
			return fmt.Errorf("export incidents: %w", err)
		}

		if err := os.WriteFile(exportOutput, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write export file: %w", err)
		}

		app.Notifier().Show(fmt.Sprintf("Exported to %s", exportOutput))
		return nil
	},
}

func init() {
	ExportCmd.Flags().StringVarP(&exportOutput, "output", "o", incident.ExportFilename, "output file")
}
