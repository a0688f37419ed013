// cmd/client/cmd/incident/update.go
package incident

import (
	"fmt"
	"strconv"

	"safetylog/cmd/client/cmd/types"
	"safetylog/internal/app/client"
	"safetylog/internal/domain/incident"

	"github.com/spf13/cobra"
)

var (
	updateTitle       string
	updateType        string
	updateDescription string
	updateImpact      string
	updateFiles       []string
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit an incident record",
	Long: `Replaces the editable fields of a record. The id, the original
timestamp and the author never change. Fields not given keep their
current value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		current, err := app.Incidents().Get(cmd.Context(), app.CurrentSession(), id)
		if err != nil {
			return fmt.Errorf("load incident: %w", err)
		}

		req := incident.UpdateRequest{
			Title:       current.Title,
			Type:        current.Type,
			Description: current.Description,
			Impact:      current.Impact,
			Files:       current.Files,
		}
		if cmd.Flags().Changed("title") {
			req.Title = updateTitle
		}
		if cmd.Flags().Changed("type") {
			req.Type = incident.Type(updateType)
		}
		if cmd.Flags().Changed("description") {
			req.Description = updateDescription
		}
		if cmd.Flags().Changed("impact") {
			req.Impact = incident.Impact(updateImpact)
		}
		if cmd.Flags().Changed("file") {
			req.Files = fileRefs(updateFiles)
		}

		updated, err := app.Incidents().Update(cmd.Context(), app.CurrentSession(), id, req)
		if err != nil {
			return fmt.Errorf("update incident: %w", err)
		}

		app.Notifier().Show(fmt.Sprintf("Incident %d updated", updated.ID))
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "incident title")
	UpdateCmd.Flags().StringVar(&updateType, "type", "", "incident type (Fire, Electrical, Injury, Spill, Other)")
	UpdateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "what happened")
	UpdateCmd.Flags().StringVarP(&updateImpact, "impact", "i", "", "impact level (High, Medium, Low)")
	UpdateCmd.Flags().StringSliceVar(&updateFiles, "file", nil, "attachment reference, repeatable")
}
