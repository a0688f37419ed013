// cmd/client/cmd/incident/create.go
package incident

import (
	"bufio"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"safetylog/cmd/client/cmd/types"
	"safetylog/internal/app/client"
	"safetylog/internal/domain/incident"

	"github.com/spf13/cobra"
)

var (
	createTitle       string
	createType        string
	createDescription string
	createImpact      string
	createFiles       []string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Log a new incident",
	Long: `Logs a new incident record.

Supported types: Fire, Electrical, Injury, Spill, Other.
Impact levels: High, Medium, Low.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		if createTitle == "" {
			fmt.Print("Title: ")
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				createTitle = scanner.Text()
			}
		}
		if createType == "" {
			fmt.Print("Type (Fire, Electrical, Injury, Spill, Other): ")
			_, _ = fmt.Scanln(&createType)
		}
		if createDescription == "" {
			fmt.Print("Description: ")
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				createDescription = scanner.Text()
			}
		}

		req := incident.CreateRequest{
			Title:       createTitle,
			Type:        incident.Type(createType),
			Description: createDescription,
			Impact:      incident.Impact(createImpact),
			Files:       fileRefs(createFiles),
		}

		inc, err := app.Incidents().Create(cmd.Context(), app.CurrentSession(), req)
		if err != nil {
			return fmt.Errorf("create incident: %w", err)
		}

		app.Notifier().Show(fmt.Sprintf("Incident %d logged", inc.ID))
		return nil
	},
}

// fileRefs turns attachment paths into display references. The files
// themselves are never read or copied.
func fileRefs(paths []string) []incident.FileRef {
	if len(paths) == 0 {
		return nil
	}
	refs := make([]incident.FileRef, 0, len(paths))
	for _, p := range paths {
		refs = append(refs, incident.FileRef{
			Name:     filepath.Base(p),
			URL:      p,
			MimeType: mime.TypeByExtension(filepath.Ext(p)),
		})
	}
	return refs
}

func init() {
	CreateCmd.Flags().StringVarP(&createTitle, "title", "t", "", "incident title")
	CreateCmd.Flags().StringVar(&createType, "type", "", "incident type (Fire, Electrical, Injury, Spill, Other)")
	CreateCmd.Flags().StringVarP(&createDescription, "description", "d", "", "what happened")
	CreateCmd.Flags().StringVarP(&createImpact, "impact", "i", "", "impact level (High, Medium, Low)")
	CreateCmd.Flags().StringSliceVar(&createFiles, "file", nil, "attachment reference, repeatable")
}
