// cmd/client/cmd/incident/list.go
package incident

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"safetylog/cmd/client/cmd/types"
	"safetylog/internal/app/client"
	"safetylog/internal/domain/incident"

	"github.com/spf13/cobra"
)

var (
	listSearch   string
	listType     string
	listSort     string
	listFormat   string
	listPage     int
	listPageSize int
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse the incident log",
	Long: `Shows one page of the incident log.

The view is derived in a fixed order: search, then type filter, then
sort. Paging applies to the result of all three.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)

		pageSize := listPageSize
		if pageSize == 0 {
			pageSize = app.Config().PageSize
		}

		q := incident.Query{
			Search:     listSearch,
			TypeFilter: listType,
			Sort:       incident.SortKey(listSort),
		}
		result, err := app.Incidents().Query(cmd.Context(), app.CurrentSession(), q, pageSize, listPage)
		if err != nil {
			return fmt.Errorf("list incidents: %w", err)
		}

		switch listFormat {
		case "json":
			return printJSON(result)
		case "table":
			return printTable(result)
		default:
			return printSimple(result)
		}
	},
}

func printSimple(result incident.QueryResult) error {
	if result.Total == 0 {
		fmt.Println("No incidents found")
		return nil
	}

	for _, inc := range result.Items {
		fmt.Printf("%d. %s (%s)\n", inc.ID, inc.Title, inc.Type)
		fmt.Printf("   Impact: %s | Date: %s | Logged by: %s\n",
			orDash(string(inc.Impact)),
			inc.Timestamp.Format("2006-01-02 15:04"),
			orDash(inc.LoggedBy))
		if len(inc.Files) > 0 {
			fmt.Printf("   Files: %s\n", strings.Join(inc.FileNames(), ", "))
		}
		fmt.Println()
	}

	fmt.Printf("Page %d of %d (%d total)\n", result.Page, result.TotalPages, result.Total)
	return nil
}

func printTable(result incident.QueryResult) error {
	if result.Total == 0 {
		fmt.Println("No incidents found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tTitle\tType\tImpact\tDate\tLogged by\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t\n")

	for _, inc := range result.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
			inc.ID,
			truncate(inc.Title, 30),
			inc.Type,
			orDash(string(inc.Impact)),
			inc.Timestamp.Format("2006-01-02"),
			orDash(inc.LoggedBy),
		)
	}

	w.Flush()
	fmt.Printf("\nPage %d of %d (%d total)\n", result.Page, result.TotalPages, result.Total)
	return nil
}

func printJSON(result incident.QueryResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func init() {
	ListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "search in title, type and description")
	ListCmd.Flags().StringVarP(&listType, "type", "t", incident.FilterAll, "type filter (All keeps every record)")
	ListCmd.Flags().StringVar(&listSort, "sort", string(incident.SortNewest), "sort order (newest, oldest, typeAsc, typeDesc)")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "output format (simple, table, json)")
	ListCmd.Flags().IntVarP(&listPage, "page", "p", 1, "page number")
	ListCmd.Flags().IntVar(&listPageSize, "page-size", 0, "records per page (default from config)")
}
