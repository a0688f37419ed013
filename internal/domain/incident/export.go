package incident

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	// ExportFilename is the suggested download name for CSV exports.
	ExportFilename = "incidents.csv"
	// ExportMIME is the content type of the export file.
	ExportMIME = "text/csv"
)

var exportHeader = []string{"Title", "Type", "Description", "Date", "Files"}

// ExportCSV writes the records as CSV: a header row, then one row per
// record, every field wrapped in double quotes, lines separated by \n.
// An empty sequence is refused with ErrNoIncidents and nothing is written.
func ExportCSV(w io.Writer, incidents []Incident) error {
	if len(incidents) == 0 {
		return ErrNoIncidents
	}

	if err := writeRow(w, exportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, inc := range incidents {
		row := []string{
			inc.Title,
			string(inc.Type),
			inc.Description,
			inc.Timestamp.Format(time.RFC3339),
			strings.Join(inc.FileNames(), ", "),
		}
		if err := writeRow(w, row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	return nil
}

func writeRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\n")
	return err
}
