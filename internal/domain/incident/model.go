package incident

import "time"

// FileRef describes an attached file. The file contents themselves live
// outside the record store; only name, location and MIME type are kept.
type FileRef struct {
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// Incident is one logged safety event. ID and Timestamp are assigned at
// creation and never change afterwards; LoggedBy is the username of the
// session that created the record.
type Incident struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Type        Type      `json:"type"`
	Description string    `json:"description"`
	Impact      Impact    `json:"impact,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Files       []FileRef `json:"files,omitempty"`
	LoggedBy    string    `json:"loggedBy,omitempty"`
}

// FileNames returns the attachment names in order.
func (i *Incident) FileNames() []string {
	if len(i.Files) == 0 {
		return nil
	}
	names := make([]string, len(i.Files))
	for idx, f := range i.Files {
		names[idx] = f.Name
	}
	return names
}
