package incident

import (
	"errors"
)

var (
	ErrNotFound    = errors.New("incident not found")
	ErrInvalidData = errors.New("invalid incident data")
	ErrForbidden   = errors.New("not allowed to modify this incident")
	ErrNoIncidents = errors.New("no incidents to export")
)
