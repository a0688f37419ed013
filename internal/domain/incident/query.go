package incident

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortNewest   SortKey = "newest"
	SortOldest   SortKey = "oldest"
	SortTypeAsc  SortKey = "typeAsc"
	SortTypeDesc SortKey = "typeDesc"
)

// FilterAll is the type filter value that keeps every record.
const FilterAll = "All"

// Query holds the view parameters for the list transformation.
type Query struct {
	Search     string
	TypeFilter string
	Sort       SortKey
}

// Apply derives the displayed record order from the full collection:
// search, then type filter, then a stable sort. The stage order is fixed;
// each stage operates on the output of the previous one. The input slice
// is never modified.
func Apply(incidents []Incident, q Query) []Incident {
	out := searchStage(incidents, q.Search)
	out = filterStage(out, q.TypeFilter)
	sortStage(out, q.Sort)
	return out
}

// searchStage keeps records whose title, type or description contains the
// search text, case-insensitively. Empty search text matches everything.
func searchStage(incidents []Incident, search string) []Incident {
	out := make([]Incident, 0, len(incidents))
	if strings.TrimSpace(search) == "" {
		return append(out, incidents...)
	}
	needle := strings.ToLower(search)
	for _, inc := range incidents {
		if containsFold(inc.Title, needle) ||
			containsFold(string(inc.Type), needle) ||
			containsFold(inc.Description, needle) {
			out = append(out, inc)
		}
	}
	return out
}

func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}

func filterStage(incidents []Incident, typeFilter string) []Incident {
	if typeFilter == "" || typeFilter == FilterAll {
		return incidents
	}
	out := incidents[:0]
	for _, inc := range incidents {
		if string(inc.Type) == typeFilter {
			out = append(out, inc)
		}
	}
	return out
}

// sortStage orders in place. Ties keep their relative input order.
func sortStage(incidents []Incident, key SortKey) {
	switch key {
	case SortOldest:
		sort.SliceStable(incidents, func(i, j int) bool {
			return incidents[i].Timestamp.Before(incidents[j].Timestamp)
		})
	case SortTypeAsc:
		sort.SliceStable(incidents, func(i, j int) bool {
			return incidents[i].Type < incidents[j].Type
		})
	case SortTypeDesc:
		sort.SliceStable(incidents, func(i, j int) bool {
			return incidents[i].Type > incidents[j].Type
		})
	case SortNewest:
		fallthrough
	default:
		sort.SliceStable(incidents, func(i, j int) bool {
			return incidents[i].Timestamp.After(incidents[j].Timestamp)
		})
	}
}

func (k SortKey) Validate() error {
	switch k {
	case SortNewest, SortOldest, SortTypeAsc, SortTypeDesc, "":
		return nil
	}
	return ErrInvalidData
}
