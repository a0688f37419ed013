package incident

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "incidents-list",
		Method:      http.MethodGet,
		Path:        "/api/incidents",
		Summary:     "List incidents",
		Description: "Applies search, type filter, sort and pagination over the records visible to the session.",
		Tags:        []string{"incidents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "incidents-create",
		Method:      http.MethodPost,
		Path:        "/api/incidents",
		Summary:     "Log an incident",
		Tags:        []string{"incidents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "incidents-find",
		Method:      http.MethodGet,
		Path:        "/api/incidents/{id}",
		Summary:     "Get one incident",
		Tags:        []string{"incidents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "incidents-update",
		Method:      http.MethodPut,
		Path:        "/api/incidents/{id}",
		Summary:     "Edit an incident",
		Description: "Replaces all mutable fields; id, timestamp and author are preserved.",
		Tags:        []string{"incidents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "incidents-delete",
		Method:      http.MethodDelete,
		Path:        "/api/incidents/{id}",
		Summary:     "Delete an incident",
		Description: "Requires confirm=true. Deleting an absent id is a no-op.",
		Tags:        []string{"incidents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) summaryOp() huma.Operation {
	return huma.Operation{
		OperationID: "incidents-summary",
		Method:      http.MethodGet,
		Path:        "/api/incidents/summary",
		Summary:     "Impact statistics",
		Description: "Counts per impact level. Admin sessions only.",
		Tags:        []string{"incidents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) exportOp() huma.Operation {
	return huma.Operation{
		OperationID: "incidents-export",
		Method:      http.MethodGet,
		Path:        "/api/incidents/export",
		Summary:     "Export incidents as CSV",
		Description: "Refused when there are no records to export.",
		Tags:        []string{"incidents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
