package session

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-login",
		Method:      http.MethodPost,
		Path:        "/session/login",
		Summary:     "Start a session",
		Description: "Labels the session with the given username and role. The role is self-asserted and not a security boundary.",
		Tags:        []string{"session"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-logout",
		Method:      http.MethodDelete,
		Path:        "/session",
		Summary:     "End the current session",
		Tags:        []string{"session"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.authMiddleware,
	}
}

func (h *Handler) meOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-me",
		Method:      http.MethodGet,
		Path:        "/session",
		Summary:     "Current session",
		Tags:        []string{"session"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.authMiddleware,
	}
}

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-register",
		Method:      http.MethodPost,
		Path:        "/user/register",
		Summary:     "Register a username",
		Description: "Stores the name with its chosen role in the local registry. Purely cosmetic, no credential involved.",
		Tags:        []string{"session"},
		Middlewares: h.middleware,
	}
}
