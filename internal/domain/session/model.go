package session

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

// Role is cosmetic: it scopes what the UI shows, it is not a security
// boundary. Users self-assert their role at login.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (Role) Schema() huma.Schema {
	return huma.Schema{
		Type:        "string",
		Enum:        []any{string(RoleUser), string(RoleAdmin)},
		Description: "Display role for the session",
		Examples:    []any{RoleUser},
	}
}

func (r Role) Validate() error {
	switch r {
	case RoleUser, RoleAdmin:
		return nil
	}
	return fmt.Errorf("unknown role %q", string(r))
}

func (r Role) String() string {
	return string(r)
}

// Session identifies who is using the app and in what role.
type Session struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsAdmin is nil-safe so callers can pass an absent session through.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
