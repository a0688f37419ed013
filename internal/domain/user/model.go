package user

import (
	"safetylog/internal/domain/session"
)

// User is a registered name with the role it chose at registration.
// Registration is cosmetic: there is no credential, the role is whatever
// the user picked, and login against a registered name reuses it.
type User struct {
	Username string       `json:"username"`
	Role     session.Role `json:"role"`
}
