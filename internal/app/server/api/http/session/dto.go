package session

import (
	domain "safetylog/internal/domain/session"
)

type loginInput struct {
	Body loginRequest
}

type loginRequest struct {
	Username string      `json:"username" doc:"Display name for the session" minLength:"1"`
	Role     domain.Role `json:"role,omitempty" doc:"Asserted role; ignored when the name is registered"`
}

type loginOutput struct {
	Body loginResponse
}

type loginResponse struct {
	Token   string          `json:"token"`
	Session *domain.Session `json:"session"`
}

type registerInput struct {
	Body registerRequest
}

type registerRequest struct {
	Username string      `json:"username" doc:"Name to register" minLength:"1"`
	Role     domain.Role `json:"role,omitempty" doc:"Role the name will carry"`
}

type logoutInput struct {
	Authorization string `header:"Authorization"`
}

type output struct {
	Body response
}

type response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type meOutput struct {
	Body *domain.Session
}
