package session

import "errors"

var (
	ErrNotFound     = errors.New("session not found")
	ErrEmptyName    = errors.New("username must not be empty")
	ErrInvalidToken = errors.New("invalid session token")
)
