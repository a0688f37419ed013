package user

import "errors"

var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("username already registered")
	ErrEmptyName     = errors.New("username must not be empty")
)
