package users

import "errors"

var (
	// ErrUserNotFound indicates the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken indicates the username is already registered
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials indicates the presented password doesn't match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInput indicates a missing or malformed registration field
	ErrInvalidInput = errors.New("invalid input")
)
