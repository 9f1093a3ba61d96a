package users

import "context"

// Repository defines the interface for user data persistence
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// Service defines the interface for account business logic
type Service interface {
	// Register creates a new account and returns an issued identity token.
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)

	// Login verifies credentials and returns an issued identity token.
	// Returns ErrUserNotFound for unknown usernames and ErrInvalidCredentials
	// for a password mismatch - the transport maps these to 404 and 401.
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)

	GetByUsername(ctx context.Context, username string) (*User, error)
}
