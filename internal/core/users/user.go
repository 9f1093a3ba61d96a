package users

import (
	"time"
)

// User represents a registered Movierama account.
// The password is stored only as a bcrypt hash and is never serialized
// into API responses.
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	ID           int64     `json:"id" db:"id"`
}

// Summary is the owner projection embedded in movie responses.
type Summary struct {
	Username string `json:"username"`
	ID       int64  `json:"id"`
}

// RegisterRequest represents the input for creating a new account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the credentials presented at login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse carries the issued identity token back to the client
type AuthResponse struct {
	Token string `json:"token"`
}
