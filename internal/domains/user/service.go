package user

import (
	"context"
)

// Service defines user registration and authentication.
type Service interface {
	// Register creates a new user with a bcrypt-hashed password.
	// Errors: validation error, ErrEmailAlreadyExists, ErrUsernameAlreadyExists
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Login verifies credentials and issues an access/refresh token pair.
	// The failure is uniform - callers cannot tell an unknown email from a
	// wrong password.
	// Errors: validation error, ErrInvalidCredentials
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	// Errors: ErrInvalidCredentials
	Refresh(ctx context.Context, req RefreshRequest) (*TokenResponse, error)

	// GetByID retrieves a user record.
	// Errors: ErrUserNotFound
	GetByID(ctx context.Context, id int64) (*User, error)
}
