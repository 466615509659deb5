package user

import (
	"context"
)

// Repository defines user data access.
type Repository interface {
	// Create inserts a new user.
	// Errors: ErrEmailAlreadyExists, ErrUsernameAlreadyExists.
	Create(ctx context.Context, u *User) (*User, error)

	// GetByEmail returns ErrUserNotFound if no row matches.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID returns ErrUserNotFound if no row matches.
	GetByID(ctx context.Context, id int64) (*User, error)

	// ExistsByEmail reports whether the email is already registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
