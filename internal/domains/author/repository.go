package author

import (
	"context"
)

// Repository defines author data access.
type Repository interface {
	// Create inserts a new author and returns it with its generated id.
	// Errors: ErrDuplicateName if the name is taken.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID returns ErrAuthorNotFound if no row matches.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// GetAll returns every author. An empty catalog is not an error.
	GetAll(ctx context.Context) ([]Author, error)

	// ExistsByName reports whether the name is already taken.
	// Used for the pre-insert uniqueness check.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Update rewrites name and biography.
	// Errors: ErrAuthorNotFound, ErrDuplicateName.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes the author; owned books go with it (FK cascade).
	// Errors: ErrAuthorNotFound.
	Delete(ctx context.Context, id int64) error
}
