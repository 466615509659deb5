package author

import (
	"context"
)

// Service defines business logic operations for the Author domain.
type Service interface {
	// Create creates a new author.
	// Business rules:
	// - Name must not be empty
	// - Name must be unique (checked before insert so the caller gets a
	//   clean conflict instead of a raw constraint violation)
	// Errors: validation error, ErrDuplicateName
	Create(ctx context.Context, req *AuthorRequest) (*Author, error)

	// GetByID retrieves an author.
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id int64) (*Author, error)

	// GetAll retrieves all authors.
	GetAll(ctx context.Context) ([]Author, error)

	// Update rewrites an existing author's details.
	// Errors: ErrAuthorNotFound, validation error
	Update(ctx context.Context, id int64, req *AuthorRequest) (*Author, error)

	// Delete removes an author and, via cascade, all of their books.
	// Errors: ErrAuthorNotFound
	Delete(ctx context.Context, id int64) error
}
