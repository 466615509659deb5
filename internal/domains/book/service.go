package book

import (
	"context"
)

// Service defines business logic operations for the Book domain.
type Service interface {
	// Create validates the request (title, genre enum, year floor) and
	// persists the book.
	// Errors: validation error, ErrAuthorNotFound
	Create(ctx context.Context, req *BookRequest) (*Book, error)

	// GetByID retrieves a book.
	// Errors: ErrBookNotFound
	GetByID(ctx context.Context, id int64) (*Book, error)

	// List returns one page of the filtered, sorted catalog.
	// Errors: validation error on bad filter values
	List(ctx context.Context, filter Filter) ([]Book, error)

	// Update rewrites an existing book.
	// Errors: ErrBookNotFound, ErrAuthorNotFound, validation error
	Update(ctx context.Context, id int64, req *BookRequest) (*Book, error)

	// Delete removes a book.
	// Errors: ErrBookNotFound
	Delete(ctx context.Context, id int64) error
}

// ImportService runs the bulk import pipeline: parse, validate, insert
// atomically.
type ImportService interface {
	// Import parses data according to the declared contentType
	// (application/json or text/csv), then hands the rows to the store for
	// an all-or-nothing insert. Any parse error, an empty row set, or a
	// single invalid row fails the whole request with nothing persisted.
	// Errors: ErrUnsupportedFileType, ErrInvalidJSON, ErrInvalidCSV,
	// ErrEmptyImport, ErrTooManyRows, *RowError
	Import(ctx context.Context, data []byte, contentType string) (int, error)
}
