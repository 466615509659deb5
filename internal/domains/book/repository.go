package book

import (
	"context"
)

// Repository defines book data access.
type Repository interface {
	// Create inserts a new book.
	// Errors: ErrAuthorNotFound if author_id has no matching author row.
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID returns ErrBookNotFound if no row matches.
	GetByID(ctx context.Context, id int64) (*Book, error)

	// List returns the filtered, sorted page of books. No total count is
	// computed; an empty page past the end of the result set is not an error.
	// Filter must already be validated - SortBy/SortOrder go into the query.
	List(ctx context.Context, filter Filter) ([]Book, error)

	// Update rewrites all book fields.
	// Errors: ErrBookNotFound, ErrAuthorNotFound.
	Update(ctx context.Context, b *Book) (*Book, error)

	// Delete removes a book by id.
	// Errors: ErrBookNotFound.
	Delete(ctx context.Context, id int64) error

	// BulkInsert inserts all rows inside a single transaction.
	// The author-id set is snapshotted once at the start of the batch; each
	// row is validated in input order and the first failure aborts the whole
	// transaction (*RowError). No partial state is ever visible to readers.
	BulkInsert(ctx context.Context, rows []ImportRow) error
}
