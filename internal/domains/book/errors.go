package book

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Validation errors
	ErrEmptyTitle   = errors.New("title cannot be empty")
	ErrInvalidGenre = errors.New("invalid genre")
	ErrInvalidYear  = errors.New("published_year must be >= 1800")

	// Business rule errors
	ErrBookNotFound   = errors.New("book not found")
	ErrAuthorNotFound = errors.New("author does not exist")

	// Import errors
	ErrUnsupportedFileType = errors.New("invalid file type, only JSON and CSV are allowed")
	ErrInvalidJSON         = errors.New("invalid JSON format")
	ErrInvalidCSV          = errors.New("error parsing CSV file")
	ErrEmptyImport         = errors.New("no books to import")
	ErrTooManyRows         = errors.New("import exceeds the row limit")
)

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		return 400
	}

	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrEmptyTitle),
		errors.Is(err, ErrInvalidGenre),
		errors.Is(err, ErrInvalidYear),
		errors.Is(err, ErrAuthorNotFound),
		errors.Is(err, ErrUnsupportedFileType),
		errors.Is(err, ErrInvalidJSON),
		errors.Is(err, ErrInvalidCSV),
		errors.Is(err, ErrEmptyImport),
		errors.Is(err, ErrTooManyRows):
		return 400
	default:
		return 500
	}
}
