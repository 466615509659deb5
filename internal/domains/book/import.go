package book

import "fmt"

// MaxImportRows caps a single upload.
const MaxImportRows = 1000

// Import content types accepted by POST /book/import.
const (
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv"
)

// ImportRow is one parsed row from an uploaded JSON or CSV file.
// Row tracks the 1-based position in the upload for error reporting.
type ImportRow struct {
	Row           int    `json:"-"`
	Title         string `json:"title"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"published_year"`
	AuthorID      int64  `json:"author_id"`
}

// RowError describes the first failing row of an import batch.
// The whole batch is rejected; there is no error aggregation.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %s: %s", e.Row, e.Field, e.Message)
}

// ValidateImportRow checks one row against the catalog domain rules and the
// author-id snapshot taken at the start of the batch. Returns nil when the
// row may be staged for insertion.
func ValidateImportRow(row ImportRow, authorIDs map[int64]struct{}) *RowError {
	if !IsAllowedGenre(row.Genre) {
		return &RowError{
			Row:     row.Row,
			Field:   "genre",
			Message: fmt.Sprintf("invalid genre: %s", row.Genre),
		}
	}

	if row.PublishedYear < MinPublishedYear {
		return &RowError{
			Row:     row.Row,
			Field:   "published_year",
			Message: "published_year must be >= 1800",
		}
	}

	if _, ok := authorIDs[row.AuthorID]; !ok {
		return &RowError{
			Row:     row.Row,
			Field:   "author_id",
			Message: fmt.Sprintf("author ID %d does not exist", row.AuthorID),
		}
	}

	return nil
}
