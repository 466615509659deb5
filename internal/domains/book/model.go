package book

// AllowedGenres is the fixed genre enumeration. Everything else is rejected
// at write time, both for single creates and bulk import rows.
var AllowedGenres = []string{"Fiction", "Non-Fiction", "Science", "History"}

// MinPublishedYear is the floor for Book.PublishedYear.
const MinPublishedYear = 1800

// IsAllowedGenre reports whether genre is in the fixed enumeration.
func IsAllowedGenre(genre string) bool {
	for _, g := range AllowedGenres {
		if g == genre {
			return true
		}
	}
	return false
}

// Book is the domain model. AuthorID must reference a live author row;
// the store cascades book deletion when the author is removed.
type Book struct {
	ID            int64  `json:"id" db:"id"`
	Title         string `json:"title" db:"title"`
	Genre         string `json:"genre" db:"genre"`
	PublishedYear int    `json:"published_year" db:"published_year"`
	AuthorID      int64  `json:"author_id" db:"author_id"`
}
