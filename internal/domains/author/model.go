package author

// Author is the domain model, independent of database/API concerns.
// An author owns zero or more books; deleting the author cascades to them.
type Author struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`           // Required, unique
	Biography string `json:"biography" db:"biography"` // Defaults to empty
}
