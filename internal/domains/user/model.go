package user

// User is the credential store record. HashedPassword never leaves the
// service layer - it is excluded from JSON marshalling.
type User struct {
	ID             int64  `json:"id" db:"id"`
	Username       string `json:"username" db:"username"`
	Email          string `json:"email" db:"email"`
	FirstName      string `json:"first_name" db:"first_name"`
	LastName       string `json:"last_name" db:"last_name"`
	HashedPassword string `json:"-" db:"hashed_password"`
}
