package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MaxNameLength = 255
	MaxBioLength  = 5000
)

// AuthorRequest - POST /author/ and PUT /author/:id
type AuthorRequest struct {
	Name      string `json:"name"`
	Biography string `json:"biography"`
}

func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("author name is required"),
			validation.Length(1, MaxNameLength),
		),
		validation.Field(&r.Biography,
			validation.Length(0, MaxBioLength),
		),
	)
}

// ToEntity converts the request to an Author entity.
func (r *AuthorRequest) ToEntity() *Author {
	return &Author{
		Name:      r.Name,
		Biography: r.Biography,
	}
}
