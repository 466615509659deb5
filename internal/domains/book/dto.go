package book

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Sort allow-lists. The ORDER BY clause is built from these values, so
// anything outside them must be rejected at the boundary.
var (
	allowedSortBy    = []string{"title", "published_year", "author_id"}
	allowedSortOrder = []string{"asc", "desc"}
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// BookRequest - POST /book/ and PUT /book/:id
type BookRequest struct {
	Title         string `json:"title"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"published_year"`
	AuthorID      int64  `json:"author_id"`
}

func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.By(func(interface{}) error {
				if strings.TrimSpace(r.Title) == "" {
					return ErrEmptyTitle
				}
				return nil
			}),
		),
		validation.Field(&r.Genre,
			validation.Required.Error("genre is required"),
			validation.In(toInterfaces(AllowedGenres)...).
				Error("genre must be one of: "+strings.Join(AllowedGenres, ", ")),
		),
		validation.Field(&r.PublishedYear,
			// Required catches the zero value, which Min alone would skip.
			validation.Required.Error("published_year must be >= 1800"),
			validation.Min(MinPublishedYear).Error("published_year must be >= 1800"),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id is required"),
		),
	)
}

// ToEntity converts the request to a Book entity.
func (r *BookRequest) ToEntity() *Book {
	return &Book{
		Title:         strings.TrimSpace(r.Title),
		Genre:         r.Genre,
		PublishedYear: r.PublishedYear,
		AuthorID:      r.AuthorID,
	}
}

// Filter - query parameters for GET /book/.
// Omitted filters are not constraints; absence means "match all".
type Filter struct {
	Title     string `form:"title"`
	Genre     string `form:"genre"`
	AuthorID  *int64 `form:"author_id"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

// NewFilter returns a Filter with the listing defaults applied.
func NewFilter() Filter {
	return Filter{
		Page:      DefaultPage,
		PageSize:  DefaultPageSize,
		SortBy:    "title",
		SortOrder: "asc",
	}
}

func (f Filter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Page,
			validation.Required.Error("page must be >= 1"),
			validation.Min(1).Error("page must be >= 1"),
		),
		validation.Field(&f.PageSize,
			validation.Required.Error("page_size must be >= 1"),
			validation.Min(1).Error("page_size must be >= 1"),
			validation.Max(MaxPageSize).Error("page_size must be <= 100"),
		),
		validation.Field(&f.SortBy,
			validation.In(toInterfaces(allowedSortBy)...).
				Error("sort_by must be one of: "+strings.Join(allowedSortBy, ", ")),
		),
		validation.Field(&f.SortOrder,
			validation.In(toInterfaces(allowedSortOrder)...).
				Error("sort_order must be asc or desc"),
		),
	)
}

// Offset converts page/page_size into the query offset.
func (f Filter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
