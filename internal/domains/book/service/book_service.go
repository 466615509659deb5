package service

import (
	"context"

	"bookmanager-backend/internal/domains/book"
)

// bookService implements book.Service.
type bookService struct {
	repo book.Repository
}

// NewBookService creates a service instance.
func NewBookService(repo book.Repository) book.Service {
	return &bookService{repo: repo}
}

func (s *bookService) Create(ctx context.Context, req *book.BookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.ToEntity())
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	return s.repo.GetByID(ctx, id)
}

// List validates the filter before it reaches the query builder. The sort
// allow-list check here is what keeps arbitrary values out of the dynamic
// ORDER BY clause.
func (s *bookService) List(ctx context.Context, filter book.Filter) ([]book.Book, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	return s.repo.List(ctx, filter)
}

func (s *bookService) Update(ctx context.Context, id int64, req *book.BookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b := req.ToEntity()
	b.ID = id

	return s.repo.Update(ctx, b)
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
