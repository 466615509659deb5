package service

import (
	"context"
	"fmt"

	"bookmanager-backend/internal/domains/author"
)

// authorService implements author.Service.
type authorService struct {
	repo author.Repository
}

// NewAuthorService creates a service instance.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

// Create validates the request, rejects duplicate names before insert,
// then persists the author.
func (s *authorService) Create(ctx context.Context, req *author.AuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Pre-insert uniqueness check so the caller gets a domain-level
	// conflict rather than a constraint violation message.
	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check author name exists: %w", err)
	}
	if exists {
		return nil, author.ErrDuplicateName
	}

	return s.repo.Create(ctx, req.ToEntity())
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) GetAll(ctx context.Context) ([]author.Author, error) {
	return s.repo.GetAll(ctx)
}

// Update confirms the target exists, then rewrites it.
func (s *authorService) Update(ctx context.Context, id int64, req *author.AuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Biography = req.Biography

	return s.repo.Update(ctx, existing)
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
