package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmanager-backend/internal/domains/author"
)

type mockAuthorRepository struct {
	createFunc       func(ctx context.Context, a *author.Author) (*author.Author, error)
	getByIDFunc      func(ctx context.Context, id int64) (*author.Author, error)
	getAllFunc       func(ctx context.Context) ([]author.Author, error)
	existsByNameFunc func(ctx context.Context, name string) (bool, error)
	updateFunc       func(ctx context.Context, a *author.Author) (*author.Author, error)
	deleteFunc       func(ctx context.Context, id int64) error
}

func (m *mockAuthorRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, a)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthorRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthorRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthorRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.existsByNameFunc != nil {
		return m.existsByNameFunc(ctx, name)
	}
	return false, errors.New("not implemented")
}

func (m *mockAuthorRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, a)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthorRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func TestAuthorServiceCreate(t *testing.T) {
	repo := &mockAuthorRepository{
		existsByNameFunc: func(ctx context.Context, name string) (bool, error) {
			return false, nil
		},
		createFunc: func(ctx context.Context, a *author.Author) (*author.Author, error) {
			created := *a
			created.ID = 1
			return &created, nil
		},
	}
	svc := NewAuthorService(repo)

	a, err := svc.Create(context.Background(), &author.AuthorRequest{
		Name:      "Frank Herbert",
		Biography: "Wrote Dune.",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, "Frank Herbert", a.Name)
}

func TestAuthorServiceCreate_DuplicateName(t *testing.T) {
	created := false
	repo := &mockAuthorRepository{
		existsByNameFunc: func(ctx context.Context, name string) (bool, error) {
			return true, nil
		},
		createFunc: func(ctx context.Context, a *author.Author) (*author.Author, error) {
			created = true
			return a, nil
		},
	}
	svc := NewAuthorService(repo)

	_, err := svc.Create(context.Background(), &author.AuthorRequest{Name: "Frank Herbert"})
	assert.ErrorIs(t, err, author.ErrDuplicateName)
	assert.False(t, created)
}

func TestAuthorServiceCreate_EmptyName(t *testing.T) {
	svc := NewAuthorService(&mockAuthorRepository{})

	_, err := svc.Create(context.Background(), &author.AuthorRequest{Name: ""})
	assert.Error(t, err)
}

func TestAuthorServiceUpdate(t *testing.T) {
	repo := &mockAuthorRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*author.Author, error) {
			return &author.Author{ID: id, Name: "Old Name", Biography: "old"}, nil
		},
		updateFunc: func(ctx context.Context, a *author.Author) (*author.Author, error) {
			return a, nil
		},
	}
	svc := NewAuthorService(repo)

	a, err := svc.Update(context.Background(), 4, &author.AuthorRequest{
		Name:      "New Name",
		Biography: "new",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), a.ID)
	assert.Equal(t, "New Name", a.Name)
	assert.Equal(t, "new", a.Biography)
}

func TestAuthorServiceUpdate_NotFound(t *testing.T) {
	repo := &mockAuthorRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*author.Author, error) {
			return nil, author.ErrAuthorNotFound
		},
	}
	svc := NewAuthorService(repo)

	_, err := svc.Update(context.Background(), 99, &author.AuthorRequest{Name: "X"})
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestAuthorServiceDelete_NotFound(t *testing.T) {
	repo := &mockAuthorRepository{
		deleteFunc: func(ctx context.Context, id int64) error {
			return author.ErrAuthorNotFound
		},
	}
	svc := NewAuthorService(repo)

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}
