package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmanager-backend/internal/domains/book"
)

func TestBookServiceCreate(t *testing.T) {
	repo := &mockBookRepository{
		createFunc: func(ctx context.Context, b *book.Book) (*book.Book, error) {
			created := *b
			created.ID = 10
			return &created, nil
		},
	}
	svc := NewBookService(repo)

	b, err := svc.Create(context.Background(), &book.BookRequest{
		Title:         "Dune",
		Genre:         "Fiction",
		PublishedYear: 1965,
		AuthorID:      1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), b.ID)
	assert.Equal(t, "Dune", b.Title)
}

func TestBookServiceCreate_InvalidRequest(t *testing.T) {
	called := false
	repo := &mockBookRepository{
		createFunc: func(ctx context.Context, b *book.Book) (*book.Book, error) {
			called = true
			return b, nil
		},
	}
	svc := NewBookService(repo)

	_, err := svc.Create(context.Background(), &book.BookRequest{
		Title:         "Dune",
		Genre:         "Fantasy",
		PublishedYear: 1965,
		AuthorID:      1,
	})
	assert.Error(t, err)
	assert.False(t, called, "invalid request must not reach the repository")
}

func TestBookServiceList_RejectsBadFilter(t *testing.T) {
	called := false
	repo := &mockBookRepository{
		listFunc: func(ctx context.Context, filter book.Filter) ([]book.Book, error) {
			called = true
			return nil, nil
		},
	}
	svc := NewBookService(repo)

	filter := book.NewFilter()
	filter.SortBy = "created_at"

	_, err := svc.List(context.Background(), filter)
	assert.Error(t, err)
	assert.False(t, called, "bad sort key must not reach the query builder")
}

func TestBookServiceList_PassesFilterThrough(t *testing.T) {
	var got book.Filter
	repo := &mockBookRepository{
		listFunc: func(ctx context.Context, filter book.Filter) ([]book.Book, error) {
			got = filter
			return []book.Book{}, nil
		},
	}
	svc := NewBookService(repo)

	filter := book.NewFilter()
	filter.Genre = "Science"
	filter.Page = 2

	books, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.Equal(t, "Science", got.Genre)
	assert.Equal(t, 2, got.Page)
}

func TestBookServiceUpdate_SetsID(t *testing.T) {
	var got *book.Book
	repo := &mockBookRepository{
		updateFunc: func(ctx context.Context, b *book.Book) (*book.Book, error) {
			got = b
			return b, nil
		},
	}
	svc := NewBookService(repo)

	_, err := svc.Update(context.Background(), 5, &book.BookRequest{
		Title:         "Dune",
		Genre:         "Fiction",
		PublishedYear: 1965,
		AuthorID:      1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
}
