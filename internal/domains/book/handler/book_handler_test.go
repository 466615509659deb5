package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmanager-backend/internal/domains/book"
)

type mockBookService struct {
	createFunc  func(ctx context.Context, req *book.BookRequest) (*book.Book, error)
	getByIDFunc func(ctx context.Context, id int64) (*book.Book, error)
	listFunc    func(ctx context.Context, filter book.Filter) ([]book.Book, error)
	updateFunc  func(ctx context.Context, id int64, req *book.BookRequest) (*book.Book, error)
	deleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockBookService) Create(ctx context.Context, req *book.BookRequest) (*book.Book, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBookService) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBookService) List(ctx context.Context, filter book.Filter) ([]book.Book, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBookService) Update(ctx context.Context, id int64, req *book.BookRequest) (*book.Book, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockBookService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func setupBookRouter(svc book.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewBookHandler(svc)
	router := gin.New()
	books := router.Group("/book")
	{
		books.GET("/", h.List)
		books.GET("/:id", h.GetByID)
		books.POST("/", h.Create)
		books.DELETE("/:id", h.Delete)
	}
	return router
}

func TestListBooks_FilterParsing(t *testing.T) {
	var got book.Filter
	svc := &mockBookService{
		listFunc: func(ctx context.Context, filter book.Filter) ([]book.Book, error) {
			got = filter
			if err := filter.Validate(); err != nil {
				return nil, err
			}
			return []book.Book{}, nil
		},
	}
	router := setupBookRouter(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/book/?title=dune&genre=Fiction&author_id=3&page=2&page_size=5&sort_by=published_year&sort_order=desc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dune", got.Title)
	assert.Equal(t, "Fiction", got.Genre)
	require.NotNil(t, got.AuthorID)
	assert.Equal(t, int64(3), *got.AuthorID)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 5, got.PageSize)
	assert.Equal(t, "published_year", got.SortBy)
	assert.Equal(t, "desc", got.SortOrder)
}

func TestListBooks_Defaults(t *testing.T) {
	var got book.Filter
	svc := &mockBookService{
		listFunc: func(ctx context.Context, filter book.Filter) ([]book.Book, error) {
			got = filter
			return []book.Book{}, nil
		},
	}
	router := setupBookRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/book/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, book.DefaultPage, got.Page)
	assert.Equal(t, book.DefaultPageSize, got.PageSize)
	assert.Equal(t, "title", got.SortBy)
	assert.Equal(t, "asc", got.SortOrder)
	assert.Nil(t, got.AuthorID)
}

func TestListBooks_BadQueryValues(t *testing.T) {
	svc := &mockBookService{
		listFunc: func(ctx context.Context, filter book.Filter) ([]book.Book, error) {
			if err := filter.Validate(); err != nil {
				return nil, err
			}
			return []book.Book{}, nil
		},
	}
	router := setupBookRouter(svc)

	tests := []struct {
		name  string
		query string
	}{
		{"non-integer page", "?page=abc"},
		{"non-integer author id", "?author_id=abc"},
		{"non-integer page size", "?page_size=five"},
		{"unknown sort key", "?sort_by=id"},
		{"bad sort order", "?sort_order=upwards"},
		{"page zero", "?page=0"},
		{"oversized page", "?page_size=500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/book/"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetBook_NotFound(t *testing.T) {
	svc := &mockBookService{
		getByIDFunc: func(ctx context.Context, id int64) (*book.Book, error) {
			return nil, book.ErrBookNotFound
		},
	}
	router := setupBookRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/book/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestGetBook_InvalidID(t *testing.T) {
	router := setupBookRouter(&mockBookService{})

	req := httptest.NewRequest(http.MethodGet, "/book/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBook(t *testing.T) {
	svc := &mockBookService{
		deleteFunc: func(ctx context.Context, id int64) error {
			return nil
		},
	}
	router := setupBookRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/book/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Book deleted successfully"}`, w.Body.String())
}
