package handler

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmanager-backend/internal/domains/book"
)

type mockImportService struct {
	importFunc func(ctx context.Context, data []byte, contentType string) (int, error)
}

func (m *mockImportService) Import(ctx context.Context, data []byte, contentType string) (int, error) {
	if m.importFunc != nil {
		return m.importFunc(ctx, data, contentType)
	}
	return 0, errors.New("not implemented")
}

func setupImportRouter(svc book.ImportService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewImportHandler(svc)
	router := gin.New()
	router.POST("/book/import", h.ImportBooks)
	return router
}

// multipartUpload builds a multipart body with one "file" part carrying the
// given declared content type.
func multipartUpload(t *testing.T, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="books.dat"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestImportBooks(t *testing.T) {
	var gotContentType string
	var gotData []byte
	svc := &mockImportService{
		importFunc: func(ctx context.Context, data []byte, contentType string) (int, error) {
			gotData = data
			gotContentType = contentType
			return 2, nil
		},
	}
	router := setupImportRouter(svc)

	payload := []byte(`[{"title":"A","genre":"Fiction","published_year":1900,"author_id":1}]`)
	body, formContentType := multipartUpload(t, book.ContentTypeJSON, payload)

	req := httptest.NewRequest(http.MethodPost, "/book/import", body)
	req.Header.Set("Content-Type", formContentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message": "Books imported successfully", "imported": 2}`, w.Body.String())
	assert.Equal(t, book.ContentTypeJSON, gotContentType)
	assert.Equal(t, payload, gotData)
}

func TestImportBooks_MissingFile(t *testing.T) {
	router := setupImportRouter(&mockImportService{})

	req := httptest.NewRequest(http.MethodPost, "/book/import", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportBooks_UnsupportedType(t *testing.T) {
	svc := &mockImportService{
		importFunc: func(ctx context.Context, data []byte, contentType string) (int, error) {
			return 0, book.ErrUnsupportedFileType
		},
	}
	router := setupImportRouter(svc)

	body, formContentType := multipartUpload(t, "application/xml", []byte("<books/>"))

	req := httptest.NewRequest(http.MethodPost, "/book/import", body)
	req.Header.Set("Content-Type", formContentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportBooks_RowErrorDetails(t *testing.T) {
	svc := &mockImportService{
		importFunc: func(ctx context.Context, data []byte, contentType string) (int, error) {
			return 0, &book.RowError{Row: 3, Field: "genre", Message: "invalid genre: Romance"}
		},
	}
	router := setupImportRouter(svc)

	body, formContentType := multipartUpload(t, book.ContentTypeCSV,
		[]byte("title,genre,published_year,author_id\nA,Romance,1900,1\n"))

	req := httptest.NewRequest(http.MethodPost, "/book/import", body)
	req.Header.Set("Content-Type", formContentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"row":3`)
	assert.Contains(t, w.Body.String(), `"field":"genre"`)
}

func TestImportBooks_StoreFailure(t *testing.T) {
	svc := &mockImportService{
		importFunc: func(ctx context.Context, data []byte, contentType string) (int, error) {
			return 0, errors.New("connection reset")
		},
	}
	router := setupImportRouter(svc)

	body, formContentType := multipartUpload(t, book.ContentTypeJSON, []byte(`[]`))

	req := httptest.NewRequest(http.MethodPost, "/book/import", body)
	req.Header.Set("Content-Type", formContentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
}
