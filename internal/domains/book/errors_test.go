package book

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	badReq := BookRequest{Title: "", Genre: "Poetry", PublishedYear: 1700}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ErrBookNotFound, 404},
		{"author missing", ErrAuthorNotFound, 400},
		{"unsupported file type", ErrUnsupportedFileType, 400},
		{"too many rows", ErrTooManyRows, 400},
		{"dto validation failure", badReq.Validate(), 400},
		{"unknown error", errors.New("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToHTTPStatus(tt.err))
		})
	}
}
