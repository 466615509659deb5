package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookmanager-backend/internal/domains/book"
	"bookmanager-backend/internal/shared/response"
)

type ImportHandler struct {
	service book.ImportService
}

func NewImportHandler(svc book.ImportService) *ImportHandler {
	return &ImportHandler{service: svc}
}

// ImportBooks - POST /book/import
// Accepts a multipart "file" declared as application/json or text/csv.
// The upload is all-or-nothing: one bad row and nothing persists.
func (h *ImportHandler) ImportBooks(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required (multipart/form-data)")
		return
	}

	contentType := file.Header.Get("Content-Type")

	log.Info().
		Str("file_name", file.Filename).
		Str("content_type", contentType).
		Int64("file_size", file.Size).
		Msg("Received bulk import request")

	src, err := file.Open()
	if err != nil {
		response.InternalServerError(c, "failed to open uploaded file")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		response.InternalServerError(c, "failed to read uploaded file")
		return
	}

	imported, err := h.service.Import(c.Request.Context(), data, contentType)
	if err != nil {
		var rowErr *book.RowError
		if errors.As(err, &rowErr) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "IMPORT_FAILED", rowErr.Error(), rowErr)
			return
		}

		status := book.ToHTTPStatus(err)
		if status == http.StatusInternalServerError {
			// Store failure mid-batch: the transaction already rolled
			// back, report it without leaking driver internals.
			response.InternalServerError(c, "bulk import failed")
			return
		}
		response.ErrorResponse(c, status, "IMPORT_FAILED", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Books imported successfully",
		"imported": imported,
	})
}
