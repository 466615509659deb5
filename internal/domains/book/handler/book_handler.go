package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookmanager-backend/internal/domains/book"
	"bookmanager-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// Create - POST /book/
func (h *BookHandler) Create(c *gin.Context) {
	var req book.BookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	b, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, book.ToHTTPStatus(err), "BAD_REQUEST", err.Error())
		return
	}

	c.JSON(http.StatusCreated, b)
}

// List - GET /book/?title=&genre=&author_id=&page=1&page_size=10&sort_by=title&sort_order=asc
// A page past the end of the result set returns an empty array, not an error.
func (h *BookHandler) List(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	books, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		// Filter validation failures land here; the allow-list check
		// happens before the query builder ever sees the values.
		response.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, books)
}

// GetByID - GET /book/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, b)
}

// Update - PUT /book/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req book.BookRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.ErrorResponse(c, book.ToHTTPStatus(err), "BAD_REQUEST", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, b)
}

// Delete - DELETE /book/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, err.Error())
		} else {
			response.InternalServerError(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return 0, false
	}
	return id, true
}

// parseFilter reads the listing query parameters. Values that are not even
// the right type are rejected here; range and allow-list checks live in
// Filter.Validate.
func parseFilter(c *gin.Context) (book.Filter, bool) {
	filter := book.NewFilter()

	filter.Title = c.Query("title")
	filter.Genre = c.Query("genre")

	if s := c.Query("author_id"); s != "" {
		authorID, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			response.BadRequest(c, "author_id must be an integer")
			return filter, false
		}
		filter.AuthorID = &authorID
	}

	if s := c.Query("page"); s != "" {
		page, err := strconv.Atoi(s)
		if err != nil {
			response.BadRequest(c, "page must be an integer")
			return filter, false
		}
		filter.Page = page
	}

	if s := c.Query("page_size"); s != "" {
		pageSize, err := strconv.Atoi(s)
		if err != nil {
			response.BadRequest(c, "page_size must be an integer")
			return filter, false
		}
		filter.PageSize = pageSize
	}

	if s := c.Query("sort_by"); s != "" {
		filter.SortBy = s
	}
	if s := c.Query("sort_order"); s != "" {
		filter.SortOrder = s
	}

	return filter, true
}
