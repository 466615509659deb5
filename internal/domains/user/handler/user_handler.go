package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookmanager-backend/internal/domains/user"
	"bookmanager-backend/internal/shared/middleware"
	"bookmanager-backend/internal/shared/response"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// Register - POST /user/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailAlreadyExists), errors.Is(err, user.ErrUsernameAlreadyExists):
			response.Conflict(c, err.Error())
		default:
			response.ErrorResponse(c, user.ToHTTPStatus(err), "BAD_REQUEST", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, u)
}

// Login - POST /auth/jwt/create
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tokens, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidCredentials):
			response.Unauthorized(c, err.Error())
		case user.ToHTTPStatus(err) == http.StatusInternalServerError:
			response.InternalServerError(c, "login failed")
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Refresh - POST /auth/jwt/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req user.RefreshRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidCredentials):
			response.Unauthorized(c, err.Error())
		case user.ToHTTPStatus(err) == http.StatusInternalServerError:
			response.InternalServerError(c, "token refresh failed")
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Me - GET /user/me
// Requires the auth middleware to have set the user id.
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := c.Get(middleware.ContextUserID)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), userID.(int64))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, u)
}
