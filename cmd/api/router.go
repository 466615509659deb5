package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookmanager-backend/internal/shared/middleware"
	"bookmanager-backend/pkg/container"
)

// SetupRouter wires all HTTP routes. Reads are public; every write goes
// through the JWT auth middleware.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	auth := middleware.AuthMiddleware(c.JWTManager)

	router.GET("/api/health", healthCheckHandler(c))

	setupAuthRoutes(router, c)
	setupUserRoutes(router, c, auth)
	setupAuthorRoutes(router, c, auth)
	setupBookRoutes(router, c, auth)

	return router
}

func setupAuthRoutes(router *gin.Engine, c *container.Container) {
	jwtGroup := router.Group("/auth/jwt")
	{
		jwtGroup.POST("/create", c.UserHandler.Login)
		jwtGroup.POST("/refresh", c.UserHandler.Refresh)
	}
}

func setupUserRoutes(router *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	users := router.Group("/user")
	{
		users.POST("/register", c.UserHandler.Register)
		users.GET("/me", auth, c.UserHandler.Me)
	}
}

func setupAuthorRoutes(router *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	authors := router.Group("/author")
	{
		authors.GET("/", c.AuthorHandler.GetAll)
		authors.GET("/:id", c.AuthorHandler.GetByID)

		authors.POST("/", auth, c.AuthorHandler.Create)
		authors.PUT("/:id", auth, c.AuthorHandler.Update)
		authors.DELETE("/:id", auth, c.AuthorHandler.Delete)
	}
}

func setupBookRoutes(router *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	books := router.Group("/book")
	{
		books.GET("/", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.GetByID)

		books.POST("/", auth, c.BookHandler.Create)
		books.PUT("/:id", auth, c.BookHandler.Update)
		books.DELETE("/:id", auth, c.BookHandler.Delete)
		books.POST("/import", auth, c.ImportHandler.ImportBooks)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
