package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"bookmanager-backend/internal/config"
	"bookmanager-backend/internal/infrastructure/database"
	"bookmanager-backend/pkg/jwt"

	"bookmanager-backend/internal/domains/author"
	authorHandler "bookmanager-backend/internal/domains/author/handler"
	authorRepo "bookmanager-backend/internal/domains/author/repository"
	authorService "bookmanager-backend/internal/domains/author/service"

	"bookmanager-backend/internal/domains/book"
	bookHandler "bookmanager-backend/internal/domains/book/handler"
	bookRepo "bookmanager-backend/internal/domains/book/repository"
	bookService "bookmanager-backend/internal/domains/book/service"

	"bookmanager-backend/internal/domains/user"
	userHandler "bookmanager-backend/internal/domains/user/handler"
	userRepo "bookmanager-backend/internal/domains/user/repository"
	userService "bookmanager-backend/internal/domains/user/service"
)

// Container holds every application dependency. It is the root of the
// dependency graph, built once at startup in strict order:
// config, then infrastructure, then repositories, services, handlers.
type Container struct {
	// Infrastructure - shared across all domains
	Config     *config.Config
	DB         *database.PostgresDB
	JWTManager *jwt.Manager

	// Repositories
	AuthorRepo author.Repository
	BookRepo   book.Repository
	UserRepo   user.Repository

	// Services
	AuthorService author.Service
	BookService   book.Service
	ImportService book.ImportService
	UserService   user.Service

	// HTTP handlers
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
	ImportHandler *bookHandler.ImportHandler
	UserHandler   *userHandler.UserHandler
}

// NewContainer builds and wires the whole dependency graph.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	log.Println("📋 Loading configuration...")
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	log.Println("🗄️  Connecting to PostgreSQL...")
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Println("✅ Database connected")

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	log.Println("📦 Initializing repositories...")
	c.initRepositories()

	log.Println("⚙️  Initializing services...")
	c.initServices()

	log.Println("🎯 Initializing handlers...")
	c.initHandlers()

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)
	c.ImportService = bookService.NewImportService(c.BookRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.ImportHandler = bookHandler.NewImportHandler(c.ImportService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// Cleanup releases container resources during graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	log.Println("✅ Container cleanup completed")
}
