package httpapi

import (
	"context"
	"errors"
	"log"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/repository"
)

// Server bundles dependencies and implements the HTTP handlers.
type Server struct {
	Users  repository.UserRepositoryI
	Tasks  repository.TaskRepositoryI
	Hasher *auth.PasswordHasher
	// Tokens is nil unless a JWT secret is configured.
	Tokens *auth.TokenManager
	// Ping reports database health for /health.
	Ping      func(context.Context) error
	StaticDir string
}

// NewServer wires a Server from configuration.
func NewServer(cfg *config.Config, users repository.UserRepositoryI, tasks repository.TaskRepositoryI, ping func(context.Context) error) *Server {
	if cfg == nil {
		panic("config is required")
	}
	s := &Server{
		Users:     users,
		Tasks:     tasks,
		Hasher:    auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		Ping:      ping,
		StaticDir: cfg.HTTP.StaticDir,
	}
	if cfg.Auth.TokensEnabled() {
		s.Tokens = auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	}
	return s
}

// NewApp builds the Fiber application with all routes, without listening.
func NewApp(s *Server) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "taskboard",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New())

	app.Get("/health", s.Health)

	api := app.Group("/api")
	api.Post("/register", s.Register)
	api.Post("/login", s.Login)

	tasks := api.Group("/tasks", auth.OptionalBearer(s.Tokens))
	tasks.Get("", s.ListTasks)
	tasks.Post("", s.CreateTask)
	tasks.Put("/:id", s.UpdateTask)
	tasks.Delete("/:id", s.DeleteTask)

	if s.StaticDir != "" {
		app.Static("/", s.StaticDir)
	}
	return app
}

// Health reports whether the database is reachable.
func (s *Server) Health(c *fiber.Ctx) error {
	if s.Ping != nil {
		if err := s.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":   "unhealthy",
				"database": err.Error(),
			})
		}
	}
	return c.JSON(fiber.Map{
		"status":   "healthy",
		"database": "ok",
	})
}

// Start serves the API on cfg.HTTP.Address and returns a shutdown function.
func Start(cfg *config.Config, s *Server) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}

	addr := cfg.HTTP.Address
	if addr == "" {
		addr = ":5000"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	app := NewApp(s)
	go func() {
		if err := app.Listener(lis); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	return func(ctx context.Context) error {
		log.Println("[api] Shutting down HTTP server...")
		return app.ShutdownWithContext(ctx)
	}, nil
}

// errorHandler renders every error as {"error": message}. Errors that are
// not *fiber.Error are logged and hidden from the client.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		log.Printf("[api] %s %s request_id=%v: %v", c.Method(), c.Path(), c.Locals("requestid"), err)
	}

	return c.Status(code).JSON(ErrorResponse{Error: message})
}
