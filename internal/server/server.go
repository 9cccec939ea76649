package server

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"task-manager/internal/repository"
	"task-manager/internal/service"
	"task-manager/internal/session"
)

const sessionCookie = "session"

// Server wires the HTTP surface to the auth and task services.
type Server struct {
	echo     *echo.Echo
	users    *repository.UserRepository
	auth     *service.AuthService
	tasks    *service.TaskService
	sessions *session.Manager
}

func New(users *repository.UserRepository, auth *service.AuthService, tasks *service.TaskService, sessions *session.Manager, allowedOrigins []string) (*Server, error) {
	renderer, err := newRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = errorHandler
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
	}))

	s := &Server{echo: e, users: users, auth: auth, tasks: tasks, sessions: sessions}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	e := s.echo
	e.Use(s.resolveUser)

	e.GET("/", s.index)
	e.POST("/register", s.register)
	e.POST("/login", s.login)
	e.GET("/logout", s.logout)

	authed := e.Group("", s.requireUser)
	authed.POST("/add", s.addTask)
	authed.GET("/complete/:id", s.completeTask)
	authed.GET("/delete/:id", s.deleteTask)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.echo }

// Start begins serving on addr and blocks until Shutdown.
func (s *Server) Start(addr string) error { return s.echo.Start(addr) }

func (s *Server) Shutdown(ctx context.Context) error { return s.echo.Shutdown(ctx) }

// errorHandler maps service errors onto HTTP statuses and keeps everything
// unexpected behind a generic 500 so no internal detail reaches the client.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "an unexpected error occurred"

	var httpErr *echo.HTTPError
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		code, message = http.StatusUnauthorized, "authentication required"
	case errors.Is(err, service.ErrTaskNotFound):
		code, message = http.StatusNotFound, "task not found"
	case errors.Is(err, service.ErrUsernameTaken):
		code, message = http.StatusBadRequest, "username already taken"
	case errors.Is(err, service.ErrValidation):
		code, message = http.StatusBadRequest, err.Error()
	case errors.As(err, &httpErr):
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	default:
		log.Printf("request failed: %v", err)
	}

	if err := c.JSON(code, echo.Map{"message": message}); err != nil {
		log.Printf("write error response: %v", err)
	}
}
