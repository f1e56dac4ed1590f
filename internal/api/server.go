package api

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Kerhoff/todoweb/internal/flash"
	"github.com/Kerhoff/todoweb/internal/handlers"
	"github.com/Kerhoff/todoweb/internal/metrics"
	"github.com/Kerhoff/todoweb/internal/models"
	"github.com/Kerhoff/todoweb/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// SessionName is the cookie holding flash messages
const SessionName = "todoweb_session"

// Pinger reports whether the database is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Options configures the parts of the server that differ per environment.
type Options struct {
	SessionSecret []byte
	SecureCookies bool
	Metrics       *metrics.Metrics
}

// Server serves the todo web UI and its small JSON API.
type Server struct {
	svc    *service.Service
	db     Pinger
	logger *logrus.Logger
	opts   Options
	router *gin.Engine
}

// NewServer creates a Server, registers all routes, and returns it.
func NewServer(svc *service.Service, db Pinger, logger *logrus.Logger, opts Options) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{svc: svc, db: db, logger: logger, opts: opts, router: gin.New()}
	s.router.SetHTMLTemplate(tmpl)
	s.routes()
	return s, nil
}

// Handler returns the http.Handler that can be passed to http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ---------------------------------------------------------------------------
// Routes
// ---------------------------------------------------------------------------

func (s *Server) routes() {
	s.router.Use(recovery(s.logger), requestLogger(s.logger), s.opts.Metrics.Middleware())

	s.router.GET("/healthz", s.handleHealth)

	// API – Todos
	s.router.GET("/api/todos", s.handleGetTodos)

	// Web UI
	web := s.router.Group("/", flash.Middleware(SessionName, s.opts.SessionSecret, s.opts.SecureCookies))
	validate := handlers.ValidateTodoRequest(s.logger)

	web.GET("/", handlers.NewHomePage(s.svc, s.logger).Handle)
	web.POST("/todos/add", validate, handlers.NewAddTodo(s.svc, s.logger).Handle)
	web.POST("/todos/edit/:id", validate, handlers.NewEditTodo(s.svc, s.logger).Handle)
	web.POST("/todos/remove/:id", handlers.NewRemoveTodo(s.svc, s.logger).Handle)
}

// ---------------------------------------------------------------------------
// Health
// ---------------------------------------------------------------------------

func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.WithError(err).Warn("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ---------------------------------------------------------------------------
// Todos
// ---------------------------------------------------------------------------

func (s *Server) handleGetTodos(c *gin.Context) {
	todos, err := s.svc.ListTodos(c.Request.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to get todos")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get todos"})
		return
	}
	if todos == nil {
		todos = []*models.Todo{}
	}
	c.JSON(http.StatusOK, todos)
}
