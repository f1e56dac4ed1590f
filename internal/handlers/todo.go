package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Kerhoff/todoweb/internal/flash"
	"github.com/Kerhoff/todoweb/internal/repository"
	"github.com/Kerhoff/todoweb/internal/service"
	"github.com/Kerhoff/todoweb/internal/validation"
)

const (
	// HomePath is where every mutation redirects to
	HomePath = "/"

	// IndexTemplate is the template rendered for the home page
	IndexTemplate = "index.html"

	msgAdded       = "Todo successfully added to list."
	msgUpdated     = "Todo successfully updated."
	msgRemoved     = "Todo successfully removed."
	msgNotFound    = "The requested todo does not exist."
	msgUnavailable = "Something went wrong, please try again."
)

// base holds what every todo handler needs
type base struct {
	svc    *service.Service
	logger *logrus.Logger
}

// finish turns the outcome of a mutation into a flash message and redirects home
func (b base) finish(c *gin.Context, err error, success string) {
	if err == nil {
		if ferr := flash.Success(c, success); ferr != nil {
			b.logger.WithError(ferr).Error("failed to store success message")
		}
	} else {
		if ferr := flash.Error(c, b.userMessage(c, err)); ferr != nil {
			b.logger.WithError(ferr).Error("failed to store error message")
		}
	}
	c.Redirect(http.StatusSeeOther, HomePath)
}

// userMessage maps an error to the text shown to the visitor. Unexpected
// errors are logged and replaced by a generic message.
func (b base) userMessage(c *gin.Context, err error) string {
	if ve, ok := validation.AsValidationError(err); ok {
		return ve.Message()
	}
	if errors.Is(err, repository.ErrNotFound) {
		return msgNotFound
	}
	b.logger.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}).Error("todo request failed")
	return msgUnavailable
}

// pathID extracts the :id path parameter. Anything that is not a positive
// integer cannot name a stored todo and is reported as ErrNotFound.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, repository.ErrNotFound
	}
	return id, nil
}

// ---------------------------------------------------------------------------
// HomePage – GET /
// ---------------------------------------------------------------------------

// HomePage renders the todo list together with pending flash messages.
type HomePage struct {
	base
}

// NewHomePage creates a new HomePage handler.
func NewHomePage(svc *service.Service, logger *logrus.Logger) *HomePage {
	return &HomePage{base{svc: svc, logger: logger}}
}

// Handle processes GET /.
func (h *HomePage) Handle(c *gin.Context) {
	todos, err := h.svc.ListTodos(c.Request.Context())

	messages, ferr := flash.Pop(c)
	if ferr != nil {
		h.logger.WithError(ferr).Error("failed to clear flash messages")
	}
	if err != nil {
		h.logger.WithError(err).Error("failed to list todos")
		messages.Error = append(messages.Error, msgUnavailable)
	}

	c.HTML(http.StatusOK, IndexTemplate, gin.H{
		"todos":   todos,
		"success": messages.Success,
		"error":   messages.Error,
	})
}

// ---------------------------------------------------------------------------
// AddTodo – POST /todos/add
// ---------------------------------------------------------------------------

// AddTodo stores the description accepted by ValidateTodoRequest.
type AddTodo struct {
	base
}

// NewAddTodo creates a new AddTodo handler.
func NewAddTodo(svc *service.Service, logger *logrus.Logger) *AddTodo {
	return &AddTodo{base{svc: svc, logger: logger}}
}

// Handle processes POST /todos/add.
func (h *AddTodo) Handle(c *gin.Context) {
	_, err := h.svc.AddTodo(c.Request.Context(), c.GetString(DescriptionKey))
	h.finish(c, err, msgAdded)
}

// ---------------------------------------------------------------------------
// EditTodo – POST /todos/edit/:id
// ---------------------------------------------------------------------------

// EditTodo replaces the description of an existing todo.
type EditTodo struct {
	base
}

// NewEditTodo creates a new EditTodo handler.
func NewEditTodo(svc *service.Service, logger *logrus.Logger) *EditTodo {
	return &EditTodo{base{svc: svc, logger: logger}}
}

// Handle processes POST /todos/edit/:id.
func (h *EditTodo) Handle(c *gin.Context) {
	id, err := pathID(c)
	if err == nil {
		err = h.svc.UpdateTodo(c.Request.Context(), id, c.GetString(DescriptionKey))
	}
	h.finish(c, err, msgUpdated)
}

// ---------------------------------------------------------------------------
// RemoveTodo – POST /todos/remove/:id
// ---------------------------------------------------------------------------

// RemoveTodo deletes an existing todo.
type RemoveTodo struct {
	base
}

// NewRemoveTodo creates a new RemoveTodo handler.
func NewRemoveTodo(svc *service.Service, logger *logrus.Logger) *RemoveTodo {
	return &RemoveTodo{base{svc: svc, logger: logger}}
}

// Handle processes POST /todos/remove/:id.
func (h *RemoveTodo) Handle(c *gin.Context) {
	id, err := pathID(c)
	if err == nil {
		err = h.svc.RemoveTodo(c.Request.Context(), id)
	}
	h.finish(c, err, msgRemoved)
}
