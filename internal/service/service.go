package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Kerhoff/todoweb/internal/metrics"
	"github.com/Kerhoff/todoweb/internal/models"
	"github.com/Kerhoff/todoweb/internal/repository"
	"github.com/Kerhoff/todoweb/internal/validation"
)

// Service is the business logic layer between the HTTP handlers and the
// todo store.
type Service struct {
	logger  *logrus.Logger
	metrics *metrics.Metrics
	Todos   repository.TodoRepository
}

// New creates a new Service. m may be nil.
func New(logger *logrus.Logger, todos repository.TodoRepository, m *metrics.Metrics) *Service {
	return &Service{logger: logger, metrics: m, Todos: todos}
}

// ListTodos returns every todo in insertion order
func (s *Service) ListTodos(ctx context.Context) ([]*models.Todo, error) {
	todos, err := s.Todos.GetAll(ctx)
	s.observe("list", err)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// AddTodo validates and stores a new todo
func (s *Service) AddTodo(ctx context.Context, description string) (*models.Todo, error) {
	if err := validation.Description(description); err != nil {
		s.observe("add", err)
		return nil, err
	}

	todo, err := s.Todos.Add(ctx, description)
	s.observe("add", err)
	if err != nil {
		return nil, fmt.Errorf("failed to add todo: %w", err)
	}

	s.logger.WithField("todo_id", todo.ID).Info("Todo created")
	return todo, nil
}

// UpdateTodo replaces the description of an existing todo
func (s *Service) UpdateTodo(ctx context.Context, id int64, description string) error {
	if err := validation.Description(description); err != nil {
		s.observe("update", err)
		return err
	}

	err := s.Todos.Update(ctx, id, description)
	s.observe("update", err)
	if err != nil {
		return fmt.Errorf("failed to update todo %d: %w", id, err)
	}

	s.logger.WithField("todo_id", id).Info("Todo updated")
	return nil
}

// RemoveTodo deletes an existing todo
func (s *Service) RemoveTodo(ctx context.Context, id int64) error {
	err := s.Todos.Remove(ctx, id)
	s.observe("remove", err)
	if err != nil {
		return fmt.Errorf("failed to remove todo %d: %w", id, err)
	}

	s.logger.WithField("todo_id", id).Info("Todo removed")
	return nil
}

func (s *Service) observe(operation string, err error) {
	s.metrics.ObserveOperation(operation, result(err))
}

func result(err error) string {
	if err == nil {
		return "ok"
	}
	if errors.Is(err, repository.ErrNotFound) {
		return "not_found"
	}
	if _, ok := validation.AsValidationError(err); ok {
		return "invalid"
	}
	return "error"
}
