package repository

import (
	"context"
	"errors"

	"github.com/Kerhoff/todoweb/internal/models"
)

// ErrNotFound is returned when no todo exists for the requested id
var ErrNotFound = errors.New("todo not found")

// TodoRepository defines the interface for todo data operations
type TodoRepository interface {
	GetAll(ctx context.Context) ([]*models.Todo, error)
	Add(ctx context.Context, description string) (*models.Todo, error)
	Update(ctx context.Context, id int64, description string) error
	Remove(ctx context.Context, id int64) error
}
