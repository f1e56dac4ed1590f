package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/Kerhoff/todoweb/internal/models"
	"github.com/Kerhoff/todoweb/internal/repository"
)

type todoRepository struct {
	db *sql.DB
}

// NewTodoRepository returns a TodoRepository backed by an SQLite database
func NewTodoRepository(db *sql.DB) repository.TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) GetAll(ctx context.Context) ([]*models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, description FROM todos ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer rows.Close()

	todos := make([]*models.Todo, 0)
	for rows.Next() {
		todo := &models.Todo{}
		if err := rows.Scan(&todo.ID, &todo.Description); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

func (r *todoRepository) Add(ctx context.Context, description string) (*models.Todo, error) {
	result, err := r.db.ExecContext(ctx, `INSERT INTO todos (description) VALUES (?)`, description)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return &models.Todo{ID: id, Description: description}, nil
}

func (r *todoRepository) Update(ctx context.Context, id int64, description string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE todos SET description = ? WHERE id = ?`, description, id)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	return validateRowsAffected(result, id)
}

func (r *todoRepository) Remove(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return validateRowsAffected(result, id)
}

// validateRowsAffected maps a zero-row write to ErrNotFound
func validateRowsAffected(result sql.Result, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("todo %d: %w", id, repository.ErrNotFound)
	}
	return nil
}
