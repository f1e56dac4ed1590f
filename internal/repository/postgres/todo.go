package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kerhoff/todoweb/internal/models"
	"github.com/Kerhoff/todoweb/internal/repository"
)

type todoRepository struct {
	db *sql.DB
}

func NewTodoRepository(db *sql.DB) repository.TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) GetAll(ctx context.Context) ([]*models.Todo, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, description FROM todos ORDER BY id`)
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
	todo := &models.Todo{Description: description}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO todos (description) VALUES ($1) RETURNING id`,
		description,
	).Scan(&todo.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}
	return todo, nil
}

func (r *todoRepository) Update(ctx context.Context, id int64, description string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE todos SET description = $2 WHERE id = $1`, id, description)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	return checkAffected(result, id)
}

func (r *todoRepository) Remove(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return checkAffected(result, id)
}

func checkAffected(result sql.Result, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("todo %d: %w", id, repository.ErrNotFound)
	}
	return nil
}
