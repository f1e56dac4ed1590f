package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kerhoff/todoweb/internal/repository"
)

func setupMock(t *testing.T) (repository.TodoRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewTodoRepository(db), mock
}

func TestGetAll(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, description FROM todos ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description"}).
			AddRow(1, "Buy milk").
			AddRow(2, "Walk the dog"))

	todos, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, int64(1), todos[0].ID)
	assert.Equal(t, "Walk the dog", todos[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllEmpty(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(`SELECT id, description FROM todos`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "description"}))

	todos, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestGetAllQueryError(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(`SELECT id, description FROM todos`).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query todos")
}

func TestAdd(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO todos (description) VALUES ($1) RETURNING id`)).
		WithArgs("Buy milk").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	todo, err := repo.Add(context.Background(), "Buy milk")
	require.NoError(t, err)
	assert.Equal(t, int64(42), todo.ID)
	assert.Equal(t, "Buy milk", todo.Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantNotFound bool
	}{
		{name: "existing todo", rowsAffected: 1},
		{name: "unknown todo", rowsAffected: 0, wantNotFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupMock(t)

			mock.ExpectExec(regexp.QuoteMeta(`UPDATE todos SET description = $2 WHERE id = $1`)).
				WithArgs(int64(3), "New text").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err := repo.Update(context.Background(), 3, "New text")
			if tt.wantNotFound {
				assert.ErrorIs(t, err, repository.ErrNotFound)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantNotFound bool
	}{
		{name: "existing todo", rowsAffected: 1},
		{name: "unknown todo", rowsAffected: 0, wantNotFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupMock(t)

			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM todos WHERE id = $1`)).
				WithArgs(int64(9)).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err := repo.Remove(context.Background(), 9)
			if tt.wantNotFound {
				assert.ErrorIs(t, err, repository.ErrNotFound)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRemoveExecError(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectExec(`DELETE FROM todos`).WillReturnError(errors.New("boom"))

	err := repo.Remove(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
	assert.Contains(t, err.Error(), "failed to delete todo")
}
