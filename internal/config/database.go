package config

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/Kerhoff/todoweb/internal/repository"
	"github.com/Kerhoff/todoweb/internal/repository/migrations"
	"github.com/Kerhoff/todoweb/internal/repository/postgres"
	"github.com/Kerhoff/todoweb/internal/repository/sqlite"
)

// Database holds database connection and configuration
type Database struct {
	*sql.DB
	driver string
	logger *logrus.Logger
}

// NewDatabase creates a new database connection
func NewDatabase(driver, databaseURL string, logger *logrus.Logger) (*Database, error) {
	db, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	switch driver {
	case DriverPostgres:
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	case DriverSQLite:
		// SQLite allows a single writer
		db.SetMaxOpenConns(1)
	default:
		db.Close()
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.WithField("driver", driver).Info("Database connection established successfully")

	return &Database{
		DB:     db,
		driver: driver,
		logger: logger,
	}, nil
}

// Migrate runs database migrations
func (d *Database) Migrate() error {
	version, err := migrations.Up(d.DB, d.driver)
	if err != nil {
		return err
	}

	d.logger.WithField("version", version).Info("Database migrations completed successfully")
	return nil
}

// TodoRepository returns the todo store matching the database driver
func (d *Database) TodoRepository() repository.TodoRepository {
	if d.driver == DriverSQLite {
		return sqlite.NewTodoRepository(d.DB)
	}
	return postgres.NewTodoRepository(d.DB)
}

// Close closes the database connection
func (d *Database) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
