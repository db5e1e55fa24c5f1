package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type Database struct {
	Container testcontainers.Container
	DB        *sql.DB
	ConnStr   string
}

func SetupPostgreSQL(ctx context.Context, image string) (*Database, error) {
	slog.Debug("starting postgresql container", "image", image)
	container, err := postgres.Run(ctx,
		image,
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}
	slog.Debug("got database connection string", "connStr", connStr)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("postgresql container ready")
	return &Database{
		Container: container,
		DB:        db,
		ConnStr:   connStr,
	}, nil
}

func (d *Database) Close(ctx context.Context) error {
	if d.DB != nil {
		d.DB.Close()
	}
	if d.Container != nil {
		return d.Container.Terminate(ctx)
	}
	return nil
}

// Apply executes rendered DDL statements in order. Execution stops at
// the first statement the backend rejects.
func (d *Database) Apply(statements []string) error {
	for i, stmt := range statements {
		slog.Debug("executing statement", "index", i, "sql", stmt)

		if _, err := d.DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute statement %d: %w", i, err)
		}
	}

	slog.Info("all statements applied successfully", "count", len(statements))

	return nil
}
