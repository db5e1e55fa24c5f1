package main

import (
	"context"

	"github.com/alc6/schemagen/schema"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// SchemaLoader handles reading schema definition files
type SchemaLoader interface {
	// LoadSchema parses a schema definition file into a migration
	LoadSchema(path string) (*schema.Migration, error)
}

// SchemaRenderer turns a migration into DDL statements for one dialect
type SchemaRenderer interface {
	// Render validates the migration and returns executable statements
	Render(m *schema.Migration) ([]string, error)
	// Dialect returns the dialect name for identification
	Dialect() string
}

// DatabaseVerifier executes rendered statements against a throwaway
// database to prove the backend accepts them
type DatabaseVerifier interface {
	// Setup creates and initializes the database
	Setup(ctx context.Context) error
	// Close cleans up database resources
	Close(ctx context.Context) error
	// Apply executes the statements in order
	Apply(statements []string) error
}
