package main

import (
	"context"
	"fmt"

	"github.com/alc6/schemagen/generators/postgres"
	"github.com/alc6/schemagen/schema"
)

type FileSchemaLoader struct{}

func NewFileSchemaLoader() SchemaLoader {
	return &FileSchemaLoader{}
}

func (l *FileSchemaLoader) LoadSchema(path string) (*schema.Migration, error) {
	return ParseSchemaFile(path)
}

type PostgresRenderer struct {
	gen postgres.Generator
}

func NewPostgresRenderer() SchemaRenderer {
	return &PostgresRenderer{gen: postgres.New()}
}

func (r *PostgresRenderer) Render(m *schema.Migration) ([]string, error) {
	return m.Make(r.gen)
}

func (r *PostgresRenderer) Dialect() string {
	return "postgres"
}

// NewRenderer resolves a dialect name to its renderer. PostgreSQL is
// the only backend shipped so far.
func NewRenderer(dialect string) (SchemaRenderer, error) {
	switch dialect {
	case "postgres", "postgresql":
		return NewPostgresRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown dialect: %s", dialect)
	}
}

type PostgreSQLVerifier struct {
	image string
	db    *Database
}

func NewPostgreSQLVerifier(image string) DatabaseVerifier {
	return &PostgreSQLVerifier{image: image}
}

func (v *PostgreSQLVerifier) Setup(ctx context.Context) error {
	db, err := SetupPostgreSQL(ctx, v.image)
	if err != nil {
		return err
	}
	v.db = db
	return nil
}

func (v *PostgreSQLVerifier) Close(ctx context.Context) error {
	if v.db == nil {
		return nil
	}
	return v.db.Close(ctx)
}

func (v *PostgreSQLVerifier) Apply(statements []string) error {
	if v.db == nil {
		return fmt.Errorf("verifier is not set up")
	}
	return v.db.Apply(statements)
}
