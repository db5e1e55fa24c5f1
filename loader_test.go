package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alc6/schemagen/generators/postgres"
)

func writeSchemaFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseSchemaFile(t *testing.T) {
	path := writeSchemaFile(t, `
tables:
  - name: users
    columns:
      - name: id
        kind: primary
      - name: email
        kind: varchar
        size: 255
        unique: true
        indexed: true
      - name: bio
        kind: text
        nullable: true
      - name: created_at
        kind: timestamp
        default: CURRENT_TIMESTAMP
  - name: posts
    if_not_exists: true
    columns:
      - name: id
        kind: primary
      - name: user_id
        kind: foreign
        references: users
      - name: tags
        kind: array
        element: text
        nullable: true
drop_tables:
  - name: legacy
    if_exists: true
rename_tables:
  - from: old_events
    to: events
`)

	m, err := ParseSchemaFile(path)
	require.NoError(t, err)

	stmts, err := m.Make(postgres.New())
	require.NoError(t, err)
	require.Len(t, stmts, 5)

	assert.Contains(t, stmts[0], `CREATE TABLE "users"`)
	assert.Contains(t, stmts[0], `"id" SERIAL PRIMARY KEY`)
	assert.Contains(t, stmts[0], `"email" VARCHAR(255) NOT NULL UNIQUE`)
	assert.Contains(t, stmts[0], `"created_at" TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP`)
	assert.Contains(t, stmts[1], `CREATE UNIQUE INDEX "idx_users_email"`)
	assert.Contains(t, stmts[2], `CREATE TABLE IF NOT EXISTS "posts"`)
	assert.Contains(t, stmts[2], `"user_id" INTEGER REFERENCES "users"`)
	assert.Contains(t, stmts[2], `"tags" TEXT[]`)
	assert.Equal(t, `DROP TABLE IF EXISTS "legacy";`, stmts[3])
	assert.Equal(t, `ALTER TABLE "old_events" RENAME TO "events";`, stmts[4])
}

func TestParseSchemaFileAlterTables(t *testing.T) {
	path := writeSchemaFile(t, `
alter_tables:
  - name: users
    add_columns:
      - name: age
        kind: integer
        nullable: true
        indexed: true
    drop_columns:
      - bio
    rename_columns:
      - from: email
        to: mail
`)

	m, err := ParseSchemaFile(path)
	require.NoError(t, err)

	stmts, err := m.Make(postgres.New())
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	assert.Equal(t, `ALTER TABLE "users" ADD COLUMN "age" INTEGER, DROP COLUMN "bio";`, stmts[0])
	assert.Equal(t, `ALTER TABLE "users" RENAME COLUMN "email" TO "mail";`, stmts[1])
	assert.Equal(t, `CREATE INDEX "idx_users_age" ON "users" ("age");`, stmts[2])
}

func TestParseSchemaFileDefaultConversion(t *testing.T) {
	path := writeSchemaFile(t, `
tables:
  - name: settings
    columns:
      - name: retries
        kind: integer
        default: "3"
      - name: ratio
        kind: double
        default: "0.5"
      - name: enabled
        kind: boolean
        default: "true"
`)

	m, err := ParseSchemaFile(path)
	require.NoError(t, err)

	stmts, err := m.Make(postgres.New())
	require.NoError(t, err)
	assert.Contains(t, stmts[0], `"retries" INTEGER NOT NULL DEFAULT 3`)
	assert.Contains(t, stmts[0], `"ratio" DOUBLE PRECISION NOT NULL DEFAULT 0.5`)
	assert.Contains(t, stmts[0], `"enabled" BOOLEAN NOT NULL DEFAULT TRUE`)
}

func TestParseSchemaFileNestedArrayElement(t *testing.T) {
	path := writeSchemaFile(t, `
tables:
  - name: grids
    columns:
      - name: cells
        kind: array
        element: array of integer
        nullable: true
`)

	m, err := ParseSchemaFile(path)
	require.NoError(t, err)

	stmts, err := m.Make(postgres.New())
	require.NoError(t, err)
	assert.Contains(t, stmts[0], `"cells" INTEGER[][]`)
}

func TestParseSchemaFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			"unknown_kind",
			"tables:\n  - name: t\n    columns:\n      - name: c\n        kind: blob\n",
			"unknown column kind",
		},
		{
			"missing_kind",
			"tables:\n  - name: t\n    columns:\n      - name: c\n",
			"missing column kind",
		},
		{
			"missing_column_name",
			"tables:\n  - name: t\n    columns:\n      - kind: text\n",
			"column without a name",
		},
		{
			"missing_table_name",
			"tables:\n  - columns:\n      - name: c\n        kind: text\n",
			"table without a name",
		},
		{
			"foreign_without_references",
			"tables:\n  - name: t\n    columns:\n      - name: c\n        kind: foreign\n",
			"requires references",
		},
		{
			"array_without_element",
			"tables:\n  - name: t\n    columns:\n      - name: c\n        kind: array\n",
			"requires element",
		},
		{
			"bad_integer_default",
			"tables:\n  - name: t\n    columns:\n      - name: c\n        kind: integer\n        default: abc\n",
			"invalid default",
		},
		{
			"self_rename",
			"rename_tables:\n  - from: same\n    to: same\n",
			"invalid table rename",
		},
		{
			"unknown_field",
			"tables:\n  - name: t\n    colunms: []\n",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSchemaFile(t, tt.content)

			_, err := ParseSchemaFile(path)
			require.Error(t, err)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestParseSchemaFileNotFound(t *testing.T) {
	_, err := ParseSchemaFile("/non/existent/schema.yaml")
	assert.Error(t, err)
}
