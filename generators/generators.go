// Package generators defines the contracts a SQL dialect implements to
// turn dialect-neutral column descriptions into DDL syntax.
//
// The surface is split in two: DatabaseGenerator covers table-structure
// statements, TableGenerator covers column-level fragments. They are
// deliberately separate interfaces so a dialect can share one side with
// another dialect while varying the other (two backends with identical
// ALTER syntax but different type names, for example).
//
// Every operation is a pure function from identifiers (and, for Column
// and AddColumn, a configured column type) to a syntax string. Nothing
// here touches a database connection, and statement ordering is always
// the caller's responsibility.
package generators

import "github.com/alc6/schemagen/types"

// DatabaseGenerator renders table-structure statements for one backend.
//
// Implementations may assume names are non-empty, backend-legal
// identifiers; rejecting malformed names belongs to the layer that
// collects them. RenameTable with oldName == newName is undefined.
type DatabaseGenerator interface {
	// CreateTable renders the opening fragment of a CREATE TABLE
	// statement; the column body is composed by the caller.
	CreateTable(name string) string

	// CreateTableIfNotExists is CreateTable guarded by the backend's
	// conditional-existence syntax.
	CreateTableIfNotExists(name string) string

	// DropTable renders a full DROP TABLE statement.
	DropTable(name string) string

	// DropTableIfExists is DropTable guarded by the backend's
	// conditional-existence syntax.
	DropTableIfExists(name string) string

	// RenameTable renders the backend's rename syntax.
	RenameTable(oldName, newName string) string

	// ModifyTable renders the opening fragment of an ALTER-style
	// statement; column changes are supplied separately.
	ModifyTable(name string) string
}

// TableGenerator renders column-level fragments for one backend.
//
// The fixed-name operations (Integer, Text, ...) are shorthands that
// render a column of that kind with no metadata. Column is the general
// form: it consumes a fully configured column type, including size,
// nullability, uniqueness and default value.
type TableGenerator interface {
	// DropColumn renders a DROP COLUMN fragment.
	DropColumn(name string) string

	// RenameColumn renders a RENAME COLUMN fragment.
	RenameColumn(oldName, newName string) string

	// AddColumn renders an ADD COLUMN fragment for a configured column.
	AddColumn(name string, t types.ColumnType) string

	// Increments renders the backend's auto-incrementing primary key
	// column fragment.
	Increments() string

	// Integer renders an integer column fragment.
	Integer(name string) string

	// BigInteger renders an 8-byte integer column fragment.
	BigInteger(name string) string

	// Float renders a floating point column fragment.
	Float(name string) string

	// Boolean renders a true/false column fragment.
	Boolean(name string) string

	// Date renders a calendar date column fragment.
	Date(name string) string

	// JSON renders a structured document column fragment.
	JSON(name string) string

	// UUID renders a unique identifier column fragment.
	UUID(name string) string

	// Text renders an unbounded text column fragment.
	Text(name string) string

	// String renders a bounded-length string column fragment with the
	// backend's default bound.
	String(name string) string

	// Binary renders a raw byte column fragment.
	Binary(name string) string

	// Timestamp renders a timestamp column fragment.
	Timestamp(name string) string

	// Column renders a full column definition from a configured type,
	// surfacing size, NOT NULL, UNIQUE and DEFAULT as the dialect
	// spells them.
	Column(name string, t types.ColumnType) string

	// Index renders a CREATE INDEX statement over the given columns.
	Index(table string, columns ...string) string

	// UniqueIndex is Index with a uniqueness constraint.
	UniqueIndex(table string, columns ...string) string
}
