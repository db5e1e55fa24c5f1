// Package schema collects table and column descriptions and renders
// them into DDL statements through a dialect's generator pair. It holds
// no connection and applies nothing; callers sequence and execute the
// returned statements themselves.
package schema

import (
	"fmt"
	"strings"

	"github.com/alc6/schemagen/generators"
	"github.com/alc6/schemagen/types"
)

// Dialect is the complete generator surface a backend provides. It is a
// composition of the two contracts, not a replacement for them: code
// that only needs one side should keep depending on that side.
type Dialect interface {
	generators.DatabaseGenerator
	generators.TableGenerator
}

// Column is a named, fully configured column inside a table.
type Column struct {
	Name string
	Type types.ColumnType
}

// Table is an ordered collection of columns under one name. Column
// order is preserved into the rendered statement.
type Table struct {
	Name    string
	Columns []Column
}

// AddColumn appends a column. It returns the table for chaining.
func (t *Table) AddColumn(name string, ct types.ColumnType) *Table {
	t.Columns = append(t.Columns, Column{Name: name, Type: ct})
	return t
}

// Alteration collects column-level changes to one table. Adds and
// drops render as a single ALTER TABLE statement, renames as one
// statement each.
type Alteration struct {
	ops []alterOp
}

type alterOp struct {
	kind    alterKind
	name    string
	newName string
	colType types.ColumnType
}

type alterKind int

const (
	alterAdd alterKind = iota
	alterDrop
	alterRename
)

// AddColumn adds a new column to the altered table.
func (a *Alteration) AddColumn(name string, ct types.ColumnType) *Alteration {
	a.ops = append(a.ops, alterOp{kind: alterAdd, name: name, colType: ct})
	return a
}

// DropColumn removes an existing column.
func (a *Alteration) DropColumn(name string) *Alteration {
	a.ops = append(a.ops, alterOp{kind: alterDrop, name: name})
	return a
}

// RenameColumn renames an existing column.
func (a *Alteration) RenameColumn(oldName, newName string) *Alteration {
	a.ops = append(a.ops, alterOp{kind: alterRename, name: oldName, newName: newName})
	return a
}

type changeKind int

const (
	createTable changeKind = iota
	createTableIfNotExists
	dropTable
	dropTableIfExists
	renameTable
	alterTable
)

type change struct {
	kind    changeKind
	name    string
	newName string
	table   *Table
	alter   *Alteration
}

// Migration is an ordered list of schema changes. Changes render in the
// order they were declared; no reordering or dependency analysis is
// performed.
type Migration struct {
	changes []change
}

// New returns an empty migration.
func New() *Migration {
	return &Migration{}
}

// CreateTable declares a new table; fn populates its columns.
func (m *Migration) CreateTable(name string, fn func(*Table)) *Migration {
	return m.create(createTable, name, fn)
}

// CreateTableIfNotExists is CreateTable guarded by the backend's
// conditional-existence syntax.
func (m *Migration) CreateTableIfNotExists(name string, fn func(*Table)) *Migration {
	return m.create(createTableIfNotExists, name, fn)
}

func (m *Migration) create(kind changeKind, name string, fn func(*Table)) *Migration {
	t := &Table{Name: name}
	if fn != nil {
		fn(t)
	}
	m.changes = append(m.changes, change{kind: kind, name: name, table: t})
	return m
}

// DropTable declares a table drop.
func (m *Migration) DropTable(name string) *Migration {
	m.changes = append(m.changes, change{kind: dropTable, name: name})
	return m
}

// DropTableIfExists declares a guarded table drop.
func (m *Migration) DropTableIfExists(name string) *Migration {
	m.changes = append(m.changes, change{kind: dropTableIfExists, name: name})
	return m
}

// RenameTable declares a table rename. Renaming a table to itself is a
// caller error and is not checked here.
func (m *Migration) RenameTable(oldName, newName string) *Migration {
	m.changes = append(m.changes, change{kind: renameTable, name: oldName, newName: newName})
	return m
}

// AlterTable declares column-level changes on an existing table; fn
// populates the alteration.
func (m *Migration) AlterTable(name string, fn func(*Alteration)) *Migration {
	a := &Alteration{}
	if fn != nil {
		fn(a)
	}
	m.changes = append(m.changes, change{kind: alterTable, name: name, alter: a})
	return m
}

// Tables returns the tables declared by create changes, in declaration
// order.
func (m *Migration) Tables() []*Table {
	var out []*Table
	for _, c := range m.changes {
		if c.table != nil {
			out = append(out, c.table)
		}
	}
	return out
}

// Validate runs metadata validation over every declared column and
// returns the first problem found.
func (m *Migration) Validate() error {
	for _, c := range m.changes {
		if c.table != nil {
			for _, col := range c.table.Columns {
				if err := col.Type.Validate(); err != nil {
					return fmt.Errorf("table %s column %s: %w", c.table.Name, col.Name, err)
				}
			}
		}
		if c.alter != nil {
			for _, op := range c.alter.ops {
				if op.kind != alterAdd {
					continue
				}
				if err := op.colType.Validate(); err != nil {
					return fmt.Errorf("table %s column %s: %w", c.name, op.name, err)
				}
			}
		}
	}
	return nil
}

// Make renders the migration into executable statements for the given
// dialect. Column metadata is validated before anything is rendered.
// Indexed columns produce CREATE INDEX statements directly after their
// table or ALTER statement. Alterations with no ops render nothing.
func (m *Migration) Make(d Dialect) ([]string, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var stmts []string
	for _, c := range m.changes {
		switch c.kind {
		case createTable, createTableIfNotExists:
			opening := d.CreateTable(c.name)
			if c.kind == createTableIfNotExists {
				opening = d.CreateTableIfNotExists(c.name)
			}
			stmts = append(stmts, renderCreate(opening, c.table, d))
			stmts = append(stmts, renderIndexes(c.table.Name, c.table.Columns, d)...)
		case dropTable:
			stmts = append(stmts, d.DropTable(c.name)+";")
		case dropTableIfExists:
			stmts = append(stmts, d.DropTableIfExists(c.name)+";")
		case renameTable:
			stmts = append(stmts, d.RenameTable(c.name, c.newName)+";")
		case alterTable:
			stmts = append(stmts, renderAlter(c, d)...)
		}
	}
	return stmts, nil
}

func renderCreate(opening string, t *Table, d Dialect) string {
	defs := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		defs = append(defs, "  "+d.Column(col.Name, col.Type))
	}
	return fmt.Sprintf("%s (\n%s\n);", opening, strings.Join(defs, ",\n"))
}

func renderIndexes(table string, cols []Column, d Dialect) []string {
	var stmts []string
	for _, col := range cols {
		meta := col.Type.Metadata()
		if !meta.Indexed {
			continue
		}
		if meta.Unique {
			stmts = append(stmts, d.UniqueIndex(table, col.Name)+";")
		} else {
			stmts = append(stmts, d.Index(table, col.Name)+";")
		}
	}
	return stmts
}

// renderAlter renders one alteration. Adds and drops combine into a
// single ALTER TABLE action list; RENAME COLUMN is a standalone ALTER
// TABLE form in PostgreSQL and renders one statement per rename.
// Indexed added columns get their index statements after the ALTERs.
func renderAlter(c change, d Dialect) []string {
	var frags []string
	var added []Column
	for _, op := range c.alter.ops {
		switch op.kind {
		case alterAdd:
			frags = append(frags, d.AddColumn(op.name, op.colType))
			added = append(added, Column{Name: op.name, Type: op.colType})
		case alterDrop:
			frags = append(frags, d.DropColumn(op.name))
		}
	}

	var stmts []string
	if len(frags) > 0 {
		stmts = append(stmts, fmt.Sprintf("%s %s;", d.ModifyTable(c.name), strings.Join(frags, ", ")))
	}
	for _, op := range c.alter.ops {
		if op.kind == alterRename {
			stmts = append(stmts, fmt.Sprintf("%s %s;", d.ModifyTable(c.name), d.RenameColumn(op.name, op.newName)))
		}
	}
	return append(stmts, renderIndexes(c.name, added, d)...)
}
