// Package postgres is the PostgreSQL implementation of the generator
// contracts. All output uses double-quoted identifiers and upper-case
// keywords; statements carry no trailing semicolon so callers can
// compose them.
package postgres

import (
	"fmt"
	"strings"

	"github.com/alc6/schemagen/types"
)

// defaultStringSize is the bound applied to varchar columns without an
// explicit size hint.
const defaultStringSize = 255

// Generator implements generators.DatabaseGenerator and
// generators.TableGenerator for PostgreSQL. The zero value is ready to
// use; it holds no state.
type Generator struct{}

// New returns a PostgreSQL generator.
func New() Generator {
	return Generator{}
}

func (Generator) CreateTable(name string) string {
	return fmt.Sprintf("CREATE TABLE %s", quoteIdent(name))
}

func (Generator) CreateTableIfNotExists(name string) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s", quoteIdent(name))
}

func (Generator) DropTable(name string) string {
	return fmt.Sprintf("DROP TABLE %s", quoteIdent(name))
}

func (Generator) DropTableIfExists(name string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteIdent(name))
}

func (Generator) RenameTable(oldName, newName string) string {
	return fmt.Sprintf("ALTER TABLE %s RENAME TO %s", quoteIdent(oldName), quoteIdent(newName))
}

func (Generator) ModifyTable(name string) string {
	return fmt.Sprintf("ALTER TABLE %s", quoteIdent(name))
}

func (Generator) DropColumn(name string) string {
	return fmt.Sprintf("DROP COLUMN %s", quoteIdent(name))
}

func (Generator) RenameColumn(oldName, newName string) string {
	return fmt.Sprintf("RENAME COLUMN %s TO %s", quoteIdent(oldName), quoteIdent(newName))
}

func (g Generator) AddColumn(name string, t types.ColumnType) string {
	return "ADD COLUMN " + g.Column(name, t)
}

func (Generator) Increments() string {
	return fmt.Sprintf("%s SERIAL PRIMARY KEY", quoteIdent("id"))
}

func (Generator) Integer(name string) string {
	return fmt.Sprintf("%s INTEGER", quoteIdent(name))
}

func (Generator) BigInteger(name string) string {
	return fmt.Sprintf("%s BIGINT", quoteIdent(name))
}

func (Generator) Float(name string) string {
	return fmt.Sprintf("%s REAL", quoteIdent(name))
}

func (Generator) Boolean(name string) string {
	return fmt.Sprintf("%s BOOLEAN", quoteIdent(name))
}

func (Generator) Date(name string) string {
	return fmt.Sprintf("%s DATE", quoteIdent(name))
}

func (Generator) JSON(name string) string {
	return fmt.Sprintf("%s JSONB", quoteIdent(name))
}

func (Generator) UUID(name string) string {
	return fmt.Sprintf("%s UUID", quoteIdent(name))
}

func (Generator) Text(name string) string {
	return fmt.Sprintf("%s TEXT", quoteIdent(name))
}

func (Generator) String(name string) string {
	return fmt.Sprintf("%s VARCHAR(%d)", quoteIdent(name), defaultStringSize)
}

func (Generator) Binary(name string) string {
	return fmt.Sprintf("%s BYTEA", quoteIdent(name))
}

func (Generator) Timestamp(name string) string {
	return fmt.Sprintf("%s TIMESTAMP", quoteIdent(name))
}

// Column renders a full column definition: type (with size hint
// applied), NOT NULL unless the column is nullable, UNIQUE and DEFAULT.
// Auto-increment on an integer column promotes it to SERIAL.
func (Generator) Column(name string, t types.ColumnType) string {
	bt := t.Inner()
	m := t.Metadata()

	var sb strings.Builder
	sb.WriteString(quoteIdent(name))
	sb.WriteByte(' ')
	sb.WriteString(typeSQL(bt, m))

	if bt.Kind != types.KindPrimary {
		if !m.Nullable {
			sb.WriteString(" NOT NULL")
		}
		if m.Unique {
			sb.WriteString(" UNIQUE")
		}
	}

	if m.Default != nil {
		sb.WriteString(" DEFAULT ")
		sb.WriteString(literal(bt, m.Default))
	}

	return sb.String()
}

func (Generator) Index(table string, columns ...string) string {
	return indexStatement(table, columns, false)
}

func (Generator) UniqueIndex(table string, columns ...string) string {
	return indexStatement(table, columns, true)
}

func indexStatement(table string, columns []string, unique bool) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quoteIdent(c)
	}
	kw := "INDEX"
	if unique {
		kw = "UNIQUE INDEX"
	}
	name := "idx_" + table + "_" + strings.Join(columns, "_")
	return fmt.Sprintf("CREATE %s %s ON %s (%s)",
		kw, quoteIdent(name), quoteIdent(table), strings.Join(quoted, ", "))
}

// typeSQL maps a base type to its PostgreSQL spelling. Size hints apply
// to varchar directly and to array elements recursively; arrays append
// [] per nesting level.
func typeSQL(bt types.BaseType, m types.Metadata) string {
	switch bt.Kind {
	case types.KindText:
		return "TEXT"
	case types.KindVarchar:
		if m.HasSize {
			return fmt.Sprintf("VARCHAR(%d)", m.Size)
		}
		return fmt.Sprintf("VARCHAR(%d)", defaultStringSize)
	case types.KindPrimary:
		return "SERIAL PRIMARY KEY"
	case types.KindInteger:
		if m.Increments {
			return "SERIAL"
		}
		return "INTEGER"
	case types.KindFloat:
		return "REAL"
	case types.KindDouble:
		return "DOUBLE PRECISION"
	case types.KindBoolean:
		return "BOOLEAN"
	case types.KindBinary:
		return "BYTEA"
	case types.KindForeign:
		return fmt.Sprintf("INTEGER REFERENCES %s", quoteIdent(bt.Name))
	case types.KindCustom:
		return strings.ToUpper(bt.Name)
	case types.KindArray:
		if bt.Elem == nil {
			return "TEXT[]"
		}
		return typeSQL(*bt.Elem, m) + "[]"
	default:
		return "TEXT"
	}
}

// literal renders a default value. Strings on custom columns are raw
// SQL expressions (CURRENT_TIMESTAMP and friends) and pass through
// unquoted; everything else is rendered as a PostgreSQL literal.
func literal(bt types.BaseType, v any) string {
	if bt.Kind == types.KindCustom {
		if s, ok := v.(string); ok {
			return s
		}
	}
	switch x := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	case []byte:
		return fmt.Sprintf("'\\x%x'", x)
	default:
		return fmt.Sprint(x)
	}
}

// quoteIdent double-quotes an identifier, doubling any embedded quote.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
