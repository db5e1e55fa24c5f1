package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/alc6/schemagen/schema"
	"github.com/alc6/schemagen/types"
)

// SchemaFile is the YAML shape of a schema definition. Changes render
// in file order: creates, then drops, then renames, then alters.
type SchemaFile struct {
	Tables       []TableDef  `yaml:"tables"`
	DropTables   []DropDef   `yaml:"drop_tables"`
	RenameTables []RenameDef `yaml:"rename_tables"`
	AlterTables  []AlterDef  `yaml:"alter_tables"`
}

type TableDef struct {
	Name        string      `yaml:"name"`
	IfNotExists bool        `yaml:"if_not_exists"`
	Columns     []ColumnDef `yaml:"columns"`
}

type ColumnDef struct {
	Name       string  `yaml:"name"`
	Kind       string  `yaml:"kind"`
	Size       *int    `yaml:"size"`
	Nullable   *bool   `yaml:"nullable"`
	Unique     *bool   `yaml:"unique"`
	Increments *bool   `yaml:"increments"`
	Indexed    *bool   `yaml:"indexed"`
	Default    *string `yaml:"default"`
	References string  `yaml:"references"`
	Element    string  `yaml:"element"`
}

type DropDef struct {
	Name     string `yaml:"name"`
	IfExists bool   `yaml:"if_exists"`
}

type RenameDef struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type AlterDef struct {
	Name          string      `yaml:"name"`
	AddColumns    []ColumnDef `yaml:"add_columns"`
	DropColumns   []string    `yaml:"drop_columns"`
	RenameColumns []RenameDef `yaml:"rename_columns"`
}

// ParseSchemaFile reads a YAML schema definition and builds the
// corresponding migration. Unknown fields are rejected so typos fail
// loudly instead of rendering a wrong schema.
func ParseSchemaFile(path string) (*schema.Migration, error) {
	slog.Debug("reading schema definition", "path", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema file: %w", err)
	}
	defer f.Close()

	var def SchemaFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to decode schema file %s: %w", path, err)
	}

	m := schema.New()

	for _, td := range def.Tables {
		if td.Name == "" {
			return nil, fmt.Errorf("table without a name in %s", path)
		}
		cols, err := buildColumns(td.Name, td.Columns)
		if err != nil {
			return nil, err
		}
		fn := func(t *schema.Table) {
			for _, c := range cols {
				t.AddColumn(c.Name, c.Type)
			}
		}
		if td.IfNotExists {
			m.CreateTableIfNotExists(td.Name, fn)
		} else {
			m.CreateTable(td.Name, fn)
		}
		slog.Debug("declared table", "table", td.Name, "columns", len(td.Columns))
	}

	for _, dd := range def.DropTables {
		if dd.IfExists {
			m.DropTableIfExists(dd.Name)
		} else {
			m.DropTable(dd.Name)
		}
	}

	for _, rd := range def.RenameTables {
		if rd.From == "" || rd.To == "" || rd.From == rd.To {
			return nil, fmt.Errorf("invalid table rename %q -> %q", rd.From, rd.To)
		}
		m.RenameTable(rd.From, rd.To)
	}

	for _, ad := range def.AlterTables {
		adds, err := buildColumns(ad.Name, ad.AddColumns)
		if err != nil {
			return nil, err
		}
		renames := ad.RenameColumns
		drops := ad.DropColumns
		m.AlterTable(ad.Name, func(a *schema.Alteration) {
			for _, c := range adds {
				a.AddColumn(c.Name, c.Type)
			}
			for _, name := range drops {
				a.DropColumn(name)
			}
			for _, r := range renames {
				a.RenameColumn(r.From, r.To)
			}
		})
	}

	slog.Info("parsed schema definition",
		"tables", len(def.Tables),
		"drops", len(def.DropTables),
		"renames", len(def.RenameTables),
		"alters", len(def.AlterTables))
	return m, nil
}

func buildColumns(table string, defs []ColumnDef) ([]schema.Column, error) {
	cols := make([]schema.Column, 0, len(defs))
	for _, cd := range defs {
		if cd.Name == "" {
			return nil, fmt.Errorf("table %s has a column without a name", table)
		}
		ct, err := buildColumnType(cd)
		if err != nil {
			return nil, fmt.Errorf("table %s column %s: %w", table, cd.Name, err)
		}
		cols = append(cols, schema.Column{Name: cd.Name, Type: ct})
	}
	return cols, nil
}

// buildColumnType maps one YAML column onto the typed constructor API.
// The default value string is converted into the constructor's value
// type here, at the boundary, so the typed builders never see raw text.
func buildColumnType(cd ColumnDef) (types.ColumnType, error) {
	switch cd.Kind {
	case "text":
		return configure(types.Text(), cd, func(s string) (string, error) { return s, nil })
	case "varchar", "string":
		return configure(types.Varchar(), cd, func(s string) (string, error) { return s, nil })
	case "primary":
		return configure(types.Primary(), cd, strconv.Atoi)
	case "integer":
		return configure(types.Integer(), cd, strconv.Atoi)
	case "bigint", "big_integer":
		return configure(types.BigInteger(), cd, func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		})
	case "float":
		return configure(types.Float(), cd, func(s string) (float32, error) {
			v, err := strconv.ParseFloat(s, 32)
			return float32(v), err
		})
	case "double":
		return configure(types.Double(), cd, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
	case "boolean":
		return configure(types.Boolean(), cd, strconv.ParseBool)
	case "binary":
		return configure(types.Binary(), cd, func(s string) ([]byte, error) { return []byte(s), nil })
	case "date":
		return configure(types.Date(), cd, func(s string) (string, error) { return s, nil })
	case "timestamp":
		return configure(types.Timestamp(), cd, func(s string) (string, error) { return s, nil })
	case "json":
		return configure(types.JSON(), cd, func(s string) (string, error) { return s, nil })
	case "uuid":
		return configure(types.UUID(), cd, func(s string) (string, error) { return s, nil })
	case "foreign":
		if cd.References == "" {
			return nil, fmt.Errorf("foreign column requires references")
		}
		return configure(types.Foreign(cd.References), cd, strconv.Atoi)
	case "custom":
		if cd.References == "" {
			return nil, fmt.Errorf("custom column requires references with the raw type name")
		}
		return configure(types.Custom(cd.References), cd, func(s string) (string, error) { return s, nil })
	case "array":
		elem, err := elementType(cd.Element)
		if err != nil {
			return nil, err
		}
		// Array defaults in YAML are raw SQL literals.
		return configure(types.Array[string](elem), cd, func(s string) (string, error) { return s, nil })
	case "":
		return nil, fmt.Errorf("missing column kind")
	default:
		return nil, fmt.Errorf("unknown column kind: %s", cd.Kind)
	}
}

// configure applies the shared metadata fields of a YAML column to a
// typed column, converting the default with the given parser.
func configure[T any](t types.Type[T], cd ColumnDef, parse func(string) (T, error)) (types.ColumnType, error) {
	if cd.Nullable != nil {
		t = t.Nullable(*cd.Nullable)
	}
	if cd.Unique != nil {
		t = t.Unique(*cd.Unique)
	}
	if cd.Increments != nil {
		t = t.Increments(*cd.Increments)
	}
	if cd.Indexed != nil {
		t = t.Indexed(*cd.Indexed)
	}
	if cd.Size != nil {
		t = t.Size(*cd.Size)
	}
	if cd.Default != nil {
		v, err := parse(*cd.Default)
		if err != nil {
			return nil, fmt.Errorf("invalid default %q: %w", *cd.Default, err)
		}
		t = t.Default(v)
	}
	return t, nil
}

// elementType resolves an array element kind. Nested arrays are
// expressed with an "array of" prefix, e.g. "array of text".
func elementType(kind string) (types.BaseType, error) {
	const nested = "array of "
	if len(kind) > len(nested) && kind[:len(nested)] == nested {
		inner, err := elementType(kind[len(nested):])
		if err != nil {
			return types.BaseType{}, err
		}
		return types.ArrayOf(inner), nil
	}

	switch kind {
	case "text":
		return types.BaseType{Kind: types.KindText}, nil
	case "varchar", "string":
		return types.BaseType{Kind: types.KindVarchar}, nil
	case "integer":
		return types.BaseType{Kind: types.KindInteger}, nil
	case "float":
		return types.BaseType{Kind: types.KindFloat}, nil
	case "double":
		return types.BaseType{Kind: types.KindDouble}, nil
	case "boolean":
		return types.BaseType{Kind: types.KindBoolean}, nil
	case "binary":
		return types.BaseType{Kind: types.KindBinary}, nil
	case "uuid", "date", "timestamp", "json":
		name := kind
		if kind == "json" {
			name = "jsonb"
		}
		return types.BaseType{Kind: types.KindCustom, Name: name}, nil
	case "":
		return types.BaseType{}, fmt.Errorf("array column requires element")
	default:
		return types.BaseType{}, fmt.Errorf("unknown array element kind: %s", kind)
	}
}
