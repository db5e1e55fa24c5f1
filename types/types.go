// Package types describes database columns in a dialect-neutral vocabulary.
//
// A column is a BaseType (what the column stores) wrapped in a Type
// carrying the column metadata (nullability, uniqueness, size, default and
// so on). Values are built through the kind-specific constructors and the
// chainable setters, never by filling in struct fields directly:
//
//	col := types.Varchar().Size(255).Nullable(false).Unique(true)
//
// Rendering a column into SQL is the job of a generator implementation,
// see the generators package.
package types

// Kind identifies what a column logically stores, independent of any
// SQL dialect or metadata such as nullability.
type Kind string

const (
	KindText    Kind = "text"
	KindVarchar Kind = "varchar"
	KindPrimary Kind = "primary"
	KindInteger Kind = "integer"
	KindFloat   Kind = "float"
	KindDouble  Kind = "double"
	KindBoolean Kind = "boolean"
	KindBinary  Kind = "binary"
	KindForeign Kind = "foreign"
	KindCustom  Kind = "custom"
	KindArray   Kind = "array"
)

// BaseType is the dialect-neutral kind of a column. It is pure data and
// carries no rendering logic.
//
// Name is only set for KindForeign (the referenced table) and KindCustom
// (the raw type name passed through to the backend). Elem is only set for
// KindArray and may nest arbitrarily deep; build arrays with ArrayOf, a
// KindArray value with nil Elem fails Validate.
type BaseType struct {
	Kind Kind
	Name string
	Elem *BaseType
}

// ArrayOf wraps elem into an array base type. Arrays of arrays are
// built by calling it repeatedly.
func ArrayOf(elem BaseType) BaseType {
	return BaseType{Kind: KindArray, Elem: &elem}
}

// Metadata is the type-erased view of the metadata attached to a Type.
// Default is nil when no default value was set; HasSize reports whether
// a size hint was given.
type Metadata struct {
	Nullable   bool
	Unique     bool
	Increments bool
	Indexed    bool
	Default    any
	Size       int
	HasSize    bool
}

// ColumnType is the erased view of a Type[T] that generator
// implementations and the schema builder consume. It is satisfied by
// every Type produced by the constructors in this package; external
// implementations are not expected.
type ColumnType interface {
	// Inner exposes the underlying base type. It exists for generator
	// implementations; application code should not branch on it.
	Inner() BaseType

	// Metadata returns the accumulated column metadata.
	Metadata() Metadata

	// Validate reports whether the accumulated metadata is consistent
	// with the base type, see the Err* values in this package.
	Validate() error
}

// Type is a database column type and all the metadata attached to it.
// The zero value is not useful; use the constructors (Text, Varchar,
// Integer, ...) which pick the right default value type T for the kind.
//
// Every setter takes the receiver by value and returns the updated copy,
// so a Type is never observed half-configured and call order does not
// matter beyond last-write-wins per field.
type Type[T any] struct {
	IsNullable    bool
	IsUnique      bool
	AutoIncrement bool
	IsIndexed     bool
	DefaultValue  *T
	SizeHint      *int

	inner BaseType
}

// newType is the single construction point; it keeps inner out of reach
// of callers outside this package.
func newType[T any](inner BaseType) Type[T] {
	return Type[T]{inner: inner}
}

// Inner exposes the underlying base type to generator implementations.
func (t Type[T]) Inner() BaseType { return t.inner }

// Nullable sets whether the column accepts NULL.
func (t Type[T]) Nullable(arg bool) Type[T] {
	t.IsNullable = arg
	return t
}

// Unique sets whether the column values must be unique.
func (t Type[T]) Unique(arg bool) Type[T] {
	t.IsUnique = arg
	return t
}

// Increments marks the column as auto-incrementing. Whether that is
// honored for a non integer-like column is up to Validate and the
// dialect.
func (t Type[T]) Increments(arg bool) Type[T] {
	t.AutoIncrement = arg
	return t
}

// Indexed asks the backend to create an index for the column.
func (t Type[T]) Indexed(arg bool) Type[T] {
	t.IsIndexed = arg
	return t
}

// Default sets the default value, replacing any earlier one.
func (t Type[T]) Default(arg T) Type[T] {
	t.DefaultValue = &arg
	return t
}

// Size sets a size hint, meaningful for variable-length kinds such as
// varchar. For arrays the hint applies to the element type, not to the
// array length.
func (t Type[T]) Size(n int) Type[T] {
	t.SizeHint = &n
	return t
}

// Metadata returns the erased metadata view used by generators.
func (t Type[T]) Metadata() Metadata {
	m := Metadata{
		Nullable:   t.IsNullable,
		Unique:     t.IsUnique,
		Increments: t.AutoIncrement,
		Indexed:    t.IsIndexed,
	}
	if t.DefaultValue != nil {
		m.Default = *t.DefaultValue
	}
	if t.SizeHint != nil {
		m.Size = *t.SizeHint
		m.HasSize = true
	}
	return m
}
