package types

// Text creates an unbounded string column.
func Text() Type[string] {
	return newType[string](BaseType{Kind: KindText})
}

// Varchar creates a bounded string column. Combine with Size to set the
// bound; dialects apply their own default bound otherwise.
func Varchar() Type[string] {
	return newType[string](BaseType{Kind: KindVarchar})
}

// Primary creates an auto-incrementing integer primary key column.
func Primary() Type[int] {
	return newType[int](BaseType{Kind: KindPrimary}).Increments(true)
}

// Integer creates a plain integer column.
func Integer() Type[int] {
	return newType[int](BaseType{Kind: KindInteger})
}

// Float creates a single-precision floating point column.
func Float() Type[float32] {
	return newType[float32](BaseType{Kind: KindFloat})
}

// Double creates a double-precision floating point column.
func Double() Type[float64] {
	return newType[float64](BaseType{Kind: KindDouble})
}

// Boolean creates a true/false column.
func Boolean() Type[bool] {
	return newType[bool](BaseType{Kind: KindBoolean})
}

// Binary creates a raw byte column.
func Binary() Type[[]byte] {
	return newType[[]byte](BaseType{Kind: KindBinary})
}

// Foreign creates an integer column referencing the primary key of
// another table. The table name is passed through to the dialect as-is.
func Foreign(table string) Type[int] {
	return newType[int](BaseType{Kind: KindForeign, Name: table})
}

// Custom creates a column with a raw, dialect-specific type name. The
// name is emitted verbatim; the caller owns its correctness.
func Custom(raw string) Type[string] {
	return newType[string](BaseType{Kind: KindCustom, Name: raw})
}

// Array creates an array column of the given element type. T is the Go
// type of default values for the column. Element size hints are set
// through Size on the resulting type.
func Array[T any](elem BaseType) Type[T] {
	return newType[T](ArrayOf(elem))
}

// The remaining constructors cover kinds the core vocabulary expresses
// through Custom: their type name is fixed per dialect family and they
// need no extra payload.

// BigInteger creates an 8-byte integer column.
func BigInteger() Type[int64] {
	return newType[int64](BaseType{Kind: KindCustom, Name: "bigint"})
}

// Date creates a calendar date column. Defaults are raw SQL expressions.
func Date() Type[string] {
	return newType[string](BaseType{Kind: KindCustom, Name: "date"})
}

// Timestamp creates a date-and-time column. Defaults are raw SQL
// expressions, e.g. CURRENT_TIMESTAMP.
func Timestamp() Type[string] {
	return newType[string](BaseType{Kind: KindCustom, Name: "timestamp"})
}

// JSON creates a structured document column.
func JSON() Type[string] {
	return newType[string](BaseType{Kind: KindCustom, Name: "jsonb"})
}

// UUID creates a universally unique identifier column.
func UUID() Type[string] {
	return newType[string](BaseType{Kind: KindCustom, Name: "uuid"})
}
