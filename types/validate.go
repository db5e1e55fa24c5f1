package types

import (
	"errors"
	"fmt"
)

// Metadata validation errors. Validate wraps these with the offending
// kind so callers can both match with errors.Is and print a useful
// message.
var (
	ErrInvalidSize          = errors.New("size must be positive")
	ErrSizeNotAllowed       = errors.New("size is only valid for varchar, binary and arrays of those")
	ErrIncrementsNotAllowed = errors.New("auto-increment is only valid for integer and primary columns")
	ErrDefaultMismatch      = errors.New("default value does not match the column kind")
	ErrElemMissing          = errors.New("array type has no element")
)

// Validate checks the accumulated metadata against the base type:
// size hints only on variable-length kinds, auto-increment only on
// integer-like kinds, and default values whose shape matches the kind.
// It reports problems instead of panicking; rendering a column that
// fails validation is a caller bug.
func (t Type[T]) Validate() error {
	if err := checkElem(t.inner); err != nil {
		return err
	}

	if t.SizeHint != nil {
		if *t.SizeHint <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidSize, *t.SizeHint)
		}
		if !sizeable(t.inner) {
			return fmt.Errorf("%w: kind %s", ErrSizeNotAllowed, t.inner.Kind)
		}
	}

	if t.AutoIncrement && t.inner.Kind != KindInteger && t.inner.Kind != KindPrimary {
		return fmt.Errorf("%w: kind %s", ErrIncrementsNotAllowed, t.inner.Kind)
	}

	if t.DefaultValue != nil {
		if err := checkDefault(t.inner, any(*t.DefaultValue)); err != nil {
			return err
		}
	}

	return nil
}

// checkElem rejects array types without an element, which struct
// literals can produce. Everything downstream may dereference Elem
// once this passes.
func checkElem(bt BaseType) error {
	if bt.Kind != KindArray {
		return nil
	}
	if bt.Elem == nil {
		return ErrElemMissing
	}
	return checkElem(*bt.Elem)
}

// sizeable reports whether a size hint makes sense for the base type.
// For arrays the hint bounds the element, so the element must itself be
// sizeable.
func sizeable(bt BaseType) bool {
	switch bt.Kind {
	case KindVarchar, KindBinary:
		return true
	case KindArray:
		return bt.Elem != nil && sizeable(*bt.Elem)
	default:
		return false
	}
}

// checkDefault verifies that the dynamic type of a default value fits
// the column kind. Custom columns are opaque: a string default is a raw
// SQL expression and any other shape renders as a plain literal, so
// every default is accepted.
func checkDefault(bt BaseType, v any) error {
	ok := false
	switch bt.Kind {
	case KindCustom:
		return nil
	case KindText, KindVarchar:
		_, ok = v.(string)
	case KindPrimary, KindInteger, KindForeign:
		ok = isIntegerValue(v)
	case KindFloat, KindDouble:
		switch v.(type) {
		case float32, float64:
			ok = true
		default:
			ok = isIntegerValue(v)
		}
	case KindBoolean:
		_, ok = v.(bool)
	case KindBinary:
		_, ok = v.([]byte)
	case KindArray:
		// A raw SQL literal for the whole array is accepted; anything
		// else must match the element kind.
		if _, isStr := v.(string); isStr && bt.Elem.Kind != KindText && bt.Elem.Kind != KindVarchar && bt.Elem.Kind != KindCustom {
			return nil
		}
		return checkDefault(*bt.Elem, v)
	}
	if !ok {
		return fmt.Errorf("%w: kind %s got %T", ErrDefaultMismatch, bt.Kind, v)
	}
	return nil
}

func isIntegerValue(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}
