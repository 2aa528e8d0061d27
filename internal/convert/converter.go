package convert

import "reflect"

// Converter converts between the content octets of one logical type and
// its Go representation. Implementations hold no state and are safe for
// concurrent use.
type Converter[T any] interface {
	// Decode interprets raw. A nil raw yields a nil value and no error.
	Decode(raw []byte) (*T, error)
	// Encode returns the canonical octets of v. A nil v yields nil octets.
	Encode(v *T) ([]byte, error)
}

// Codec is the type-erased form of a Converter, used by Registry.
type Codec interface {
	// Name returns the logical type name the codec is registered under.
	Name() string
	// DecodeValue interprets raw and returns a T, or nil for a nil raw.
	DecodeValue(raw []byte) (any, error)
	// EncodeValue accepts a T, a *T or nil. A nil pointer, nil slice or
	// nil map is treated like nil: no value, nil octets.
	EncodeValue(v any) ([]byte, error)
}

// Erase wraps c as a Codec registered under name.
func Erase[T any](name string, c Converter[T]) Codec {
	return erased[T]{name: name, c: c}
}

type erased[T any] struct {
	name string
	c    Converter[T]
}

func (e erased[T]) Name() string {
	return e.name
}

func (e erased[T]) DecodeValue(raw []byte) (any, error) {
	v, err := e.c.Decode(raw)
	if err != nil || v == nil {
		return nil, err
	}
	return *v, nil
}

func (e erased[T]) EncodeValue(v any) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return e.c.Encode(nil)
	case T:
		if isNilValue(x) {
			return e.c.Encode(nil)
		}
		return e.c.Encode(&x)
	case *T:
		return e.c.Encode(x)
	}
	return nil, newConversionError(e.name, nil, ErrUnsupportedValue, "cannot encode %T", v)
}

// isNilValue reports whether v is a nil slice, map or pointer.
func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer:
		return rv.IsNil()
	}
	return false
}
