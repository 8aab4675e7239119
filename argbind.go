package argbind

import (
	"fmt"
	"os"
	"reflect"
)

// Parse binds os.Args onto a fresh instance of T. See ParseArgs for the exact
// matching rules.
func Parse[T any]() (T, error) {
	return ParseArgs[T](os.Args)
}

// ParseArgs binds argv onto a fresh instance of T.
//
// T has to be a struct with a zero-argument Default method returning T; the
// instance that method produces is the one mutated and returned. The first
// element of argv is the program name and is skipped. Flags are matched by the
// lowercased field name, or by the `flag` tag when one is set. Unknown flags
// are skipped and the first argument without the "--" prefix ends the scan;
// neither is an error. On any error the zero value of T is returned, never a
// partially populated instance.
func ParseArgs[T any](argv []string) (T, error) {
	var zero T
	s, err := newSchema(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return zero, err
	}

	cfg := s.defaults()
	sc := newScanner(argv)
	for {
		tok, ok := sc.next()
		if !ok {
			break
		}
		f := s.lookup(tok.name)
		if f == nil {
			continue
		}
		if err := f.apply(cfg, tok); err != nil {
			return zero, err
		}
	}
	return cfg.Interface().(T), nil
}

// InvalidConfigError is returned when the type parameter given to Parse is not
// a struct type.
type InvalidConfigError struct {
	Type reflect.Type
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("argbind: %s is not a struct type", e.Type)
}

// MissingFactoryError is returned when the configuration type does not define
// the required Default factory method.
type MissingFactoryError struct {
	Type reflect.Type
}

func (e *MissingFactoryError) Error() string {
	return fmt.Sprintf("argbind: %s does not define a Default factory method", e.Type)
}

// FactoryArgsError is returned when the Default method takes arguments.
type FactoryArgsError struct {
	Type    reflect.Type
	NumArgs int
}

func (e *FactoryArgsError) Error() string {
	return fmt.Sprintf("argbind: %s.Default must take no arguments, takes %d", e.Type, e.NumArgs)
}

// FactoryReturnError is returned when the Default method does not return
// exactly the configuration type. Got is nil when it returns nothing.
type FactoryReturnError struct {
	Type reflect.Type
	Got  reflect.Type
}

func (e *FactoryReturnError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("argbind: %s.Default must return %s, returns nothing", e.Type, e.Type)
	}
	return fmt.Sprintf("argbind: %s.Default must return %s, returns %s", e.Type, e.Type, e.Got)
}

// MissingValueError is returned when a flag matched a required field but
// arrived without a value.
type MissingValueError struct {
	Flag string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("argbind: flag --%s requires a value", e.Flag)
}

// UnsupportedTypeError is returned when a flag targeted a field whose type is
// outside the int/uint/float/bool/string set.
type UnsupportedTypeError struct {
	Field string
	Type  reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("argbind: flag --%s targets unsupported field type %s", e.Field, e.Type)
}

// ConversionError is returned when a textual value could not be parsed as the
// field's numeric kind. It wraps the underlying strconv error.
type ConversionError struct {
	Field string
	Value string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("argbind: invalid value %q for flag --%s: %v", e.Value, e.Field, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
