package argbind

import (
	"reflect"
	"strings"
)

// factoryName is the method every configuration type has to provide. It takes
// no arguments and returns a default instance of the type itself.
const factoryName = "Default"

type kind int

const (
	kindInvalid kind = iota
	kindInt
	kindUint
	kindFloat
	kindBool
	kindString
)

// field describes one bindable struct field.
type field struct {
	name     string // flag name matched against the command line
	index    int
	typ      reflect.Type
	kind     kind
	bits     int  // numeric width passed to the strconv parsers
	optional bool // pointer field, left untouched unless a value arrives
}

// schema is the reflected view of a configuration type: its factory method
// plus one descriptor per bindable field. It is built once per parse call and
// never mutated afterwards.
type schema struct {
	typ     reflect.Type
	factory reflect.Value
	fields  []field
}

func newSchema(rt reflect.Type) (*schema, error) {
	if rt.Kind() != reflect.Struct {
		return nil, &InvalidConfigError{Type: rt}
	}
	factory, err := lookupFactory(rt)
	if err != nil {
		return nil, err
	}

	s := &schema{typ: rt, factory: factory}
	for i := 0; i < rt.NumField(); i++ {
		ft := rt.Field(i)
		if ft.PkgPath != "" { // unexported
			continue
		}
		name := strings.ToLower(ft.Name)
		if tag, ok := ft.Tag.Lookup("flag"); ok {
			if tag == "-" {
				continue
			}
			name = tag
		}
		k, bits, optional := classify(ft.Type)
		s.fields = append(s.fields, field{
			name:     name,
			index:    i,
			typ:      ft.Type,
			kind:     k,
			bits:     bits,
			optional: optional,
		})
	}
	return s, nil
}

// lookupFactory finds the zero-argument Default method and checks that it
// returns exactly the configuration type. All failure modes are terminal and
// fire before a single argument is read.
func lookupFactory(rt reflect.Type) (reflect.Value, error) {
	m := reflect.New(rt).MethodByName(factoryName)
	if !m.IsValid() {
		return reflect.Value{}, &MissingFactoryError{Type: rt}
	}
	mt := m.Type()
	if mt.NumIn() != 0 {
		return reflect.Value{}, &FactoryArgsError{Type: rt, NumArgs: mt.NumIn()}
	}
	if mt.NumOut() != 1 || mt.Out(0) != rt {
		var got reflect.Type
		if mt.NumOut() > 0 {
			got = mt.Out(0)
		}
		return reflect.Value{}, &FactoryReturnError{Type: rt, Got: got}
	}
	return m, nil
}

// defaults invokes the factory and returns an addressable copy of its result
// for the driver to mutate.
func (s *schema) defaults() reflect.Value {
	v := reflect.New(s.typ).Elem()
	v.Set(s.factory.Call(nil)[0])
	return v
}

// lookup does a linear search for the first field whose flag name matches,
// or nil when none does.
func (s *schema) lookup(name string) *field {
	for i := range s.fields {
		if s.fields[i].name == name {
			return &s.fields[i]
		}
	}
	return nil
}

// classify maps a Go type onto the coercion kinds. Pointer fields are optional
// variants of the type they point at. Anything outside the int/uint/float/
// bool/string set comes back as kindInvalid and is rejected once a flag
// actually targets it.
func classify(t reflect.Type) (k kind, bits int, optional bool) {
	if t.Kind() == reflect.Ptr {
		k, bits = classifyScalar(t.Elem())
		return k, bits, true
	}
	k, bits = classifyScalar(t)
	return k, bits, false
}

func classifyScalar(t reflect.Type) (kind, int) {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kindInt, t.Bits()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return kindUint, t.Bits()
	case reflect.Float32, reflect.Float64:
		return kindFloat, t.Bits()
	case reflect.Bool:
		return kindBool, 0
	case reflect.String:
		return kindString, 0
	default:
		return kindInvalid, 0
	}
}
