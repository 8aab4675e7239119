package argbind

import (
	"reflect"
	"strconv"
)

// coerce parses raw into the field's kind and stores it in dst. dst is the
// concrete value slot; optional indirection has already been resolved by the
// caller. Booleans never look at the raw value: the flag being present at all
// is what sets them.
func (f *field) coerce(dst reflect.Value, raw string) error {
	switch f.kind {
	case kindBool:
		dst.SetBool(true)
	case kindString:
		dst.SetString(raw)
	case kindInt:
		n, err := strconv.ParseInt(raw, 10, f.bits)
		if err != nil {
			return &ConversionError{Field: f.name, Value: raw, Err: err}
		}
		dst.SetInt(n)
	case kindUint:
		// ParseUint rejects any leading sign.
		n, err := strconv.ParseUint(raw, 10, f.bits)
		if err != nil {
			return &ConversionError{Field: f.name, Value: raw, Err: err}
		}
		dst.SetUint(n)
	case kindFloat:
		n, err := strconv.ParseFloat(raw, f.bits)
		if err != nil {
			return &ConversionError{Field: f.name, Value: raw, Err: err}
		}
		dst.SetFloat(n)
	default:
		return &UnsupportedTypeError{Field: f.name, Type: f.typ}
	}
	return nil
}

// apply mutates the field inside cfg according to the scanned token. The
// presence check for optional fields runs before any coercion, so an optional
// flag that arrives without a value is a no-op rather than an error.
func (f *field) apply(cfg reflect.Value, tok token) error {
	if f.kind == kindInvalid {
		return &UnsupportedTypeError{Field: f.name, Type: f.typ}
	}
	fv := cfg.Field(f.index)
	if f.optional {
		if !tok.hasValue {
			return nil
		}
		p := reflect.New(fv.Type().Elem())
		if err := f.coerce(p.Elem(), tok.value); err != nil {
			return err
		}
		fv.Set(p)
		return nil
	}
	if f.kind == kindBool {
		fv.SetBool(true)
		return nil
	}
	if !tok.hasValue {
		return &MissingValueError{Flag: f.name}
	}
	return f.coerce(fv, tok.value)
}
