package schema

import (
	"fmt"
	"strings"
)

type absentType struct{}

func (absentType) String() string { return "<absent>" }

// Absent marks an optional field that legitimately has no value. It is
// distinct from a field that was simply not supplied, and it is always
// omitted when an instance is converted back to a plain mapping.
var Absent = absentType{}

type optionalType struct {
	inner    Type
	name     string
	internal bool
}

func (t *optionalType) Name() string { return t.name }

func (t *optionalType) Parse(v interface{}) (interface{}, error) {
	if v == nil || v == Absent {
		return Absent, nil
	}
	return t.inner.Parse(v)
}

func (t *optionalType) Default() (interface{}, error) { return Absent, nil }

// Maybe makes a type optional: absent fields and explicit nulls both decode
// to the Absent marker.
func Maybe(t Type) Type {
	return &optionalType{inner: t, name: fmt.Sprintf("Optional(%s)", t.Name())}
}

// Internal marks an optional attribute used only for debugging; such fields
// are excluded from user-facing output.
func Internal(t Type) Type {
	return &optionalType{inner: t, name: fmt.Sprintf("Internal(%s)", t.Name()), internal: true}
}

func isInternal(t Type) bool {
	ot, ok := t.(*optionalType)
	return ok && ot.internal
}

// ListOf accepts arrays whose every element satisfies t. Invalid elements do
// not abort the whole list: the valid ones are kept and returned as the
// partial value of the ValidationError.
func ListOf(t Type) Type {
	return listType(fmt.Sprintf("[%s]", t.Name()), t)
}

// SetOf is ListOf for fields the management service treats as sets; on the
// wire they are plain JSON arrays.
func SetOf(t Type) Type {
	return listType(fmt.Sprintf("{%s}", t.Name()), t)
}

func listType(name string, t Type) Type {
	return &spType{
		name: name,
		parse: func(v interface{}) (interface{}, error) {
			raw, ok := v.([]interface{})
			if !ok {
				return nil, errf("%s: %v is not an array", name, v)
			}
			out := make([]interface{}, 0, len(raw))
			var first error
			for _, el := range raw {
				pv, err := t.Parse(el)
				if err != nil {
					if p, ok := Partial(err); ok {
						out = append(out, p)
					}
					if first == nil {
						first = err
					}
					continue
				}
				out = append(out, pv)
			}
			if first != nil {
				return nil, &ValidationError{
					Msg:     fmt.Sprintf("%s: %v", name, first),
					Partial: out,
					cause:   first,
				}
			}
			return out, nil
		},
		def: func() (interface{}, error) { return []interface{}{}, nil },
	}
}

// MapOf accepts JSON objects; keys must satisfy kt (in their wire string
// form) and values must satisfy vt. The canonical form keeps the wire
// string keys. Invalid entries are dropped into the error's partial value
// the same way ListOf handles invalid elements.
func MapOf(kt, vt Type) Type {
	name := fmt.Sprintf("{%s: %s}", kt.Name(), vt.Name())
	return &spType{
		name: name,
		parse: func(v interface{}) (interface{}, error) {
			raw, ok := v.(map[string]interface{})
			if !ok {
				return nil, errf("%s: %v is not an object", name, v)
			}
			out := make(map[string]interface{}, len(raw))
			var first error
			for key, val := range raw {
				if _, err := kt.Parse(key); err != nil {
					if first == nil {
						first = err
					}
					continue
				}
				pv, err := vt.Parse(val)
				if err != nil {
					if p, ok := Partial(err); ok {
						out[key] = p
					}
					if first == nil {
						first = err
					}
					continue
				}
				out[key] = pv
			}
			if first != nil {
				return nil, &ValidationError{
					Msg:     fmt.Sprintf("%s: %v", name, first),
					Partial: out,
					cause:   first,
				}
			}
			return out, nil
		},
		def: func() (interface{}, error) { return map[string]interface{}{}, nil },
	}
}

// Either accepts a value matching any of the given types, tried in order.
func Either(types ...Type) Type {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name()
	}
	name := fmt.Sprintf("Either(%s)", strings.Join(names, ", "))
	return Func(name, func(v interface{}) (interface{}, error) {
		for _, t := range types {
			if pv, err := t.Parse(v); err == nil {
				return pv, nil
			}
		}
		return nil, errf("%s: %v does not match any of the types", name, v)
	})
}

// EitherOr accepts the given type or the literal default, which is also
// used when the field is absent.
func EitherOr(t Type, def interface{}) Type {
	e := Either(Const(def), t).(*spType)
	cv := canon(def)
	e.def = func() (interface{}, error) { return cv, nil }
	return e
}
