// Package schema implements the typed-object layer of the StorPool API
// bindings: composable value descriptors, named object shapes and
// a JSON codec that keeps partially decoded results available when
// a response does not fully match its declared shape.
package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// Type validates and converts a single raw JSON value. Implementations are
// immutable once built and compose freely (Maybe(ListOf(x)), etc.).
type Type interface {
	Name() string
	// Parse validates v and returns its canonical form. On failure the
	// returned error may be a *ValidationError carrying a partial value.
	Parse(v interface{}) (interface{}, error)
	// Default produces the value used when a field is absent from the raw
	// data, or an error if the field may not be omitted.
	Default() (interface{}, error)
}

type spType struct {
	name  string
	parse func(v interface{}) (interface{}, error)
	def   func() (interface{}, error)
}

func (t *spType) Name() string { return t.name }

func (t *spType) Parse(v interface{}) (interface{}, error) { return t.parse(v) }

func (t *spType) Default() (interface{}, error) {
	if t.def == nil {
		return nil, &noDefaultError{typeName: t.name}
	}
	return t.def()
}

// Func builds a required type from a bare validator function.
func Func(name string, parse func(v interface{}) (interface{}, error)) Type {
	return &spType{name: name, parse: parse}
}

func asInt(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case json.Number:
		return n.Int64()
	case float64:
		if n != float64(int64(n)) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int64(n), nil
	case string:
		// JSON object keys arrive as strings; accept the numeric form.
		return strconv.ParseInt(n, 10, 64)
	default:
		return 0, fmt.Errorf("%v is not an integer", v)
	}
}

func asFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("%v is not a number", v)
	}
}

// canon maps a raw value onto the canonical form used for equality checks:
// integral numbers become int64, other numbers float64.
func canon(v interface{}) interface{} {
	if i, err := asInt(v); err == nil {
		if _, isStr := v.(string); !isStr {
			return i
		}
	}
	switch n := v.(type) {
	case float64:
		return n
	case json.Number:
		f, err := n.Float64()
		if err == nil {
			return f
		}
	}
	return v
}

// Str accepts any JSON string.
var Str = Func("string", func(v interface{}) (interface{}, error) {
	s, ok := v.(string)
	if !ok {
		return nil, errf("%v is not a string", v)
	}
	return s, nil
})

// Bool accepts true or false.
var Bool = Func("bool", func(v interface{}) (interface{}, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, errf("%v is not a boolean", v)
	}
	return b, nil
})

// Int accepts integer values and converts them to int64.
var Int = Func("int", func(v interface{}) (interface{}, error) {
	i, err := asInt(v)
	if err != nil {
		return nil, errf("invalid integer: %v", err)
	}
	return i, nil
})

// Long is the 64-bit integer type; in Go it is the same descriptor as Int.
var Long = Int

// Float accepts any numeric value, including integers.
var Float = Func("float", func(v interface{}) (interface{}, error) {
	f, err := asFloat(v)
	if err != nil {
		return nil, errf("invalid number: %v", err)
	}
	return f, nil
})

// Regex accepts strings fully matching pattern.
func Regex(name, pattern string) Type {
	re := regexp.MustCompile(pattern)
	return Func(name, func(v interface{}) (interface{}, error) {
		s, ok := v.(string)
		if !ok {
			return nil, errf("invalid %s: %v is not a string", name, v)
		}
		if !re.MatchString(s) {
			return nil, errf("invalid %s %q: must match %s", name, s, pattern)
		}
		return s, nil
	})
}

// IntRange accepts integers between min and max inclusive.
func IntRange(name string, min, max int64) Type {
	return Func(name, func(v interface{}) (interface{}, error) {
		i, err := asInt(v)
		if err != nil {
			return nil, errf("invalid %s: must be an integer", name)
		}
		if i < min || i > max {
			return nil, errf("invalid %s %d: must be between %d and %d", name, i, min, max)
		}
		return i, nil
	})
}

// OneOf accepts exactly the listed literal values.
func OneOf(name string, accepted ...interface{}) Type {
	canonical := make([]interface{}, len(accepted))
	for i, a := range accepted {
		canonical[i] = canon(a)
	}
	return Func(name, func(v interface{}) (interface{}, error) {
		cv := canon(v)
		for _, a := range canonical {
			if cv == a {
				return cv, nil
			}
		}
		return nil, errf("invalid %s: %v is not one of the accepted values", name, v)
	})
}

// NamedEnum accepts the integers first..first+len(names)-1 and converts them
// to their symbolic names.
func NamedEnum(name string, names []string, first int64) Type {
	end := first + int64(len(names))
	return Func(name, func(v interface{}) (interface{}, error) {
		i, err := asInt(v)
		if err != nil {
			return nil, errf("invalid %s: must be an integer", name)
		}
		if i < first || i >= end {
			return nil, errf("invalid %s value %d: must be between %d and %d", name, i, first, end-1)
		}
		return names[i-first], nil
	})
}

// UnlimitedInt accepts integers of at least min, or the literal unlimited
// marker (e.g. "-").
func UnlimitedInt(name string, min int64, unlimited string) Type {
	return Func(name, func(v interface{}) (interface{}, error) {
		if s, ok := v.(string); ok && s == unlimited {
			return s, nil
		}
		i, err := asInt(v)
		if err != nil {
			return nil, errf("non-numeric %s: %v", name, v)
		}
		if i < min {
			return nil, errf("invalid %s: must be at least %d", name, min)
		}
		return i, nil
	})
}

// NameType accepts identifier strings: full regexp match, shorter than size,
// not one of the blacklisted reserved words.
func NameType(name, pattern string, size int, blacklisted ...string) Type {
	re := regexp.MustCompile(pattern)
	reserved := make(map[string]bool, len(blacklisted))
	for _, b := range blacklisted {
		reserved[b] = true
	}
	return Func(name, func(v interface{}) (interface{}, error) {
		s, ok := v.(string)
		if !ok {
			return nil, errf("invalid %s: must be a string", name)
		}
		switch {
		case !re.MatchString(s):
			return nil, errf("invalid %s %q: must match %s", name, s, pattern)
		case reserved[s]:
			return nil, errf("invalid %s %q: reserved name", name, s)
		case len(s) >= size:
			return nil, errf("%s too long: max allowed is %d", name, size-1)
		}
		return s, nil
	})
}

// SectorSize is the alignment required of volume and snapshot sizes.
const SectorSize = 512

// SizeType accepts positive byte counts that are a multiple of SectorSize.
func SizeType(name string) Type {
	return Func(name, func(v interface{}) (interface{}, error) {
		i, err := asInt(v)
		if err != nil {
			return nil, errf("non-numeric %s: %v", name, v)
		}
		if i < 1 {
			return nil, errf("invalid %s %d: must be positive", name, i)
		}
		if i%SectorSize != 0 {
			return nil, errf("invalid %s %d: must be a multiple of %d", name, i, SectorSize)
		}
		return i, nil
	})
}

// Const accepts only the given value and uses it as the default.
func Const(value interface{}) Type {
	cv := canon(value)
	return &spType{
		name: fmt.Sprintf("const %v", value),
		parse: func(v interface{}) (interface{}, error) {
			if canon(v) != cv {
				return nil, errf("trying to assign %v to the constant %v", v, value)
			}
			return cv, nil
		},
		def: func() (interface{}, error) { return cv, nil },
	}
}
