package schema

import "fmt"

// Field is one declared attribute of a Shape. Whether the field is required
// follows from its descriptor: types without a default (anything not wrapped
// in Maybe/Internal and without a constant fallback) must be supplied.
type Field struct {
	Name string
	Type Type
}

// F declares a field; shorthand for shape declarations.
func F(name string, t Type) Field { return Field{Name: name, Type: t} }

// Shape is a named, ordered set of fields describing one typed object of
// the management API. Shapes are built once at package init and never
// modified afterwards. A *Shape is itself a Type, so shapes nest inside
// lists, maps and other shapes.
type Shape struct {
	name   string
	fields []Field
	index  map[string]int
}

// NewShape declares a shape. Duplicate field names are a programming error.
func NewShape(name string, fields ...Field) *Shape {
	s := &Shape{name: name, index: make(map[string]int, len(fields))}
	for _, f := range fields {
		s.add(f)
	}
	return s
}

// Extend declares a shape that inherits this shape's fields, in order,
// before its own. A child field redeclaring a parent field's name shadows
// the parent's descriptor in place.
func (s *Shape) Extend(name string, fields ...Field) *Shape {
	child := &Shape{
		name:   name,
		fields: append([]Field(nil), s.fields...),
		index:  make(map[string]int, len(s.fields)+len(fields)),
	}
	for fname, i := range s.index {
		child.index[fname] = i
	}
	for _, f := range fields {
		if i, ok := child.index[f.Name]; ok {
			child.fields[i] = f
			continue
		}
		child.add(f)
	}
	return child
}

func (s *Shape) add(f Field) {
	if _, dup := s.index[f.Name]; dup {
		panic(fmt.Sprintf("shape %s: duplicate field %q", s.name, f.Name))
	}
	s.index[f.Name] = len(s.fields)
	s.fields = append(s.fields, f)
}

func (s *Shape) Name() string { return s.name }

// Fields returns the ordered field declarations. The returned slice must
// not be modified.
func (s *Shape) Fields() []Field { return s.fields }

// Field looks up a declared field by name.
func (s *Shape) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Parse implements Type: it decodes a raw JSON object (or passes through an
// already decoded instance of this shape).
func (s *Shape) Parse(v interface{}) (interface{}, error) {
	switch raw := v.(type) {
	case *Instance:
		if raw.shape == s {
			return raw, nil
		}
		return s.Decode(raw.Map())
	case map[string]interface{}:
		return s.Decode(raw)
	default:
		return nil, errf("%s: %v is not an object", s.name, v)
	}
}

// Default implements Type; objects have no implicit value.
func (s *Shape) Default() (interface{}, error) {
	return nil, &noDefaultError{typeName: s.name}
}
