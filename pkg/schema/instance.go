package schema

import "encoding/json"

// FieldValue is one (field, value) pair of a decoded instance, in
// declaration order. Err is set when the field could not be decoded.
type FieldValue struct {
	Name     string
	Value    interface{}
	Internal bool
	Err      error
}

// Instance is a materialized typed object: every declared field of its shape
// mapped to a validated value. Instances are immutable after construction.
type Instance struct {
	shape   *Shape
	values  []interface{}
	invalid map[string]error
}

// Decode builds an instance from raw JSON data. Extra keys not declared in
// the shape are ignored. Missing required fields and fields failing their
// descriptor are recorded per field and do not stop the decoding of the
// remaining fields; if any were recorded, the returned error is a
// *ValidationError whose Partial is the decoded instance, so lenient
// callers may keep it while strict callers must treat the decode as failed.
func (s *Shape) Decode(raw map[string]interface{}) (*Instance, error) {
	inst := &Instance{shape: s, values: make([]interface{}, len(s.fields))}
	var first error
	for i, f := range s.fields {
		var val interface{}
		var err error
		if rv, ok := raw[f.Name]; ok {
			val, err = f.Type.Parse(rv)
		} else if val, err = f.Type.Default(); err != nil {
			if _, noDef := err.(*noDefaultError); noDef {
				err = &MissingFieldError{Shape: s.name, Field: f.Name}
			}
		}
		if err != nil {
			if p, ok := Partial(err); ok {
				val = p
			} else {
				val = nil
			}
			if inst.invalid == nil {
				inst.invalid = make(map[string]error)
			}
			inst.invalid[f.Name] = err
			if first == nil {
				first = err
			}
		}
		inst.values[i] = val
	}
	if first != nil {
		return inst, &ValidationError{
			Msg:     s.name + ": " + first.Error(),
			Partial: inst,
			cause:   first,
		}
	}
	return inst, nil
}

// New strictly constructs an instance from caller-supplied data, for
// outgoing requests. Any invalid or missing required field fails the
// construction as a whole.
func (s *Shape) New(data map[string]interface{}) (*Instance, error) {
	inst, err := s.Decode(data)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

// Shape returns the shape this instance was decoded against.
func (in *Instance) Shape() *Shape { return in.shape }

// Get returns the value of a declared field. ok is false for unknown
// fields and for fields that failed to decode; for the latter the partial
// value, if any, is still returned.
func (in *Instance) Get(name string) (interface{}, bool) {
	i, ok := in.shape.index[name]
	if !ok {
		return nil, false
	}
	if _, bad := in.invalid[name]; bad {
		return in.values[i], false
	}
	return in.values[i], true
}

// Fields returns the ordered (field, value) view of the instance.
func (in *Instance) Fields() []FieldValue {
	out := make([]FieldValue, len(in.shape.fields))
	for i, f := range in.shape.fields {
		out[i] = FieldValue{
			Name:     f.Name,
			Value:    in.values[i],
			Internal: isInternal(f.Type),
			Err:      in.invalid[f.Name],
		}
	}
	return out
}

// InvalidFields returns the decoding errors recorded per field, keyed by
// field name, for callers that want to detect server-side schema drift in
// leniently decoded responses.
func (in *Instance) InvalidFields() map[string]error {
	if len(in.invalid) == 0 {
		return nil
	}
	out := make(map[string]error, len(in.invalid))
	for k, v := range in.invalid {
		out[k] = v
	}
	return out
}

// Map converts the instance back to a plain mapping suitable for
// re-serialization. Fields holding the absence marker, fields that failed
// to decode without a partial value, and explicit nulls are omitted, so no
// JSON null is ever transmitted for an unset optional field.
func (in *Instance) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(in.values))
	for i, f := range in.shape.fields {
		v := encodeValue(in.values[i])
		if v == nil {
			continue
		}
		out[f.Name] = v
	}
	return out
}

func (in *Instance) MarshalJSON() ([]byte, error) {
	return json.Marshal(in.Map())
}

func (in *Instance) String() string {
	b, err := json.Marshal(in)
	if err != nil {
		return in.shape.name + "(unprintable)"
	}
	return string(b)
}

// encodeValue prepares a canonical value for serialization, recursively
// dropping absent and null entries. Returns nil when the value itself
// should be omitted.
func encodeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case absentType:
		return nil
	case *Instance:
		return t.Map()
	case []interface{}:
		out := make([]interface{}, 0, len(t))
		for _, el := range t {
			if ev := encodeValue(el); ev != nil {
				out = append(out, ev)
			}
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, el := range t {
			if ev := encodeValue(el); ev != nil {
				out[k] = ev
			}
		}
		return out
	default:
		return v
	}
}
