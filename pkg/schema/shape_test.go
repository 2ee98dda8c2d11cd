package schema_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storpool/storpool-go/pkg/schema"
)

var serviceShape = schema.NewShape("Service",
	schema.F("nodeId", schema.IntRange("NodeID", 0, 63)),
	schema.F("version", schema.Str),
	schema.F("startTime", schema.EitherOr(schema.Int, nil)),
)

var serverShape = serviceShape.Extend("Server",
	schema.F("id", schema.IntRange("ServerID", 1, 0x7fff)),
	schema.F("status", schema.OneOf("ServerStatus", "running", "waiting", "booting", "down")),
	schema.F("missingDisks", schema.ListOf(schema.IntRange("DiskID", 0, 4095))),
)

func decodeJSON(t *testing.T, text string) map[string]interface{} {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var out map[string]interface{}
	require.Nil(t, dec.Decode(&out))
	return out
}

func TestExtendKeepsParentFieldOrder(t *testing.T) {
	fields := serverShape.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"nodeId", "version", "startTime", "id", "status", "missingDisks"}, names)
}

func TestExtendShadowsInPlace(t *testing.T) {
	child := serviceShape.Extend("Widened",
		schema.F("nodeId", schema.Int),
		schema.F("extra", schema.Bool),
	)
	fields := child.Fields()
	assert.Equal(t, "nodeId", fields[0].Name)
	assert.Equal(t, schema.Int, fields[0].Type)
	assert.Equal(t, "extra", fields[len(fields)-1].Name)

	// the parent is unchanged
	f, ok := serviceShape.Field("nodeId")
	require.True(t, ok)
	assert.NotEqual(t, schema.Int, f.Type)
}

func TestDecode(t *testing.T) {
	raw := decodeJSON(t, `{
		"nodeId": 11, "version": "19.1", "startTime": 1500000000,
		"id": 11, "status": "running", "missingDisks": [],
		"unknownExtraField": "ignored"
	}`)
	inst, err := serverShape.Decode(raw)
	require.Nil(t, err)

	v, ok := inst.Get("status")
	assert.True(t, ok)
	assert.Equal(t, "running", v)

	v, ok = inst.Get("nodeId")
	assert.True(t, ok)
	assert.Equal(t, int64(11), v)

	_, ok = inst.Get("unknownExtraField")
	assert.False(t, ok, "undeclared fields are dropped")
}

func TestDecodeMissingRequiredField(t *testing.T) {
	raw := decodeJSON(t, `{"nodeId": 11, "version": "19.1", "id": 11, "missingDisks": []}`)
	inst, err := serverShape.Decode(raw)
	require.NotNil(t, err)

	verr, ok := err.(*schema.ValidationError)
	require.True(t, ok)
	assert.Equal(t, inst, verr.Partial)

	// the failed field is recorded, the others still decoded
	require.Contains(t, inst.InvalidFields(), "status")
	var mfe *schema.MissingFieldError
	require.True(t, errors.As(inst.InvalidFields()["status"], &mfe))
	assert.Equal(t, "status", mfe.Field)

	v, ok := inst.Get("version")
	assert.True(t, ok)
	assert.Equal(t, "19.1", v)

	// startTime has a declared fallback and is not an error
	v, ok = inst.Get("startTime")
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestDecodeKeepsPartialFieldValue(t *testing.T) {
	raw := decodeJSON(t, `{
		"nodeId": 11, "version": "19.1", "startTime": null,
		"id": 11, "status": "running", "missingDisks": [1, 9999, 3]
	}`)
	inst, err := serverShape.Decode(raw)
	require.NotNil(t, err)

	v, ok := inst.Get("missingDisks")
	assert.False(t, ok)
	assert.Equal(t, []interface{}{int64(1), int64(3)}, v, "the valid elements survive")
}

func TestMapOmitsAbsentAndNull(t *testing.T) {
	shape := schema.NewShape("Thing",
		schema.F("name", schema.Str),
		schema.F("note", schema.Maybe(schema.Str)),
		schema.F("debug", schema.Internal(schema.Int)),
	)
	inst, err := shape.New(map[string]interface{}{"name": "a", "note": nil})
	require.Nil(t, err)

	out := inst.Map()
	assert.Equal(t, map[string]interface{}{"name": "a"}, out)

	b, err := json.Marshal(inst)
	require.Nil(t, err)
	assert.Equal(t, `{"name":"a"}`, string(b))
}

func TestRoundTrip(t *testing.T) {
	raw := decodeJSON(t, `{
		"nodeId": 11, "version": "19.1", "startTime": 1500000000,
		"id": 11, "status": "running", "missingDisks": [4, 5]
	}`)
	inst, err := serverShape.Decode(raw)
	require.Nil(t, err)

	again, err := serverShape.Decode(inst.Map())
	require.Nil(t, err)
	assert.Equal(t, inst.Map(), again.Map())
}

func TestShapeAsType(t *testing.T) {
	wrapper := schema.NewShape("Wrapper",
		schema.F("service", serviceShape),
	)
	raw := decodeJSON(t, `{"service": {"nodeId": 3, "version": "x"}}`)
	inst, err := wrapper.Decode(raw)
	require.Nil(t, err)

	v, ok := inst.Get("service")
	require.True(t, ok)
	nested, ok := v.(*schema.Instance)
	require.True(t, ok)
	nv, _ := nested.Get("nodeId")
	assert.Equal(t, int64(3), nv)
}

func TestNewShapeRejectsDuplicateFields(t *testing.T) {
	assert.Panics(t, func() {
		schema.NewShape("Dup", schema.F("a", schema.Int), schema.F("a", schema.Str))
	})
}
