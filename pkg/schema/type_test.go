package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storpool/storpool-go/pkg/schema"
)

func TestPrimitives(t *testing.T) {
	v, err := schema.Str.Parse("hello")
	assert.Nil(t, err)
	assert.Equal(t, "hello", v)

	_, err = schema.Str.Parse(42)
	assert.NotNil(t, err)

	v, err = schema.Int.Parse(json.Number("42"))
	assert.Nil(t, err)
	assert.Equal(t, int64(42), v)

	_, err = schema.Int.Parse(json.Number("4.5"))
	assert.NotNil(t, err)

	v, err = schema.Bool.Parse(true)
	assert.Nil(t, err)
	assert.Equal(t, true, v)

	v, err = schema.Float.Parse(json.Number("2.5"))
	assert.Nil(t, err)
	assert.Equal(t, 2.5, v)
}

func TestRegex(t *testing.T) {
	mac := schema.Regex("MAC Address", `^([0-9a-fA-F]{2}:){5}[0-9a-fA-F]{2}$`)

	v, err := mac.Parse("00:11:22:aa:bb:cc")
	assert.Nil(t, err)
	assert.Equal(t, "00:11:22:aa:bb:cc", v)

	_, err = mac.Parse("not-a-mac")
	assert.NotNil(t, err)

	// a value must be consumed entirely, not just have a matching prefix
	_, err = mac.Parse("00:11:22:aa:bb:cc:dd")
	assert.NotNil(t, err)
}

func TestIntRange(t *testing.T) {
	r := schema.IntRange("DiskID", 0, 4095)

	for _, good := range []interface{}{0, 4095, json.Number("12"), "12"} {
		v, err := r.Parse(good)
		assert.Nil(t, err, "value %v", good)
		assert.IsType(t, int64(0), v)
	}
	for _, bad := range []interface{}{-1, 4096, "twelve", 2.5} {
		_, err := r.Parse(bad)
		assert.NotNil(t, err, "value %v", bad)
	}
}

func TestOneOf(t *testing.T) {
	status := schema.OneOf("PeerStatus", "up", "down")

	v, err := status.Parse("up")
	assert.Nil(t, err)
	assert.Equal(t, "up", v)

	_, err = status.Parse("sideways")
	assert.NotNil(t, err)
}

func TestNamedEnum(t *testing.T) {
	states := schema.NamedEnum("ObjectState", []string{"OBJECT_UNDEF", "OBJECT_OK", "OBJECT_OUTDATED"}, 0)

	v, err := states.Parse(json.Number("1"))
	require.Nil(t, err)
	assert.Equal(t, "OBJECT_OK", v)

	// object keys arrive as strings
	v, err = states.Parse("2")
	require.Nil(t, err)
	assert.Equal(t, "OBJECT_OUTDATED", v)

	_, err = states.Parse(3)
	assert.NotNil(t, err)
	_, err = states.Parse(-1)
	assert.NotNil(t, err)
}

func TestUnlimitedInt(t *testing.T) {
	bw := schema.UnlimitedInt("Bandwidth", 0, "-")

	v, err := bw.Parse("-")
	assert.Nil(t, err)
	assert.Equal(t, "-", v)

	v, err = bw.Parse(json.Number("1000"))
	assert.Nil(t, err)
	assert.Equal(t, int64(1000), v)

	_, err = bw.Parse(-1)
	assert.NotNil(t, err)
	_, err = bw.Parse("unlimited")
	assert.NotNil(t, err)
}

func TestNameType(t *testing.T) {
	name := schema.NameType("VolumeName", `^#?[A-Za-z0-9_\-.:]+$`, 10, "list", "status")

	v, err := name.Parse("vol.1:a")
	assert.Nil(t, err)
	assert.Equal(t, "vol.1:a", v)

	_, err = name.Parse("list")
	assert.NotNil(t, err, "reserved names are rejected")

	_, err = name.Parse("0123456789")
	assert.NotNil(t, err, "the size limit is exclusive")

	v, err = name.Parse("012345678")
	assert.Nil(t, err)
	assert.Equal(t, "012345678", v)

	_, err = name.Parse("white space")
	assert.NotNil(t, err)
}

func TestSizeType(t *testing.T) {
	size := schema.SizeType("Size")

	v, err := size.Parse(json.Number("4096"))
	assert.Nil(t, err)
	assert.Equal(t, int64(4096), v)

	_, err = size.Parse(0)
	assert.NotNil(t, err)
	_, err = size.Parse(schema.SectorSize + 1)
	assert.NotNil(t, err)
}

func TestConst(t *testing.T) {
	c := schema.Const(int64(-1))

	v, err := c.Parse(json.Number("-1"))
	assert.Nil(t, err)
	assert.Equal(t, int64(-1), v)

	_, err = c.Parse(0)
	assert.NotNil(t, err)

	// the constant doubles as the default for an absent field
	d, err := c.Default()
	assert.Nil(t, err)
	assert.Equal(t, int64(-1), d)
}

func TestEither(t *testing.T) {
	e := schema.Either(schema.Int, schema.Bool)

	v, err := e.Parse(json.Number("5"))
	assert.Nil(t, err)
	assert.Equal(t, int64(5), v)

	v, err = e.Parse(false)
	assert.Nil(t, err)
	assert.Equal(t, false, v)

	_, err = e.Parse("nope")
	assert.NotNil(t, err)
}

func TestEitherOr(t *testing.T) {
	e := schema.EitherOr(schema.Int, "all")

	v, err := e.Parse("all")
	assert.Nil(t, err)
	assert.Equal(t, "all", v)

	v, err = e.Parse(7)
	assert.Nil(t, err)
	assert.Equal(t, int64(7), v)

	d, err := e.Default()
	assert.Nil(t, err)
	assert.Equal(t, "all", d)
}

func TestMaybe(t *testing.T) {
	m := schema.Maybe(schema.Int)

	v, err := m.Parse(nil)
	assert.Nil(t, err)
	assert.Equal(t, schema.Absent, v)

	d, err := m.Default()
	assert.Nil(t, err)
	assert.Equal(t, schema.Absent, d)

	_, err = m.Parse("x")
	assert.NotNil(t, err, "a present value is still validated")
}

func TestListOfKeepsValidElements(t *testing.T) {
	l := schema.ListOf(schema.Int)

	_, err := l.Parse([]interface{}{json.Number("1"), "bad", json.Number("3")})
	require.NotNil(t, err)

	partial, ok := schema.Partial(err)
	require.True(t, ok)
	assert.Equal(t, []interface{}{int64(1), int64(3)}, partial)

	d, err := l.Default()
	assert.Nil(t, err)
	assert.Equal(t, []interface{}{}, d)
}

func TestMapOfValidatesKeysAndValues(t *testing.T) {
	m := schema.MapOf(schema.IntRange("DiskID", 0, 10), schema.Str)

	v, err := m.Parse(map[string]interface{}{"3": "ok", "7": "fine"})
	require.Nil(t, err)
	assert.Equal(t, map[string]interface{}{"3": "ok", "7": "fine"}, v)

	_, err = m.Parse(map[string]interface{}{"3": "ok", "999": "out of range"})
	require.NotNil(t, err)
	partial, ok := schema.Partial(err)
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{"3": "ok"}, partial)
}
