package api_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storpool/storpool-go/pkg/api"
	"github.com/storpool/storpool-go/pkg/schema"
)

func decodeJSON(t *testing.T, text string) interface{} {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var out interface{}
	require.Nil(t, dec.Decode(&out))
	return out
}

func TestVolumeSummaryDecode(t *testing.T) {
	raw := decodeJSON(t, `{
		"name": "testvolume", "size": 1073741824, "replication": 2,
		"placeAll": "default", "placeTail": "default", "placeHead": "default",
		"bw": "-", "iops": 1000,
		"visibleVolumeId": 1342, "objectsCount": 32, "creationTimestamp": 1585668055,
		"id": 1342, "flags": 0
	}`)
	v, err := api.VolumeSummary.Parse(raw)
	require.Nil(t, err)
	inst := v.(*schema.Instance)

	got, ok := inst.Get("size")
	assert.True(t, ok)
	assert.Equal(t, int64(1073741824), got)

	got, _ = inst.Get("bw")
	assert.Equal(t, "-", got)
	got, _ = inst.Get("iops")
	assert.Equal(t, int64(1000), got)

	// parentName and templateName fall back to the empty string
	got, ok = inst.Get("parentName")
	assert.True(t, ok)
	assert.Equal(t, "", got)

	// the debugging-only fields are flagged so presenters can hide them
	internal := map[string]bool{}
	for _, f := range inst.Fields() {
		internal[f.Name] = f.Internal
	}
	assert.True(t, internal["id"])
	assert.True(t, internal["flags"])
	assert.False(t, internal["name"])

	// unset optional fields never serialize as null
	out := inst.Map()
	assert.NotContains(t, out, "tags")
	assert.Contains(t, out, "name")
}

func TestVolumeStatusDecode(t *testing.T) {
	raw := decodeJSON(t, `{
		"name": "testvolume", "size": 1073741824, "replication": 3,
		"status": "up soon", "snapshot": false, "migrating": false,
		"decreasedRedundancy": true, "balancerBlocked": false,
		"storedSize": 4096, "onDiskSize": 8192,
		"syncingDataBytes": 0, "syncingMetaObjects": 0, "downBytes": 0,
		"downDrives": [], "missingDrives": [101], "missingTargetDrives": [],
		"softEjectingDrives": []
	}`)
	v, err := api.VolumeStatus.Parse(raw)
	require.Nil(t, err)
	inst := v.(*schema.Instance)

	got, _ := inst.Get("status")
	assert.Equal(t, "up soon", got)
	got, _ = inst.Get("missingDrives")
	assert.Equal(t, []interface{}{int64(101)}, got)
}

func TestDiskSummaryDownDisk(t *testing.T) {
	raw := decodeJSON(t, `{
		"id": 101, "serverId": 1, "ssd": true, "generationLeft": 12345,
		"model": "test-model", "serial": "test-serial",
		"description": "left rack", "softEject": "off"
	}`)
	v, err := api.DiskSummary.Parse(raw)
	require.Nil(t, err)
	inst := v.(*schema.Instance)
	assert.Equal(t, "DownDiskSummary", inst.Shape().Name())

	got, _ := inst.Get("generationLeft")
	assert.Equal(t, int64(12345), got)
}

func TestDiskSummaryUpDisk(t *testing.T) {
	raw := decodeJSON(t, `{
		"id": 101, "serverId": 1, "ssd": true, "generationLeft": -1,
		"model": "test-model", "serial": "test-serial",
		"description": "", "softEject": "off",
		"sectorsCount": 234441648, "empty": false,
		"noFua": true, "noFlush": true, "noTrim": false,
		"isWbc": false, "journaled": false, "device": "/dev/sda2",
		"agCount": 2232, "agAllocated": 345, "agFree": 1887,
		"agFull": 0, "agPartial": 12, "agFreeing": 0,
		"agMaxSizeFull": 0, "agMaxSizePartial": 12,
		"entriesCount": 1000000, "entriesAllocated": 300, "entriesFree": 999700,
		"objectsCount": 1000000, "objectsAllocated": 6836, "objectsFree": 993164,
		"objectsOnDiskSize": 476767232,
		"wbc": null, "aggregateScore": {"entries": 0, "space": 0, "total": 0},
		"scrubbingStartedBefore": 0, "scrubbedBytes": 0, "scrubbingBW": 0,
		"scrubbingFinishAfter": 0, "scrubbingPausedFor": 0,
		"scrubbingPaused": false, "lastScrubCompleted": 1585644508
	}`)
	v, err := api.DiskSummary.Parse(raw)
	require.Nil(t, err)
	inst := v.(*schema.Instance)
	assert.Equal(t, "UpDiskSummary", inst.Shape().Name())

	got, _ := inst.Get("device")
	assert.Equal(t, "/dev/sda2", got)

	// the explicit null write-back cache entry is dropped on re-serialization
	out := inst.Map()
	assert.NotContains(t, out, "wbc")
	assert.Contains(t, out, "sectorsCount")
}

func TestApiOkEnvelope(t *testing.T) {
	v, err := api.ApiOk.Parse(decodeJSON(t, `{"ok": true, "generation": 578}`))
	require.Nil(t, err)
	inst := v.(*schema.Instance)
	got, _ := inst.Get("generation")
	assert.Equal(t, int64(578), got)

	_, err = api.ApiOk.Parse(decodeJSON(t, `{"ok": false, "generation": 578}`))
	assert.NotNil(t, err)
}

func TestVolumeNameValidation(t *testing.T) {
	for _, good := range []string{"testvolume", "#internal.volume", "v-1:2.3_4"} {
		_, err := api.VolumeName.Parse(good)
		assert.Nil(t, err, "name %q", good)
	}
	for _, bad := range []interface{}{"list", "status", "white space", "", strings.Repeat("v", 200)} {
		_, err := api.VolumeName.Parse(bad)
		assert.NotNil(t, err, "name %q", bad)
	}
}

func TestVolumeNameOrGlobalId(t *testing.T) {
	v, err := api.VolumeNameOrGlobalId.Parse("testvolume")
	require.Nil(t, err)
	assert.Equal(t, "testvolume", v)

	v, err = api.VolumeNameOrGlobalId.Parse("~b.btkf3q.tjv")
	require.Nil(t, err)
	assert.Equal(t, "~b.btkf3q.tjv", v)

	_, err = api.VolumeNameOrGlobalId.Parse("~not a global id")
	assert.NotNil(t, err)
}

func TestSnapshotNameValidation(t *testing.T) {
	_, err := api.SnapshotName.Parse("*autosnap@daily")
	assert.Nil(t, err)
	_, err = api.SnapshotName.Parse("list")
	assert.NotNil(t, err)
}

func TestObjectStateMapKeys(t *testing.T) {
	raw := decodeJSON(t, `{
		"name": "testvolume", "storedSize": 4096, "onDiskSize": 8192,
		"objectsCount": 2, "objectStates": {"1": 1, "2": 1}
	}`)
	v, err := api.DiskVolumeInfo.Parse(raw)
	require.Nil(t, err)
	inst := v.(*schema.Instance)

	got, ok := inst.Get("objectStates")
	require.True(t, ok)
	states := got.(map[string]interface{})
	assert.Len(t, states, 2)
	assert.Contains(t, states, "1")

	// a key outside the known states poisons only that entry
	raw = decodeJSON(t, `{
		"name": "testvolume", "storedSize": 4096, "onDiskSize": 8192,
		"objectsCount": 2, "objectStates": {"1": 1, "99": 1}
	}`)
	inst, derr := api.DiskVolumeInfo.Decode(raw.(map[string]interface{}))
	require.NotNil(t, derr)
	require.Contains(t, inst.InvalidFields(), "objectStates")
	got, _ = inst.Get("objectStates")
	assert.Equal(t, map[string]interface{}{"1": int64(1)}, got)
}

func TestDetachClientsList(t *testing.T) {
	v, err := api.DetachClientsList.Parse("all")
	require.Nil(t, err)
	assert.Equal(t, "all", v)

	v, err = api.DetachClientsList.Parse([]interface{}{json.Number("1"), json.Number("2")})
	require.Nil(t, err)
	assert.Equal(t, []interface{}{int64(1), int64(2)}, v)

	_, err = api.DetachClientsList.Parse("some")
	assert.NotNil(t, err)
}

func TestVolumeTemplateDescDefaults(t *testing.T) {
	raw := decodeJSON(t, `{
		"name": "hybrid", "placeAll": "hdd", "placeTail": "ssd", "placeHead": "ssd",
		"bw": "-", "iops": "-", "parentName": ""
	}`)
	v, err := api.VolumeTemplateDesc.Parse(raw)
	require.Nil(t, err)
	inst := v.(*schema.Instance)

	got, _ := inst.Get("size")
	assert.Equal(t, "-", got, "an unset size reads as the no-limit marker")
	got, _ = inst.Get("replication")
	assert.Equal(t, "-", got)
}
