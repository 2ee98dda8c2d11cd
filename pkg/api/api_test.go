package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storpool/storpool-go/pkg/api"
	"github.com/storpool/storpool-go/pkg/client"
)

func newTestApi(t *testing.T, handler http.Handler) *api.Api {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.Nil(t, err)
	port, err := strconv.Atoi(u.Port())
	require.Nil(t, err)

	c := client.New(u.Hostname(), port, "token",
		client.WithRetries(0), client.WithRetryDelay(0))
	return api.New(nil, c)
}

const volumeSummaryFixture = `{
	"name": "testvolume", "size": 1073741824, "replication": 2,
	"placeAll": "default", "placeTail": "default", "placeHead": "default",
	"bw": "-", "iops": "-",
	"visibleVolumeId": 1342, "objectsCount": 32, "creationTimestamp": 1585668055
}`

func TestVolumesList(t *testing.T) {
	var gotPath string
	a := newTestApi(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprintf(w, `{"data": [%s]}`, volumeSummaryFixture)
	}))

	vols, err := a.VolumesList()
	require.Nil(t, err)
	assert.Equal(t, "/ctrl/1.0/VolumesList", gotPath)
	require.Len(t, vols, 1)

	name, ok := vols[0].Get("name")
	assert.True(t, ok)
	assert.Equal(t, "testvolume", name)
}

func TestVolumeCreateValidatesBeforeSending(t *testing.T) {
	hits := 0
	a := newTestApi(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `{"data": {"ok": true, "generation": 578}}`)
	}))

	_, err := a.VolumeCreate(map[string]interface{}{"name": "no spaces allowed"})
	require.NotNil(t, err)
	assert.Equal(t, 0, hits, "an invalid descriptor never reaches the service")

	res, err := a.VolumeCreate(map[string]interface{}{
		"name":     "testvolume",
		"size":     1073741824,
		"template": "hybrid",
	})
	require.Nil(t, err)
	assert.Equal(t, 1, hits)

	gen, ok := res.Get("generation")
	assert.True(t, ok)
	assert.Equal(t, int64(578), gen)
}

func TestVolumeCreateOmitsUnsetFields(t *testing.T) {
	var gotBody map[string]interface{}
	a := newTestApi(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Nil(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, `{"data": {"ok": true, "generation": 1}}`)
	}))

	_, err := a.VolumeCreate(map[string]interface{}{"name": "testvolume", "template": "hybrid"})
	require.Nil(t, err)

	keys := make([]string, 0, len(gotBody))
	for k := range gotBody {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	assert.Equal(t, []string{"name", "template"}, keys)
}

func TestVolumeUpdateRequiresPayload(t *testing.T) {
	hits := 0
	a := newTestApi(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `{"data": {"ok": true, "generation": 1}}`)
	}))

	// a nil desc is a typed nil map here, not a bare nil interface
	_, err := a.VolumeUpdate("testvolume", nil)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "requires a JSON payload")
	assert.Equal(t, 0, hits, "the request must be rejected before it is sent")
}

func TestLenientResponseDecode(t *testing.T) {
	// replication 9 is out of range; the rest of the object must survive
	a := newTestApi(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": [{
			"name": "testvolume", "size": 1073741824, "replication": 9,
			"placeAll": "default", "placeTail": "default", "placeHead": "default",
			"bw": "-", "iops": "-",
			"visibleVolumeId": 1342, "objectsCount": 32, "creationTimestamp": 1585668055
		}]}`)
	}))

	vols, err := a.VolumesList()
	require.Nil(t, err, "a drifting response is reported, not rejected")
	require.Len(t, vols, 1)

	require.Contains(t, vols[0].InvalidFields(), "replication")
	name, ok := vols[0].Get("name")
	assert.True(t, ok)
	assert.Equal(t, "testvolume", name)
}

func TestApiErrorPassthrough(t *testing.T) {
	a := newTestApi(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error": {"name": "objectDoesNotExist", "descr": "volume not found"}}`)
	}))

	_, err := a.VolumeDescribe("missing")
	require.NotNil(t, err)

	apiErr, ok := err.(*client.ApiError)
	require.True(t, ok)
	assert.Equal(t, "objectDoesNotExist", apiErr.Name)
}

func TestInvokeWithStringArguments(t *testing.T) {
	var gotPath string
	a := newTestApi(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"data": {"ok": true, "generation": 9}}`)
	}))

	_, err := a.Invoke("diskEject", []string{"101"}, nil)
	require.Nil(t, err)
	assert.Equal(t, "/ctrl/1.0/DiskEject/101", gotPath)

	_, err = a.Invoke("diskEject", []string{"101", "extra"}, nil)
	assert.NotNil(t, err, "the argument count is checked")

	_, err = a.Invoke("diskEject", []string{"4096"}, nil)
	assert.NotNil(t, err, "path arguments are validated like any other value")
}

func TestOnClusterForwardsTheCall(t *testing.T) {
	var gotPath string
	a := newTestApi(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"data": []}`)
	}))

	_, err := a.TasksList(api.OnCluster("backup"))
	require.Nil(t, err)
	assert.Equal(t, "/ctrl/1.0/RemoteCommand/backup/TasksList", gotPath)
}

func TestLookup(t *testing.T) {
	info, ok := api.Lookup("VolumesList", "GET")
	require.True(t, ok)
	assert.Equal(t, "volumesList", info.Name)
	assert.False(t, info.AcceptsJSON)

	info, ok = api.Lookup("VolumeCreate", "POST")
	require.True(t, ok)
	assert.True(t, info.RequiresJSON)

	// the query name alone selects the call even when it has parameters
	info, ok = api.Lookup("VolumeDescribe", "GET")
	require.True(t, ok)
	assert.Equal(t, []string{"volumeName"}, info.Params)

	_, ok = api.Lookup("NoSuchQuery", "GET")
	assert.False(t, ok)
}

func TestCallsRegistryIsComplete(t *testing.T) {
	calls := api.Calls()
	assert.Greater(t, len(calls), 90)

	byName := map[string]api.CallInfo{}
	for _, c := range calls {
		assert.NotEmpty(t, c.Name)
		assert.Contains(t, []string{"GET", "POST"}, c.Method)
		byName[c.Name] = c
	}
	assert.Contains(t, byName, "volumesReassignWait")
	assert.Contains(t, byName, "iSCSIConfig")
	assert.True(t, byName["volumesList"].MultiCluster)
}
