package client_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storpool/storpool-go/pkg/client"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...client.Option) (*client.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.Nil(t, err)
	port, err := strconv.Atoi(u.Port())
	require.Nil(t, err)

	base := []client.Option{client.WithRetryDelay(0)}
	return client.New(u.Hostname(), port, "1556129910218083475", append(base, opts...)...), srv
}

func TestDoSuccess(t *testing.T) {
	var gotPath, gotAuth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"data": {"answer": 42}}`)
	}))

	res, err := c.Do(&client.Request{Method: "GET", Query: "ServicesList"})
	require.Nil(t, err)

	assert.Equal(t, "/ctrl/1.0/ServicesList", gotPath)
	assert.Equal(t, "Storpool v1:1556129910218083475", gotAuth)

	data, ok := res.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, json.Number("42"), data["answer"])
}

func TestDoGetSendsJSONInQueryString(t *testing.T) {
	var gotJSON string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotJSON = r.URL.Query().Get("json")
		fmt.Fprint(w, `{"data": []}`)
	}))

	_, err := c.Do(&client.Request{
		Method: "GET",
		Query:  "AllPeersActiveRequests",
		JSON:   map[string]interface{}{"clients": []int{1, 2}},
	})
	require.Nil(t, err)
	assert.JSONEq(t, `{"clients": [1, 2]}`, gotJSON)
}

func TestDoPostSendsJSONBody(t *testing.T) {
	var gotBody map[string]interface{}
	var gotType string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		require.Nil(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, `{"data": {"ok": true, "generation": 7}}`)
	}))

	_, err := c.Do(&client.Request{
		Method: "POST",
		Query:  "VolumeCreate",
		JSON:   map[string]interface{}{"name": "testvolume"},
	})
	require.Nil(t, err)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, map[string]interface{}{"name": "testvolume"}, gotBody)
}

func TestDoApiError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error": {"name": "objectDoesNotExist", "descr": "no such volume", "transient": false}}`)
	}))

	_, err := c.Do(&client.Request{Method: "GET", Query: "VolumeDescribe/missing"})
	require.NotNil(t, err)

	apiErr, ok := err.(*client.ApiError)
	require.True(t, ok)
	assert.Equal(t, "objectDoesNotExist", apiErr.Name)
	assert.Equal(t, "no such volume", apiErr.Desc)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.False(t, apiErr.Transient)
}

func TestDoNonTransientErrorIsNotRetried(t *testing.T) {
	hits := 0
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": {"name": "invalidParam", "descr": "bad request"}}`)
	}), client.WithRetries(5))

	_, err := c.Do(&client.Request{Method: "GET", Query: "DisksList"})
	require.NotNil(t, err)
	assert.Equal(t, 1, hits)
}

func TestDoTransientErrorRecovers(t *testing.T) {
	hits := 0
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits <= 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, `{"error": {"name": "busy", "descr": "try again", "transient": true}}`)
			return
		}
		fmt.Fprint(w, `{"data": {"recovered": true}}`)
	}), client.WithRetries(3))

	res, err := c.Do(&client.Request{Method: "GET", Query: "TasksList"})
	require.Nil(t, err)
	assert.Equal(t, 4, hits, "three retried attempts after the first")

	data := res.(map[string]interface{})
	assert.Equal(t, true, data["recovered"])
}

func TestDoTransientErrorExhaustsRetries(t *testing.T) {
	hits := 0
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{"error": {"name": "busy", "descr": "try again", "transient": true}}`)
	}), client.WithRetries(2))

	_, err := c.Do(&client.Request{Method: "GET", Query: "TasksList"})
	require.NotNil(t, err)
	assert.Equal(t, 3, hits, "one initial attempt plus two retries")

	apiErr, ok := err.(*client.ApiError)
	require.True(t, ok, "the service's own failure envelope is preserved")
	assert.True(t, apiErr.Transient)
}

func TestNegativeRetriesClampedToZero(t *testing.T) {
	hits := 0
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{"error": {"name": "busy", "descr": "try again", "transient": true}}`)
	}), client.WithRetries(-1))

	_, err := c.Do(&client.Request{Method: "GET", Query: "TasksList"})
	require.NotNil(t, err)
	assert.Equal(t, 1, hits, "a negative retry count means a single attempt")
}

func TestDoConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	u, _ := url.Parse(srv.URL)
	port, _ := strconv.Atoi(u.Port())
	srv.Close()

	c := client.New(u.Hostname(), port, "token",
		client.WithRetries(2), client.WithRetryDelay(0))
	_, err := c.Do(&client.Request{Method: "GET", Query: "DisksList"})
	require.NotNil(t, err)

	terr, ok := err.(*client.TransportError)
	require.True(t, ok)
	assert.Equal(t, 3, terr.Attempts)
}

func TestPathComposition(t *testing.T) {
	var gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"data": []}`)
	})

	c, _ := newTestClient(t, handler, client.WithMultiCluster(true))
	_, err := c.Do(&client.Request{Method: "GET", Query: "VolumesList", MultiCluster: true, ClusterName: "backup"})
	require.Nil(t, err)
	assert.Equal(t, "/ctrl/1.0/RemoteCommand/backup/MultiCluster/VolumesList", gotPath)

	// without multicluster configured the path component is dropped
	c2, _ := newTestClient(t, handler)
	_, err = c2.Do(&client.Request{Method: "GET", Query: "VolumesList", MultiCluster: true})
	require.Nil(t, err)
	assert.Equal(t, "/ctrl/1.0/VolumesList", gotPath)
}
