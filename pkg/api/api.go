// Package api is the typed facade over the StorPool management API: the
// full catalog of object shapes, a registry of every known API call and
// one Go method per call. Responses are decoded leniently: an object
// with unexpected field values is still returned, with the offending
// fields recorded on the instance and a warning logged.
package api

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/storpool/storpool-go/pkg/client"
	"github.com/storpool/storpool-go/pkg/config"
	"github.com/storpool/storpool-go/pkg/schema"
)

// Response envelopes of the mutating calls.
var (
	ApiOk = schema.NewShape("ApiOk",
		schema.F("ok", schema.Const(true)),
		schema.F("generation", schema.Long),
		schema.F("info", schema.Maybe(schema.Str)),
	)

	ApiOkVolumeCreate = ApiOk.Extend("ApiOkVolumeCreate",
		schema.F("autoName", schema.Maybe(SnapshotName)),
	)

	ApiOkVolumeBackup = ApiOkVolumeCreate.Extend("ApiOkVolumeBackup",
		schema.F("remoteId", schema.Maybe(GlobalVolumeId)),
	)

	ApiOkVolumesGroupBackup = ApiOk.Extend("ApiOkVolumesGroupBackup",
		schema.F("backups", schema.MapOf(VolumeName, VolumesGroupBackupSingle)),
	)

	ApiOkSnapshotCreate = ApiOk.Extend("ApiOkSnapshotCreate",
		schema.F("autoName", schema.Maybe(SnapshotName)),
		schema.F("snapshotGlobalId", schema.Maybe(GlobalVolumeId)),
		schema.F("snapshotVisibleVolumeId", schema.Maybe(schema.Long)),
	)
)

// param is one path parameter of a call, in query template order.
type param struct {
	name string
	typ  schema.Type
}

// call describes one management API operation: its HTTP method, query
// template, path parameters, optional request payload descriptor and
// response descriptor. A nil returns means the plain ApiOk envelope.
type call struct {
	name         string
	method       string
	query        string
	multiCluster bool
	params       []param
	json         schema.Type
	jsonOptional bool
	returns      schema.Type
}

// baseQuery is the query template up to the first path parameter.
func (c *call) baseQuery() string {
	if i := strings.IndexByte(c.query, '/'); i >= 0 {
		return c.query[:i]
	}
	return c.query
}

// CallInfo is the externally visible description of a registered call.
type CallInfo struct {
	Name         string
	Method       string
	Query        string
	Params       []string
	AcceptsJSON  bool
	RequiresJSON bool
	MultiCluster bool
}

var callsByName = map[string]*call{}

func register(cs ...*call) {
	for _, c := range cs {
		if _, dup := callsByName[c.name]; dup {
			panic("duplicate API call " + c.name)
		}
		callsByName[c.name] = c
	}
}

// Calls lists every registered API call, for tooling that drives the
// API generically.
func Calls() []CallInfo {
	out := make([]CallInfo, 0, len(callsByName))
	for _, c := range callsByName {
		info := CallInfo{
			Name:         c.name,
			Method:       c.method,
			Query:        c.query,
			AcceptsJSON:  c.json != nil,
			RequiresJSON: c.json != nil && !c.jsonOptional,
			MultiCluster: c.multiCluster,
		}
		for _, p := range c.params {
			info.Params = append(info.Params, p.name)
		}
		out = append(out, info)
	}
	return out
}

// Lookup finds a registered call by its query name (the first path
// component of the query template) and HTTP method. When two calls
// share a query template the one first in call-name order wins, so the
// result is stable across runs.
func Lookup(query, method string) (CallInfo, bool) {
	names := make([]string, 0, len(callsByName))
	for name := range callsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := callsByName[name]
		if c.method == method && c.baseQuery() == query {
			info := CallInfo{
				Name:         c.name,
				Method:       c.method,
				Query:        c.query,
				AcceptsJSON:  c.json != nil,
				RequiresJSON: c.json != nil && !c.jsonOptional,
				MultiCluster: c.multiCluster,
			}
			for _, p := range c.params {
				info.Params = append(info.Params, p.name)
			}
			return info, true
		}
	}
	return CallInfo{}, false
}

// Api exposes one Go method per management API call.
type Api struct {
	c   *client.Client
	log logrus.FieldLogger
}

// New wraps an already configured client.
func New(log logrus.FieldLogger, c *client.Client) *Api {
	if log == nil {
		log = logrus.New().WithField("module", "api")
	}
	return &Api{c: c, log: log}
}

// FromConfig builds the client from a resolved configuration and wraps
// it.
func FromConfig(cfg *config.Config, opts ...client.Option) *Api {
	return New(nil, client.FromConfig(cfg, opts...))
}

// CallOption adjusts a single invocation.
type CallOption func(*callOptions)

type callOptions struct {
	clusterName string
}

// OnCluster forwards the call to the named remote cluster.
func OnCluster(name string) CallOption {
	return func(o *callOptions) { o.clusterName = name }
}

// invoke validates the arguments and payload, performs the request and
// decodes the response against the call's declared result descriptor.
// Request data is validated strictly; response data leniently, keeping
// the partial result and logging the fields that did not decode.
func (a *Api) invoke(name string, args []interface{}, jsonArg interface{}, opts ...CallOption) (interface{}, error) {
	c, ok := callsByName[name]
	if !ok {
		return nil, errors.Errorf("unknown API call %q", name)
	}
	var co callOptions
	for _, opt := range opts {
		opt(&co)
	}
	if len(args) != len(c.params) {
		return nil, errors.Errorf("%s: expected %d arguments, got %d", c.name, len(c.params), len(args))
	}

	query := c.query
	for i, p := range c.params {
		v, err := p.typ.Parse(args[i])
		if err != nil {
			return nil, errors.Wrapf(err, "%s: invalid %s", c.name, p.name)
		}
		query = strings.Replace(query, "{"+p.name+"}", fmt.Sprintf("%v", v), 1)
	}

	var body interface{}
	if jsonArg = jsonOrNil(jsonArg); jsonArg != nil {
		if c.json == nil {
			return nil, errors.Errorf("%s does not accept a JSON payload", c.name)
		}
		v, err := c.json.Parse(jsonArg)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: invalid request data", c.name)
		}
		body = encodeBody(v)
	} else if c.json != nil && !c.jsonOptional {
		return nil, errors.Errorf("%s requires a JSON payload", c.name)
	}

	raw, err := a.c.Do(&client.Request{
		Method:       c.method,
		Query:        query,
		MultiCluster: c.multiCluster,
		ClusterName:  co.clusterName,
		JSON:         body,
	})
	if err != nil {
		return nil, err
	}

	returns := c.returns
	if returns == nil {
		returns = ApiOk
	}
	val, err := returns.Parse(raw)
	if err != nil {
		if p, ok := schema.Partial(err); ok {
			a.log.WithFields(logrus.Fields{"call": c.name, "shape": returns.Name()}).
				WithError(err).Warn("response did not fully match its declared shape")
			return p, nil
		}
		return nil, errors.Wrapf(err, "%s: could not decode the response", c.name)
	}
	return val, nil
}

// Invoke performs a registered call by name with string path arguments,
// for generic drivers such as CLI tools. Numeric arguments are accepted
// in their string form.
func (a *Api) Invoke(name string, args []string, jsonArg interface{}, opts ...CallOption) (interface{}, error) {
	iargs := make([]interface{}, len(args))
	for i, s := range args {
		iargs[i] = s
	}
	return a.invoke(name, iargs, jsonArg, opts...)
}

// encodeBody strips the absence markers from a canonical value so the
// serialized payload never carries unset optional fields.
func encodeBody(v interface{}) interface{} {
	switch t := v.(type) {
	case *schema.Instance:
		return t.Map()
	case []interface{}:
		out := make([]interface{}, 0, len(t))
		for _, el := range t {
			out = append(out, encodeBody(el))
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, el := range t {
			out[k] = encodeBody(el)
		}
		return out
	default:
		return v
	}
}

func asInstance(v interface{}) *schema.Instance {
	i, _ := v.(*schema.Instance)
	return i
}

func asInstanceList(v interface{}) []*schema.Instance {
	raw, _ := v.([]interface{})
	out := make([]*schema.Instance, 0, len(raw))
	for _, el := range raw {
		if i, ok := el.(*schema.Instance); ok {
			out = append(out, i)
		}
	}
	return out
}

func asInstanceMap(v interface{}) map[string]*schema.Instance {
	raw, _ := v.(map[string]interface{})
	out := make(map[string]*schema.Instance, len(raw))
	for k, el := range raw {
		if i, ok := el.(*schema.Instance); ok {
			out[k] = i
		}
	}
	return out
}

// unwrapList extracts the single list field of a wrapper response.
func unwrapList(v interface{}, field string) []*schema.Instance {
	inst := asInstance(v)
	if inst == nil {
		return nil
	}
	lst, _ := inst.Get(field)
	return asInstanceList(lst)
}

// DevPath is the directory where the StorPool client creates device
// nodes named after attached volumes.
const DevPath = "/dev/storpool/"

// VolumeDevLinkWait polls until the device link of a volume appears
// (attach) or disappears (detach), or maxTime elapses.
func (a *Api) VolumeDevLinkWait(volumeName string, attach bool, pollTime, maxTime time.Duration) (bool, error) {
	if _, err := VolumeName.Parse(volumeName); err != nil {
		return false, err
	}
	path := DevPath + volumeName
	deadline := time.Now().Add(maxTime)
	for {
		_, err := os.Stat(path)
		if attach == (err == nil) {
			return true, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return false, errors.Wrap(err, "could not check the device link")
		}
		if time.Now().After(deadline) {
			return false, nil
		}
		time.Sleep(pollTime)
	}
}
