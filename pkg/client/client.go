// Package client executes JSON-over-HTTP requests against the StorPool
// management service, retrying transient failures with a fixed delay and
// surfacing structured failures as typed errors.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/storpool/storpool-go/pkg/config"
)

// APIPrefix is the fixed path prefix of every management API query.
const APIPrefix = "/ctrl/1.0"

const (
	// DefaultTimeout bounds a single request attempt.
	DefaultTimeout = 300 * time.Second
	// DefaultRetries is the number of retries after the first attempt.
	DefaultRetries = 5
	// DefaultRetryDelay is the fixed sleep between attempts.
	DefaultRetryDelay = time.Second
)

// Client issues requests to one management endpoint. Each client owns its
// transport and resolved settings; instances are not shared.
type Client struct {
	host         string
	port         int
	auth         string
	timeout      time.Duration
	retries      int
	retryDelay   time.Duration
	multiCluster bool
	log          logrus.FieldLogger
	http         *http.Client
}

// Option adjusts a Client under construction.
type Option func(*Client)

// WithTimeout sets the per-attempt wall-clock timeout.
func WithTimeout(d time.Duration) Option { return func(c *Client) { c.timeout = d } }

// WithRetries sets how many times a transient failure is retried.
// Negative values mean no retries.
func WithRetries(n int) Option { return func(c *Client) { c.retries = n } }

// WithRetryDelay sets the fixed sleep between attempts.
func WithRetryDelay(d time.Duration) Option { return func(c *Client) { c.retryDelay = d } }

// WithMultiCluster enables the MultiCluster path component on calls that
// support it.
func WithMultiCluster(enabled bool) Option { return func(c *Client) { c.multiCluster = enabled } }

// WithLogger installs a custom logger.
func WithLogger(log logrus.FieldLogger) Option { return func(c *Client) { c.log = log } }

// New creates a client for an explicitly specified endpoint.
func New(host string, port int, auth string, opts ...Option) *Client {
	c := &Client{
		host:       host,
		port:       port,
		auth:       auth,
		timeout:    DefaultTimeout,
		retries:    DefaultRetries,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.retries < 0 {
		c.retries = 0
	}
	if c.log == nil {
		c.log = logrus.New().WithField("module", "client")
	}
	c.http = &http.Client{Timeout: c.timeout}
	return c
}

// FromConfig creates a client from a resolved configuration.
func FromConfig(cfg *config.Config, opts ...Option) *Client {
	base := []Option{WithMultiCluster(cfg.MultiCluster())}
	return New(cfg.Host(), cfg.Port(), cfg.AuthToken(), append(base, opts...)...)
}

// Request describes one management API invocation.
type Request struct {
	// Method is the HTTP method, GET or POST.
	Method string
	// Query is the API query with path parameters already substituted,
	// e.g. "VolumeDescribe/testvolume".
	Query string
	// MultiCluster marks calls that accept the MultiCluster path
	// component; it only takes effect on clients configured for it.
	MultiCluster bool
	// ClusterName, when set, forwards the call to the named remote
	// cluster via the RemoteCommand path component.
	ClusterName string
	// JSON is the optional payload. GET requests send it URL-encoded in
	// the query string, POST requests as the request body.
	JSON interface{}
}

// Do performs the request and returns the decoded "data" member of the
// response envelope. Transient failures are retried up to the configured
// count with a fixed delay; exhaustion or a non-transient transport
// failure yields a *TransportError, a structured rejection an *ApiError.
func (c *Client) Do(req *Request) (interface{}, error) {
	var payload []byte
	if req.JSON != nil {
		var err error
		if payload, err = json.Marshal(req.JSON); err != nil {
			return nil, errors.Wrap(err, "could not encode the request JSON")
		}
	}

	reqURL := fmt.Sprintf("http://%s:%d%s", c.host, c.port, c.path(req))
	body := payload
	if req.Method == http.MethodGet && payload != nil {
		reqURL += "?json=" + url.QueryEscape(string(payload))
		body = nil
	}

	log := c.log.WithFields(logrus.Fields{"method": req.Method, "query": req.Query})

	var result interface{}
	attempts := 0
	op := func() error {
		attempts++
		res, err := c.attempt(req.Method, reqURL, body)
		if err != nil {
			if isTransient(err) {
				log.WithField("attempt", attempts).WithError(err).Warn("transient API failure")
				return err
			}
			return backoff.Permanent(err)
		}
		result = res
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryDelay), uint64(c.retries))
	if err := backoff.Retry(op, policy); err != nil {
		var apiErr *ApiError
		if errors.As(err, &apiErr) {
			return nil, apiErr
		}
		return nil, &TransportError{Attempts: attempts, Err: err}
	}
	return result, nil
}

func (c *Client) path(req *Request) string {
	p := APIPrefix + "/"
	if req.ClusterName != "" {
		p += "RemoteCommand/" + req.ClusterName + "/"
	}
	if req.MultiCluster && c.multiCluster {
		p += "MultiCluster/"
	}
	return p + req.Query
}

func (c *Client) attempt(method, reqURL string, body []byte) (interface{}, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequest(method, reqURL, rd)
	if err != nil {
		return nil, errors.Wrap(err, "could not build the HTTP request")
	}
	httpReq.Header.Set("Authorization", "Storpool v1:"+c.auth)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var envelope map[string]interface{}
	if err := dec.Decode(&envelope); err != nil {
		return nil, errors.Wrap(err, "invalid response body")
	}

	if _, failed := envelope["error"]; failed || resp.StatusCode != http.StatusOK {
		return nil, newApiError(resp.StatusCode, envelope)
	}
	return envelope["data"], nil
}
