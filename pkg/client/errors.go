package client

import (
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"syscall"
)

// ApiError is a structured failure envelope returned by the management
// service.
type ApiError struct {
	Status    int
	Name      string
	Desc      string
	Transient bool
	Raw       map[string]interface{}
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Desc)
}

func newApiError(status int, envelope map[string]interface{}) *ApiError {
	e := &ApiError{
		Status: status,
		Name:   "<missing error name>",
		Desc:   "<missing error description>",
		Raw:    envelope,
	}
	if details, ok := envelope["error"].(map[string]interface{}); ok {
		if s, ok := details["name"].(string); ok {
			e.Name = s
		}
		if s, ok := details["descr"].(string); ok {
			e.Desc = s
		}
		if b, ok := details["transient"].(bool); ok {
			e.Transient = b
		}
	}
	return e
}

// TransportError reports a request that could not be completed at the
// HTTP/network level, after any retries were exhausted.
type TransportError struct {
	Attempts int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("API request failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Cause supports pkg/errors style unwrapping.
func (e *TransportError) Cause() error { return e.Err }

// isTransient classifies failures worth retrying: refused, reset,
// aborted or broken connections, timeouts, truncated HTTP exchanges,
// and failure envelopes the service itself marks as transient.
func isTransient(err error) bool {
	var apiErr *ApiError
	if stderrors.As(err, &apiErr) {
		return apiErr.Transient
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	for _, errno := range []syscall.Errno{
		syscall.ECONNREFUSED,
		syscall.ECONNRESET,
		syscall.ECONNABORTED,
		syscall.EPIPE,
	} {
		if stderrors.Is(err, errno) {
			return true
		}
	}
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	return false
}
