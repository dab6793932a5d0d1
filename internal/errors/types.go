// Package errors defines the failure taxonomy for the connection layer.
// Three kinds exist: network faults, 4xx client errors, and 5xx server
// errors. The retry policy keys off this classification.
package errors

import "fmt"

// NetworkKind identifies the transport-level failure class. Only a subset
// of kinds is retryable.
type NetworkKind int

const (
	// KindOther covers DNS, TLS, and any fault not matched below.
	KindOther NetworkKind = iota

	// KindTimeout is a connect or read deadline expiry.
	KindTimeout

	// KindEmptyResponse is a connection closed before any response arrived.
	KindEmptyResponse

	// KindReceiveError is a failure while reading an in-flight response.
	KindReceiveError

	// KindTooManyRedirects is raised when the manual redirect follower
	// exceeds its configured bound.
	KindTooManyRedirects
)

// String returns a human-readable representation of the kind.
func (k NetworkKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindEmptyResponse:
		return "empty-response"
	case KindReceiveError:
		return "receive-error"
	case KindTooManyRedirects:
		return "too-many-redirects"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// NetworkError is a transport-level fault: DNS, TCP, TLS, timeout, or a
// truncated transfer. Network errors always surface to the caller; there is
// no response body to absorb them into.
type NetworkError struct {
	Kind NetworkKind
	Op   string // method + URL of the failed exchange
	Err  error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network error (%s) during %s: %v", e.Kind, e.Op, e.Err)
	}
	return fmt.Sprintf("network error (%s) during %s", e.Kind, e.Op)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error { return e.Err }

// Retryable reports whether the fault class is transient enough to retry.
func (e *NetworkError) Retryable() bool {
	switch e.Kind {
	case KindTimeout, KindEmptyResponse, KindReceiveError:
		return true
	default:
		return false
	}
}

// ClientError is an HTTP 4xx response from the remote service.
type ClientError struct {
	Status  int
	Message string
	Body    any // decoded response body, kept for the last-error slot
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	return fmt.Sprintf("client error (%d): %s", e.Status, e.Message)
}

// ServerError is an HTTP 5xx response from the remote service.
type ServerError struct {
	Status  int
	Message string
	Body    any
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}
