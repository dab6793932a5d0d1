package bigcommerce

import (
	"errors"

	apierr "github.com/stackline/bigcommerce-go/internal/errors"
)

// Error types re-exported so callers can match against a single package.
type (
	// NetworkError is a transport-level fault (DNS, TCP, TLS, timeout,
	// truncated transfer). Never absorbed by the non-throwing mode.
	NetworkError = apierr.NetworkError

	// ClientError is an HTTP 4xx response from the service.
	ClientError = apierr.ClientError

	// ServerError is an HTTP 5xx response from the service.
	ServerError = apierr.ServerError
)

// IsNetworkError reports whether err is (or wraps) a transport fault.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsClientError reports whether err is (or wraps) a 4xx response.
func IsClientError(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce)
}

// IsServerError reports whether err is (or wraps) a 5xx response.
func IsServerError(err error) bool {
	var se *ServerError
	return errors.As(err, &se)
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Status == 404
}
