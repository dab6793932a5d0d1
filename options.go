package bigcommerce

// Functional options that configure the Client during construction. Kept in
// a standalone file so all available knobs are discoverable at a glance.

import (
	"fmt"
	"time"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithTimeout bounds a single HTTP exchange (connect, TLS handshake, and
// reading the response). Retry sleeps are not counted; use a context
// deadline to bound a whole call including retries.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be > 0")
		}
		c.conn.SetTimeout(d)
		return nil
	}
}

// WithAutoRetry toggles automatic retry of rate-limited requests, 500/502
// responses, and transient network faults.
func WithAutoRetry(enabled bool) Option {
	return func(c *Client) error {
		c.conn.SetAutoRetry(enabled)
		return nil
	}
}

// WithFollowLocation toggles manual following of 301/302 redirects.
func WithFollowLocation(enabled bool) Option {
	return func(c *Client) error {
		c.conn.SetFollowLocation(enabled)
		return nil
	}
}

// WithProxy routes all requests through the given proxy URL.
func WithProxy(rawurl string) Option {
	return func(c *Client) error {
		return c.conn.SetProxy(rawurl)
	}
}

// WithVerifyPeer toggles TLS peer verification. Disable only against
// development stores with self-signed certificates.
func WithVerifyPeer(verify bool) Option {
	return func(c *Client) error {
		c.conn.SetVerifyPeer(verify)
		return nil
	}
}

// WithCipherSuites restricts the TLS cipher suites offered to the server.
func WithCipherSuites(suites []uint16) Option {
	return func(c *Client) error {
		c.conn.SetCipherSuites(suites)
		return nil
	}
}

// WithDebugLogging wraps the connection's transport so each request and
// response is dumped to the log when enabled is true. Dumps include bodies
// and auth headers; keep this out of production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.conn.WrapTransport(newDebugTransport)
		}
		return nil
	}
}
