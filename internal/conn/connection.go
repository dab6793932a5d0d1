// Package conn implements the HTTP connection layer: request construction,
// authentication-mode switching, response classification, retry with
// server-hinted backoff, and manual redirect following.
package conn

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	apierr "github.com/stackline/bigcommerce-go/internal/errors"
)

// ContentMode selects how request bodies are serialized and how response
// bodies are decoded.
type ContentMode int

const (
	// ContentJSON encodes bodies as JSON and decodes JSON responses.
	ContentJSON ContentMode = iota

	// ContentXML sends application/xml and returns response bodies as raw
	// strings without decoding.
	ContentXML

	// ContentForm URL-encodes request bodies; responses are still decoded
	// as JSON.
	ContentForm
)

// MIME returns the media type for the mode.
func (m ContentMode) MIME() string {
	switch m {
	case ContentXML:
		return "application/xml"
	case ContentForm:
		return "application/x-www-form-urlencoded"
	default:
		return "application/json"
	}
}

type authMode int

const (
	authNone authMode = iota
	authBasic
	authOAuth
)

// Connection owns one HTTP transport handle and issues synchronous requests
// through it. It is not safe for concurrent use: one logical request may be
// in flight at a time, and response state is read back through the
// introspection accessors between requests.
//
// Retries of 408/429 are paced by the server's rate-limit hint and carry no
// attempt cap; a caller that needs a bound should set a context deadline.
// Server errors (500/502) and transient network faults retry at a fixed
// interval up to MaxRetries.
type Connection struct {
	cfg Config
	log zerolog.Logger

	transport  *http.Transport
	httpClient *http.Client
	wrap       func(http.RoundTripper) http.RoundTripper

	authMode  authMode
	username  string
	apiKey    string
	clientID  string
	authToken string

	contentMode  ContentMode
	headers      map[string]string
	cipherSuites []uint16

	failOnError    bool
	autoRetry      bool
	followLocation bool

	retryAttempts     int
	redirectsFollowed int
	retryWait         backoff.BackOff

	// response state, reset before every exchange
	status      int
	statusLine  string
	respHeaders http.Header
	body        []byte
	lastError   any

	// effectiveURL persists across resets: it is the base for resolving
	// relative Location headers on the next hop.
	effectiveURL string

	sleep func(ctx context.Context, d time.Duration) error
}

// New constructs a Connection. Zero-value Config fields get defaults.
func New(cfg Config, logger zerolog.Logger) *Connection {
	cfg.applyDefaults()
	c := &Connection{
		cfg:            cfg,
		log:            logger,
		contentMode:    ContentJSON,
		headers:        make(map[string]string),
		autoRetry:      true,
		followLocation: true,
		retryWait:      backoff.NewConstantBackOff(cfg.RetryInterval),
		sleep:          sleepContext,
	}
	c.rebuildTransport()
	return c
}

// UseBasicAuth selects HTTP Basic authentication. Switching the auth mode
// drops any cached transport state.
func (c *Connection) UseBasicAuth(username, apiKey string) {
	c.authMode = authBasic
	c.username = username
	c.apiKey = apiKey
	c.rebuildTransport()
}

// UseOAuth selects token authentication via X-Auth-Client and X-Auth-Token
// headers. Switching the auth mode drops any cached transport state.
func (c *Connection) UseOAuth(clientID, authToken string) {
	c.authMode = authOAuth
	c.clientID = clientID
	c.authToken = authToken
	c.rebuildTransport()
}

// SetContentMode switches body serialization and response decoding.
func (c *Connection) SetContentMode(m ContentMode) { c.contentMode = m }

// SetFailOnError selects throwing mode: 4xx/5xx responses become errors
// instead of being absorbed into the last-error slot.
func (c *Connection) SetFailOnError(enabled bool) { c.failOnError = enabled }

// SetAutoRetry toggles the retry state machine.
func (c *Connection) SetAutoRetry(enabled bool) { c.autoRetry = enabled }

// SetFollowLocation toggles manual following of 301/302 responses.
func (c *Connection) SetFollowLocation(enabled bool) { c.followLocation = enabled }

// SetTimeout bounds a single HTTP exchange.
func (c *Connection) SetTimeout(d time.Duration) {
	c.cfg.Timeout = d
	c.httpClient.Timeout = d
}

// SetProxy routes requests through the given proxy URL.
func (c *Connection) SetProxy(rawurl string) error {
	if _, err := url.Parse(rawurl); err != nil {
		return fmt.Errorf("invalid proxy url: %w", err)
	}
	c.cfg.Proxy = rawurl
	c.rebuildTransport()
	return nil
}

// SetVerifyPeer toggles TLS peer verification.
func (c *Connection) SetVerifyPeer(verify bool) {
	c.cfg.InsecureSkipVerify = !verify
	c.rebuildTransport()
}

// SetCipherSuites restricts the TLS cipher suites offered.
func (c *Connection) SetCipherSuites(suites []uint16) {
	c.cipherSuites = suites
	c.rebuildTransport()
}

// WrapTransport installs a RoundTripper decorator (e.g. a debug logger)
// around the underlying transport.
func (c *Connection) WrapTransport(w func(http.RoundTripper) http.RoundTripper) {
	c.wrap = w
	c.rebuildTransport()
}

// AddHeader sets a header sent with every subsequent request.
func (c *Connection) AddHeader(name, value string) { c.headers[name] = value }

// RemoveHeader drops a previously added header.
func (c *Connection) RemoveHeader(name string) { delete(c.headers, name) }

// Get issues a GET. A non-nil query is appended to the URL.
func (c *Connection) Get(ctx context.Context, rawurl string, query url.Values) (any, error) {
	u := rawurl
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(rawurl, "?") {
			sep = "&"
		}
		u += sep + query.Encode()
	}
	return c.perform(ctx, http.MethodGet, u, nil)
}

// Post issues a POST with the serialized body.
func (c *Connection) Post(ctx context.Context, rawurl string, body any) (any, error) {
	return c.perform(ctx, http.MethodPost, rawurl, body)
}

// Put issues a PUT with the serialized body.
func (c *Connection) Put(ctx context.Context, rawurl string, body any) (any, error) {
	return c.perform(ctx, http.MethodPut, rawurl, body)
}

// Head issues a HEAD. The decoded result is always nil; callers inspect the
// response headers afterwards.
func (c *Connection) Head(ctx context.Context, rawurl string) (any, error) {
	return c.perform(ctx, http.MethodHead, rawurl, nil)
}

// Delete issues a DELETE.
func (c *Connection) Delete(ctx context.Context, rawurl string) (any, error) {
	return c.perform(ctx, http.MethodDelete, rawurl, nil)
}

// Status returns the HTTP status code of the last exchange.
func (c *Connection) Status() int { return c.status }

// StatusLine returns the status line of the last exchange.
func (c *Connection) StatusLine() string { return c.statusLine }

// Header returns a response header by name, case-insensitively.
func (c *Connection) Header(name string) string {
	if c.respHeaders == nil {
		return ""
	}
	return c.respHeaders.Get(name)
}

// Headers returns all response headers of the last exchange.
func (c *Connection) Headers() http.Header { return c.respHeaders }

// Body returns the raw response body bytes of the last exchange.
func (c *Connection) Body() []byte { return c.body }

// EffectiveURL returns the URL actually reached after any redirects.
func (c *Connection) EffectiveURL() string { return c.effectiveURL }

// LastError returns the decoded body of the most recent absorbed 4xx/5xx
// response. Only populated when fail-on-error is disabled.
func (c *Connection) LastError() any { return c.lastError }

// perform drives the request through the retry and redirect state machines
// as an explicit loop; each iteration is one HTTP exchange.
func (c *Connection) perform(ctx context.Context, method, rawurl string, payload any) (any, error) {
	body, err := c.encodeBody(payload)
	if err != nil {
		return nil, err
	}
	c.retryAttempts = 0
	reqMethod, reqURL := method, rawurl
	for {
		decoded, err := c.exchange(ctx, reqMethod, reqURL, body)
		if err == nil {
			// Each successful exchange gets a fresh retry budget, so a
			// retried hop does not starve the rest of a redirect chain.
			c.retryAttempts = 0
			if c.followLocation && c.isRedirect() {
				next, rerr := c.nextRedirectURL()
				if rerr != nil {
					return nil, rerr
				}
				redirectsTotal.Inc()
				c.log.Debug().Str("location", next).Int("followed", c.redirectsFollowed).Msg("following redirect")
				// Redirected POST/PUT downgrade to GET.
				reqMethod, reqURL, body = http.MethodGet, next, nil
				continue
			}
			return decoded, nil
		}
		delay, reason, retry := c.retryDelay(reqMethod, err)
		if !retry {
			return c.settle(err)
		}
		retriesTotal.WithLabelValues(reason).Inc()
		if reason == retryRateLimited {
			rateLimitWaitSeconds.Add(delay.Seconds())
		}
		c.log.Debug().Err(err).Dur("wait", delay).Str("reason", reason).Msg("retrying request")
		if serr := c.sleep(ctx, delay); serr != nil {
			return nil, serr
		}
	}
}

// exchange performs one raw HTTP round trip and classifies the outcome.
func (c *Connection) exchange(ctx context.Context, method, rawurl string, body []byte) (any, error) {
	c.resetResponse()
	op := method + " " + rawurl

	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawurl, rdr)
	if err != nil {
		return nil, apierr.Network(op, err)
	}
	c.applyHeaders(req, body)

	requestsTotal.WithLabelValues(method).Inc()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierr.Network(op, err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Network(op, err)
	}

	c.status = resp.StatusCode
	c.statusLine = resp.Proto + " " + resp.Status
	c.respHeaders = resp.Header.Clone()
	c.body = raw
	c.effectiveURL = req.URL.String()
	// Any non-redirect status ends the current chain, whatever comes of
	// classification below. The counter must not leak into later requests.
	if !c.isRedirect() {
		c.redirectsFollowed = 0
	}

	decoded := c.decodeBody(raw)
	switch {
	case c.status >= 400 && c.status <= 499:
		return nil, apierr.NewClient(c.status, decoded)
	case c.status >= 500 && c.status <= 599:
		return nil, apierr.NewServer(c.status, decoded)
	}
	return decoded, nil
}

// settle applies the fail-on-error policy to a terminal classified error.
// Network faults always surface; there is no body to absorb them into.
func (c *Connection) settle(err error) (any, error) {
	var ne *apierr.NetworkError
	if stderrors.As(err, &ne) {
		return nil, err
	}
	if c.failOnError {
		return nil, err
	}
	var ce *apierr.ClientError
	if stderrors.As(err, &ce) {
		c.lastError = ce.Body
		return nil, nil
	}
	var se *apierr.ServerError
	if stderrors.As(err, &se) {
		c.lastError = se.Body
		return nil, nil
	}
	return nil, err
}

func (c *Connection) applyHeaders(req *http.Request, body []byte) {
	req.Header.Set("Accept", c.contentMode.MIME())
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", c.contentMode.MIME())
	}
	switch c.authMode {
	case authBasic:
		req.SetBasicAuth(c.username, c.apiKey)
	case authOAuth:
		req.Header.Set("X-Auth-Client", c.clientID)
		req.Header.Set("X-Auth-Token", c.authToken)
	}
}

// encodeBody serializes a request payload: strings and byte slices pass
// through untouched, form mode URL-encodes, everything else is JSON.
func (c *Connection) encodeBody(payload any) ([]byte, error) {
	switch v := payload.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	}
	if c.contentMode == ContentForm {
		switch v := payload.(type) {
		case url.Values:
			return []byte(v.Encode()), nil
		case map[string]string:
			vals := url.Values{}
			for k, s := range v {
				vals.Set(k, s)
			}
			return []byte(vals.Encode()), nil
		default:
			return nil, fmt.Errorf("form content mode requires url.Values or map[string]string, got %T", payload)
		}
	}
	return json.Marshal(payload)
}

// decodeBody parses a response body per the content mode. XML mode returns
// the raw string; malformed JSON also falls back to the raw string.
func (c *Connection) decodeBody(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	if c.contentMode == ContentXML {
		return string(raw)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}

func (c *Connection) resetResponse() {
	c.status = 0
	c.statusLine = ""
	c.respHeaders = nil
	c.body = nil
	c.lastError = nil
}

func (c *Connection) rebuildTransport() {
	if c.transport != nil {
		c.transport.CloseIdleConnections()
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: c.cfg.InsecureSkipVerify,
			CipherSuites:       c.cipherSuites,
		},
	}
	if c.cfg.Proxy != "" {
		if u, err := url.Parse(c.cfg.Proxy); err == nil {
			t.Proxy = http.ProxyURL(u)
		}
	}
	c.transport = t
	rt := http.RoundTripper(t)
	if c.wrap != nil {
		rt = c.wrap(t)
	}
	c.httpClient = &http.Client{
		Transport: rt,
		Timeout:   c.cfg.Timeout,
		// Redirects are followed manually; see redirect.go.
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
