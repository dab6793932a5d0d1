package conn

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	apierr "github.com/stackline/bigcommerce-go/internal/errors"
)

const (
	retryRateLimited = "rate-limited"
	retryServerError = "server-error"
	retryNetwork     = "network"
)

// retryDelay decides whether the classified error is retryable and how long
// to pause first.
//
// 408/429 use the server's own reset window and are not bounded by
// MaxRetries: the server owns the pacing, and a cooperative client keeps
// waiting as long as it keeps being told to. 500/502 and transient network
// faults pause for the fixed retry interval, bounded by MaxRetries.
func (c *Connection) retryDelay(method string, err error) (time.Duration, string, bool) {
	if !c.autoRetry {
		return 0, "", false
	}

	var ce *apierr.ClientError
	if stderrors.As(err, &ce) {
		if ce.Status != http.StatusRequestTimeout && ce.Status != http.StatusTooManyRequests {
			return 0, "", false
		}
		return c.rateLimitDelay(method), retryRateLimited, true
	}

	retryable := false
	reason := ""
	var se *apierr.ServerError
	var ne *apierr.NetworkError
	switch {
	case stderrors.As(err, &se):
		retryable = se.Status == http.StatusInternalServerError || se.Status == http.StatusBadGateway
		reason = retryServerError
	case stderrors.As(err, &ne):
		retryable = ne.Retryable()
		reason = retryNetwork
	}
	if !retryable || c.retryAttempts >= c.cfg.MaxRetries {
		return 0, "", false
	}
	c.retryAttempts++
	return c.retryWait.NextBackOff(), reason, true
}

// rateLimitDelay reads the server's throttle hint: X-Rate-Limit-Time-Reset-Ms
// in milliseconds, or x-retry-after in seconds for HEAD requests. A missing
// or unparsable header means no pause.
func (c *Connection) rateLimitDelay(method string) time.Duration {
	if method == http.MethodHead {
		if s := c.Header("x-retry-after"); s != "" {
			if secs, err := strconv.Atoi(s); err == nil {
				return time.Duration(secs) * time.Second
			}
		}
		return 0
	}
	if s := c.Header("X-Rate-Limit-Time-Reset-Ms"); s != "" {
		if ms, err := strconv.Atoi(s); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return 0
}
