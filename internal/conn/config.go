package conn

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the tunable knobs of a Connection. Zero values are replaced
// with defaults in New, so a zero Config is usable.
type Config struct {
	// Timeout bounds a single HTTP exchange (connect + read).
	Timeout time.Duration `envconfig:"TIMEOUT" default:"60s"`

	// MaxRetries caps retries of server errors and network faults.
	// Rate-limit (408/429) retries are paced by the server and are not
	// subject to this cap.
	MaxRetries int `envconfig:"MAX_RETRIES" default:"5"`

	// RetryInterval is the fixed pause before retrying a 500/502 or a
	// transient network fault.
	RetryInterval time.Duration `envconfig:"RETRY_INTERVAL" default:"60s"`

	// MaxRedirects bounds the manual redirect follower.
	MaxRedirects int `envconfig:"MAX_REDIRECTS" default:"20"`

	// Proxy is an optional proxy URL applied to the transport.
	Proxy string `envconfig:"PROXY"`

	// InsecureSkipVerify disables TLS peer verification.
	InsecureSkipVerify bool `envconfig:"INSECURE_SKIP_VERIFY"`
}

// LoadConfig populates Config from environment variables (prefix BC_CONN_).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("BC_CONN", &c)
}

func (c *Config) applyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = 60 * time.Second
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = 5
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = 60 * time.Second
	}
	if c.MaxRedirects <= 0 {
		c.MaxRedirects = 20
	}
}
