package bigcommerce

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config carries the credentials and connection settings for one client.
// Exactly one auth mode must be configured: Basic (StoreURL + Username +
// APIKey) or OAuth (ClientID + AuthToken + StoreHash).
type Config struct {
	// Basic auth against a store's own /api/v2 endpoint.
	StoreURL string `yaml:"store_url" envconfig:"STORE_URL"`
	Username string `yaml:"username" envconfig:"USERNAME"`
	APIKey   string `yaml:"api_key" envconfig:"API_KEY"`

	// OAuth against the central API gateway.
	ClientID     string `yaml:"client_id" envconfig:"CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" envconfig:"CLIENT_SECRET"`
	AuthToken    string `yaml:"auth_token" envconfig:"AUTH_TOKEN"`
	StoreHash    string `yaml:"store_hash" envconfig:"STORE_HASH"`

	// APIHost overrides the OAuth gateway host. Default api.bigcommerce.com.
	APIHost string `yaml:"api_host" envconfig:"API_HOST"`

	// Timeout overrides the connection's per-request timeout.
	Timeout Duration `yaml:"timeout" envconfig:"TIMEOUT"`
}

// Duration decodes Go duration strings ("30s", "2m") from YAML and the
// environment.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for envconfig.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	var c Config
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// ConfigFromEnv populates Config from BC_-prefixed environment variables,
// e.g. BC_STORE_HASH, BC_AUTH_TOKEN.
func ConfigFromEnv() (Config, error) {
	var c Config
	return c, envconfig.Process("BC", &c)
}

// Validate checks that exactly one auth mode is fully configured.
func (c Config) Validate() error {
	basic := c.Username != "" || c.APIKey != ""
	oauth := c.ClientID != "" || c.AuthToken != ""
	switch {
	case basic && oauth:
		return fmt.Errorf("basic and oauth credentials are mutually exclusive")
	case basic:
		if c.StoreURL == "" || c.Username == "" || c.APIKey == "" {
			return fmt.Errorf("basic auth requires store_url, username and api_key")
		}
	case oauth:
		if c.ClientID == "" || c.AuthToken == "" || c.StoreHash == "" {
			return fmt.Errorf("oauth requires client_id, auth_token and store_hash")
		}
	default:
		return fmt.Errorf("no credentials configured")
	}
	return nil
}

func (c Config) oauth() bool { return c.ClientID != "" }

// baseURL is the v2 resource root for the configured auth mode.
func (c Config) baseURL() string {
	if c.oauth() {
		host := c.APIHost
		if host == "" {
			host = "https://api.bigcommerce.com"
		}
		return fmt.Sprintf("%s/stores/%s/v2", strings.TrimSuffix(host, "/"), c.StoreHash)
	}
	return strings.TrimSuffix(c.StoreURL, "/") + "/api/v2"
}
