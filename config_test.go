package bigcommerce

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bigcommerce.yaml")
	data := []byte("store_url: https://store.example.com\nusername: admin\napi_key: key123\ntimeout: 30s\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.StoreURL != "https://store.example.com" || cfg.Username != "admin" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if time.Duration(cfg.Timeout) != 30*time.Second {
		t.Fatalf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()
	if _, err := LoadConfig("/does/not/exist.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("BC_CLIENT_ID", "cid")
	t.Setenv("BC_AUTH_TOKEN", "tok")
	t.Setenv("BC_STORE_HASH", "abc123")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv error: %v", err)
	}
	if cfg.ClientID != "cid" || cfg.AuthToken != "tok" || cfg.StoreHash != "abc123" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRules(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty", Config{}, true},
		{"basic-ok", Config{StoreURL: "https://x", Username: "u", APIKey: "k"}, false},
		{"basic-missing-url", Config{Username: "u", APIKey: "k"}, true},
		{"oauth-ok", Config{ClientID: "c", AuthToken: "t", StoreHash: "h"}, false},
		{"oauth-missing-hash", Config{ClientID: "c", AuthToken: "t"}, true},
		{"mixed", Config{StoreURL: "https://x", Username: "u", APIKey: "k", ClientID: "c", AuthToken: "t", StoreHash: "h"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate = %v, wantErr=%v", err, tc.wantErr)
			}
		})
	}
}

func TestBaseURL(t *testing.T) {
	t.Parallel()
	basic := Config{StoreURL: "https://store.example.com/", Username: "u", APIKey: "k"}
	if got := basic.baseURL(); got != "https://store.example.com/api/v2" {
		t.Fatalf("basic baseURL = %q", got)
	}
	oauth := Config{ClientID: "c", AuthToken: "t", StoreHash: "abc123"}
	if got := oauth.baseURL(); got != "https://api.bigcommerce.com/stores/abc123/v2" {
		t.Fatalf("oauth baseURL = %q", got)
	}
}
