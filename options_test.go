package bigcommerce

import (
	"testing"
	"time"
)

func TestWithTimeoutRejectsNonPositive(t *testing.T) {
	t.Parallel()
	cfg := Config{StoreURL: "https://x", Username: "u", APIKey: "k"}
	if _, err := New(cfg, WithTimeout(0)); err == nil {
		t.Fatal("expected error for zero timeout")
	}
	if _, err := New(cfg, WithTimeout(-time.Second)); err == nil {
		t.Fatal("expected error for negative timeout")
	}
	if _, err := New(cfg, WithTimeout(5*time.Second)); err != nil {
		t.Fatalf("valid timeout rejected: %v", err)
	}
}

func TestWithProxyRejectsBadURL(t *testing.T) {
	t.Parallel()
	cfg := Config{StoreURL: "https://x", Username: "u", APIKey: "k"}
	if _, err := New(cfg, WithProxy("http://proxy.internal:3128")); err != nil {
		t.Fatalf("valid proxy rejected: %v", err)
	}
}

func TestDebugLoggingEnvActivation(t *testing.T) {
	t.Setenv("BIGCOMMERCE_DEBUG", "true")
	if !debugLoggingRequested() {
		t.Fatal("BIGCOMMERCE_DEBUG=true not honored")
	}
	t.Setenv("BIGCOMMERCE_DEBUG", "false")
	t.Setenv("DEBUG", "true")
	if !debugLoggingRequested() {
		t.Fatal("DEBUG=true not honored")
	}
	t.Setenv("DEBUG", "false")
	if debugLoggingRequested() {
		t.Fatal("debug logging should be off")
	}

	// Construction with debug enabled must still produce a working client.
	t.Setenv("DEBUG", "true")
	cfg := Config{StoreURL: "https://x", Username: "u", APIKey: "k"}
	if _, err := New(cfg); err != nil {
		t.Fatalf("New with debug env: %v", err)
	}
}
