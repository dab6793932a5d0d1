package errors

import (
	"context"
	stderrors "errors"
	"io"
	"syscall"
	"testing"
)

func TestClassifyNetworkKinds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		err  error
		want NetworkKind
	}{
		{"deadline", context.DeadlineExceeded, KindTimeout},
		{"eof", io.EOF, KindEmptyResponse},
		{"unexpected-eof", io.ErrUnexpectedEOF, KindEmptyResponse},
		{"conn-reset", syscall.ECONNRESET, KindReceiveError},
		{"refused", syscall.ECONNREFUSED, KindOther},
		{"plain", stderrors.New("boom"), KindOther},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ne := Network("GET http://x", tc.err)
			if ne.Kind != tc.want {
				t.Fatalf("Kind = %v, want %v", ne.Kind, tc.want)
			}
		})
	}
}

func TestRetryableKinds(t *testing.T) {
	t.Parallel()
	retryable := []NetworkKind{KindTimeout, KindEmptyResponse, KindReceiveError}
	for _, k := range retryable {
		if !(&NetworkError{Kind: k}).Retryable() {
			t.Fatalf("kind %v should be retryable", k)
		}
	}
	for _, k := range []NetworkKind{KindOther, KindTooManyRedirects} {
		if (&NetworkError{Kind: k}).Retryable() {
			t.Fatalf("kind %v should not be retryable", k)
		}
	}
}

func TestNetworkErrorUnwraps(t *testing.T) {
	t.Parallel()
	ne := Network("GET http://x", io.EOF)
	if !stderrors.Is(ne, io.EOF) {
		t.Fatal("NetworkError must unwrap to the transport error")
	}
}

func TestTooManyRedirects(t *testing.T) {
	t.Parallel()
	ne := TooManyRedirects(20)
	if ne.Kind != KindTooManyRedirects {
		t.Fatalf("Kind = %v", ne.Kind)
	}
	if ne.Retryable() {
		t.Fatal("redirect overflow must not be retryable")
	}
}

func TestExtractMessageShapes(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"plain-string", "not found", "not found"},
		{"error-field", map[string]any{"error": "bad sku"}, "bad sku"},
		{
			"title-errors",
			map[string]any{"title": "Validation failed", "errors": []any{"name required", "price invalid"}},
			"Validation failed; name required; price invalid",
		},
		{
			"legacy-array",
			[]any{
				map[string]any{"status": float64(400), "message": "first"},
				map[string]any{"status": float64(400), "message": "second"},
			},
			"first; second",
		},
		{"fallback-whole-body", map[string]any{"details": "bad"}, `{"details":"bad"}`},
		{"nil", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractMessage(tc.in); got != tc.want {
				t.Fatalf("ExtractMessage = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNewClientPrefersErrorField(t *testing.T) {
	t.Parallel()
	ce := NewClient(409, map[string]any{"error": "duplicate", "details": "x"})
	if ce.Message != "duplicate" {
		t.Fatalf("Message = %q", ce.Message)
	}
	if ce.Status != 409 {
		t.Fatalf("Status = %d", ce.Status)
	}
}

func TestNewServerRendersWholeBody(t *testing.T) {
	t.Parallel()
	se := NewServer(500, map[string]any{"status": float64(500)})
	if se.Message != `{"status":500}` {
		t.Fatalf("Message = %q", se.Message)
	}
}
