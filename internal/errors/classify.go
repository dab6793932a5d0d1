package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"syscall"
)

// Network wraps a transport failure, classifying it into a NetworkKind so
// the retry policy can distinguish transient faults from permanent ones.
func Network(op string, err error) *NetworkError {
	return &NetworkError{Kind: classifyNetwork(err), Op: op, Err: err}
}

// TooManyRedirects is raised by the manual redirect follower when the
// redirect chain exceeds max hops. It is a network fault so it surfaces
// regardless of the fail-on-error setting.
func TooManyRedirects(max int) *NetworkError {
	return &NetworkError{
		Kind: KindTooManyRedirects,
		Op:   "redirect",
		Err:  fmt.Errorf("exceeded %d redirects", max),
	}
}

func classifyNetwork(err error) NetworkKind {
	var nerr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.As(err, &nerr) && nerr.Timeout():
		return KindTimeout
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return KindEmptyResponse
	case errors.Is(err, syscall.ECONNRESET), errors.Is(err, syscall.EPIPE):
		return KindReceiveError
	default:
		return KindOther
	}
}

// NewClient builds a ClientError from a 4xx status and its decoded body.
// The message comes from the body's "error" field when present, otherwise
// from the whole decoded body.
func NewClient(status int, decoded any) *ClientError {
	msg := ""
	if m, ok := decoded.(map[string]any); ok {
		if s, ok := m["error"].(string); ok {
			msg = s
		}
	}
	if msg == "" {
		msg = ExtractMessage(decoded)
	}
	return &ClientError{Status: status, Message: msg, Body: decoded}
}

// NewServer builds a ServerError from a 5xx status and its decoded body.
// No field extraction is attempted; the raw decoded body is the message.
func NewServer(status int, decoded any) *ServerError {
	return &ServerError{Status: status, Message: render(decoded), Body: decoded}
}

// ExtractMessage produces a human-readable message from a decoded error
// body. It understands plain strings, {"error": "..."} objects, structured
// {"title": ..., "errors": [...]} shapes, and legacy [{status, message}]
// arrays; anything else is rendered whole.
func ExtractMessage(decoded any) string {
	switch v := decoded.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any:
		if s, ok := v["error"].(string); ok {
			return s
		}
		if title, ok := v["title"].(string); ok {
			parts := []string{title}
			if errs, ok := v["errors"].([]any); ok {
				for _, e := range errs {
					parts = append(parts, render(e))
				}
			}
			return strings.Join(parts, "; ")
		}
		if s, ok := v["message"].(string); ok {
			return s
		}
	case []any:
		var parts []string
		for _, e := range v {
			if m, ok := e.(map[string]any); ok {
				if s, ok := m["message"].(string); ok {
					parts = append(parts, s)
					continue
				}
			}
			parts = append(parts, render(e))
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}
	return render(decoded)
}

func render(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
