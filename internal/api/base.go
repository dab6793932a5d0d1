// Package api contains the per-resource endpoint functions layered above
// the connection. Each resource kind maps to a typed decoder at compile
// time; there is no runtime resource-name lookup.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Transport is the contract the connection layer exposes to this package:
// synchronous call-and-get-parsed-body semantics plus raw-body and status
// introspection for typed decoding.
type Transport interface {
	Get(ctx context.Context, url string, query url.Values) (any, error)
	Post(ctx context.Context, url string, body any) (any, error)
	Put(ctx context.Context, url string, body any) (any, error)
	Delete(ctx context.Context, url string) (any, error)
	Body() []byte
	Status() int
}

func getOne[T any](ctx context.Context, t Transport, rawurl string) (*T, error) {
	if _, err := t.Get(ctx, rawurl, nil); err != nil {
		return nil, err
	}
	return decode[T](t)
}

func getList[T any](ctx context.Context, t Transport, rawurl string, filter url.Values) ([]T, error) {
	if _, err := t.Get(ctx, rawurl, filter); err != nil {
		return nil, err
	}
	if emptyResponse(t) {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal(t.Body(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func create[T any](ctx context.Context, t Transport, rawurl string, fields any, readOnly []string) (*T, error) {
	payload, err := sanitize(fields, readOnly)
	if err != nil {
		return nil, err
	}
	if _, err := t.Post(ctx, rawurl, payload); err != nil {
		return nil, err
	}
	return decode[T](t)
}

func update[T any](ctx context.Context, t Transport, rawurl string, fields any, readOnly []string) (*T, error) {
	payload, err := sanitize(fields, readOnly)
	if err != nil {
		return nil, err
	}
	if _, err := t.Put(ctx, rawurl, payload); err != nil {
		return nil, err
	}
	return decode[T](t)
}

func remove(ctx context.Context, t Transport, rawurl string) error {
	_, err := t.Delete(ctx, rawurl)
	return err
}

// count fetches a {"count": n} resource.
func count(ctx context.Context, t Transport, rawurl string) (int, error) {
	if _, err := t.Get(ctx, rawurl, nil); err != nil {
		return 0, err
	}
	var out struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(t.Body(), &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func decode[T any](t Transport) (*T, error) {
	if emptyResponse(t) {
		return nil, nil
	}
	var out T
	if err := json.Unmarshal(t.Body(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func emptyResponse(t Transport) bool {
	return len(t.Body()) == 0 || t.Status() == http.StatusNoContent
}

// sanitize renders fields to a generic map and strips the read-only keys
// the remote service rejects on create/update.
func sanitize(fields any, readOnly []string) (map[string]any, error) {
	var m map[string]any
	switch v := fields.(type) {
	case map[string]any:
		m = make(map[string]any, len(v))
		for k, val := range v {
			m[k] = val
		}
	default:
		raw, err := json.Marshal(fields)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
	}
	for _, k := range readOnly {
		delete(m, k)
	}
	return m, nil
}
