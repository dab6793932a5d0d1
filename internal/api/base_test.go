package api

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/stackline/bigcommerce-go/internal/conn"
)

// testTransport returns a connection in throwing mode, the way the facade
// drives it.
func testTransport() *conn.Connection {
	c := conn.New(conn.Config{}, zerolog.Nop())
	c.SetFailOnError(true)
	return c
}

func TestSanitizeStripsReadOnlyFromMap(t *testing.T) {
	t.Parallel()
	got, err := sanitize(map[string]any{"id": 5, "name": "widget", "date_created": "x"}, []string{"id", "date_created"})
	if err != nil {
		t.Fatalf("sanitize error: %v", err)
	}
	if _, ok := got["id"]; ok {
		t.Fatal("id not stripped")
	}
	if _, ok := got["date_created"]; ok {
		t.Fatal("date_created not stripped")
	}
	if got["name"] != "widget" {
		t.Fatalf("name lost: %v", got)
	}
}

func TestSanitizeDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	in := map[string]any{"id": 5, "name": "widget"}
	if _, err := sanitize(in, []string{"id"}); err != nil {
		t.Fatalf("sanitize error: %v", err)
	}
	if _, ok := in["id"]; !ok {
		t.Fatal("caller's map was mutated")
	}
}

func TestSanitizeAcceptsStructs(t *testing.T) {
	t.Parallel()
	type req struct {
		ID   int    `json:"id,omitempty"`
		Name string `json:"name"`
	}
	got, err := sanitize(req{ID: 7, Name: "widget"}, []string{"id"})
	if err != nil {
		t.Fatalf("sanitize error: %v", err)
	}
	if _, ok := got["id"]; ok {
		t.Fatal("id not stripped from struct payload")
	}
	if got["name"] != "widget" {
		t.Fatalf("name lost: %v", got)
	}
}
