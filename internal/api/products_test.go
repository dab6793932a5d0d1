package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stackline/bigcommerce-go/internal/types"
)

func TestGetProduct(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/5" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(types.Product{ID: 5, Name: "widget", SKU: "W-1"})
	}))
	defer srv.Close()

	got, err := GetProduct(context.Background(), testTransport(), srv.URL, 5)
	if err != nil || got == nil || got.ID != 5 || got.SKU != "W-1" {
		t.Fatalf("GetProduct unexpected: got=%+v err=%v", got, err)
	}
}

func TestListProductsForwardsFilter(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("sku") != "W-1" {
			t.Errorf("filter not forwarded: %v", r.URL.Query())
		}
		_ = json.NewEncoder(w).Encode([]types.Product{{ID: 5}})
	}))
	defer srv.Close()

	got, err := ListProducts(context.Background(), testTransport(), srv.URL, url.Values{"sku": {"W-1"}})
	if err != nil || len(got) != 1 || got[0].ID != 5 {
		t.Fatalf("ListProducts unexpected: got=%+v err=%v", got, err)
	}
}

func TestCreateProductStripsReadOnlyFields(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		for _, k := range []string{"id", "date_created", "calculated_price"} {
			if _, ok := payload[k]; ok {
				t.Errorf("read-only field %q sent on create", k)
			}
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(types.Product{ID: 9, Name: "widget"})
	}))
	defer srv.Close()

	fields := map[string]any{
		"id": 1, "name": "widget", "price": "12.50",
		"date_created": "now", "calculated_price": "13.00",
	}
	got, err := CreateProduct(context.Background(), testTransport(), srv.URL, fields)
	if err != nil || got == nil || got.ID != 9 {
		t.Fatalf("CreateProduct unexpected: got=%+v err=%v", got, err)
	}
}

func TestDeleteProductNoContent(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := DeleteProduct(context.Background(), testTransport(), srv.URL, 5); err != nil {
		t.Fatalf("DeleteProduct error: %v", err)
	}
}

func TestProductCount(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/count" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"count":42}`))
	}))
	defer srv.Close()

	got, err := ProductCount(context.Background(), testTransport(), srv.URL)
	if err != nil || got != 42 {
		t.Fatalf("ProductCount = %d, err=%v", got, err)
	}
}
