package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/quocthai179/my-succulent-store/internal/core/gateway"
	"github.com/quocthai179/my-succulent-store/internal/core/models"
)

var testProducts = []models.Product{
	{ID: 10, Name: "Sen đá nâu", Category: "Echeveria", Price: 65000},
	{ID: 11, Name: "Sen đá kim cương", Category: "Haworthia", Price: 95000},
	{ID: 12, Name: "Chậu sứ trắng", Category: "Chậu sen đá", Price: 55000},
	{ID: 13, Name: "Sen đá viền lửa", Category: "echeveria", Price: 120000},
}

func newCatalogServer(t *testing.T, products []models.Product) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(products)
	}))
}

func TestLoad_ReplacesHeldSet(t *testing.T) {
	srv := newCatalogServer(t, testProducts)
	defer srv.Close()

	c := New(gateway.New(srv.URL, time.Second))
	got := c.Load(context.Background())

	if !reflect.DeepEqual(got, testProducts) {
		t.Errorf("Load() = %+v, want %+v", got, testProducts)
	}
	if c.Degraded() {
		t.Error("cache marked degraded after successful load")
	}
	if c.Count() != len(testProducts) {
		t.Errorf("Count() = %d, want %d", c.Count(), len(testProducts))
	}
}

func TestLoad_FallbackOnUnreachable(t *testing.T) {
	srv := newCatalogServer(t, testProducts)
	srv.Close() // connection refused

	c := New(gateway.New(srv.URL, time.Second))
	got := c.Load(context.Background())

	if !reflect.DeepEqual(got, Fallback) {
		t.Errorf("Load() under unreachable backend = %+v, want bundled fallback", got)
	}
	if !c.Degraded() {
		t.Error("cache not marked degraded")
	}
}

func TestLoad_FallbackOnHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(gateway.New(srv.URL, time.Second))
	got := c.Load(context.Background())

	if !reflect.DeepEqual(got, Fallback) {
		t.Error("HTTP failure should substitute the bundled fallback wholesale")
	}
}

func TestLoad_RecoversFromDegraded(t *testing.T) {
	srv := newCatalogServer(t, testProducts)
	defer srv.Close()

	c := New(gateway.New(srv.URL, time.Second))
	c.mu.Lock()
	c.products = Fallback
	c.degraded = true
	c.mu.Unlock()

	c.Load(context.Background())
	if c.Degraded() {
		t.Error("successful load should clear degraded state")
	}
}

func TestFilter(t *testing.T) {
	srv := newCatalogServer(t, testProducts)
	defer srv.Close()

	c := New(gateway.New(srv.URL, time.Second))
	c.Load(context.Background())

	t.Run("case-insensitive match", func(t *testing.T) {
		got := c.Filter([]string{"ECHEVERIA"})
		if len(got) != 2 {
			t.Fatalf("Filter() returned %d products, want 2", len(got))
		}
		if got[0].ID != 10 || got[1].ID != 13 {
			t.Errorf("Filter() = %+v, want products 10 and 13", got)
		}
	})

	t.Run("multiple categories", func(t *testing.T) {
		got := c.Filter([]string{"Haworthia", "Chậu sen đá"})
		if len(got) != 2 {
			t.Errorf("Filter() returned %d products, want 2", len(got))
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		if got := c.Filter([]string{"Xương rồng"}); len(got) != 0 {
			t.Errorf("Filter() = %+v, want none", got)
		}
	})

	t.Run("empty filter returns full set after prior filters", func(t *testing.T) {
		c.Filter([]string{"Haworthia"})
		c.Filter([]string{"Echeveria"})
		got := c.Filter(nil)
		if !reflect.DeepEqual(got, testProducts) {
			t.Error("empty filter should return the full held set")
		}
	})
}

func TestCategories_FirstSeenOrder(t *testing.T) {
	srv := newCatalogServer(t, testProducts)
	defer srv.Close()

	c := New(gateway.New(srv.URL, time.Second))
	c.Load(context.Background())

	want := []string{"Echeveria", "Haworthia", "Chậu sen đá", "echeveria"}
	if got := c.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}
