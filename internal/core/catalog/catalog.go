// Package catalog holds the fetched-or-fallback product set and the active
// category filter.
package catalog

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/quocthai179/my-succulent-store/internal/core/gateway"
	"github.com/quocthai179/my-succulent-store/internal/core/models"
)

// Cache owns the held product set. Load replaces it wholesale; Filter and
// Categories are pure projections of it.
type Cache struct {
	gw *gateway.Client

	mu       sync.RWMutex
	products []models.Product
	degraded bool
}

func New(gw *gateway.Client) *Cache {
	return &Cache{gw: gw}
}

// Load fetches the full product set from the backend, replacing whatever
// was held before. On any gateway failure the bundled fallback set is
// installed instead and the cache is marked degraded. Load never fails:
// the caller always gets a usable product set.
func (c *Cache) Load(ctx context.Context) []models.Product {
	var products []models.Product
	err := c.gw.Do(ctx, http.MethodGet, "/products", nil, &products)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.products = Fallback
		c.degraded = true
	} else {
		c.products = products
		c.degraded = false
	}
	return c.products
}

// Products returns the held product set.
func (c *Cache) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.products
}

// Degraded reports whether the held set is the bundled fallback.
func (c *Cache) Degraded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.degraded
}

// Count returns the number of held products, for status display.
func (c *Cache) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}

// Filter returns the subset of held products whose category label matches
// one of categories, case-insensitively. An empty filter returns the full
// held set. Filter never re-fetches and never mutates the held set.
func (c *Cache) Filter(categories []string) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(categories) == 0 {
		return c.products
	}

	wanted := make(map[string]bool, len(categories))
	for _, cat := range categories {
		wanted[strings.ToLower(cat)] = true
	}

	var matched []models.Product
	for _, p := range c.products {
		if wanted[strings.ToLower(p.Category)] {
			matched = append(matched, p)
		}
	}
	return matched
}

// Categories returns the distinct category labels of the held set in
// first-seen order.
func (c *Cache) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
