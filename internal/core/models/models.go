package models

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

// Product is a single catalog entry. The held product set is replaced
// wholesale on every catalog load; products are never patched in place.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // VND, no minor units
	ImageURL    string `json:"image_url,omitempty"`
}

// CartItem is one line in a cart, owning a snapshot of its product.
type CartItem struct {
	ID       int64   `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is a complete cart snapshot as the backend returns it. ID is zero
// until the first successful server interaction establishes the cart.
type Cart struct {
	ID    int64      `json:"id"`
	Items []CartItem `json:"items"`
	Total int64      `json:"total"`
}

// DerivedTotal recomputes the total from the item lines. Display code uses
// this, never the stored Total, so the rendered total cannot drift from the
// item list.
func (c Cart) DerivedTotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Product.Price * int64(item.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart has no item lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Validate checks that a cart snapshot is internally consistent.
func (c Cart) Validate() error {
	for _, item := range c.Items {
		if item.Quantity < 1 {
			return fmt.Errorf("item %d: quantity must be at least 1", item.ID)
		}
		if item.Product.Price < 0 {
			return fmt.Errorf("item %d: negative price", item.ID)
		}
	}
	if c.Total != c.DerivedTotal() {
		return errors.New("total does not match item lines")
	}
	return nil
}

// FormatVND renders an integer VND amount with grouping, e.g. "75.000 ₫".
// Vietnamese convention uses dots as the thousands separator.
func FormatVND(amount int64) string {
	grouped := humanize.Comma(amount)
	out := make([]rune, 0, len(grouped))
	for _, r := range grouped {
		if r == ',' {
			r = '.'
		}
		out = append(out, r)
	}
	return string(out) + " ₫"
}
