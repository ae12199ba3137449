// Package receipt renders a cart snapshot through a mustache template so
// the cart can be shared outside the TUI (file, clipboard, stdout).
package receipt

import (
	"fmt"
	"time"

	"github.com/cbroglie/mustache"
	"github.com/quocthai179/my-succulent-store/internal/core/models"
)

// Render renders cart through template. The template sees cart_id,
// generated_at, items (name, quantity, unit_price, line_total) and total;
// all amounts are pre-formatted VND strings. The total is derived from the
// item lines, never taken from the snapshot.
func Render(template string, cart models.Cart, now time.Time) (string, error) {
	items := make([]map[string]any, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, map[string]any{
			"name":       item.Product.Name,
			"quantity":   item.Quantity,
			"unit_price": models.FormatVND(item.Product.Price),
			"line_total": models.FormatVND(item.Product.Price * int64(item.Quantity)),
		})
	}

	data := map[string]any{
		"cart_id":      cart.ID,
		"generated_at": now.Format("02/01/2006 15:04"),
		"items":        items,
		"total":        models.FormatVND(cart.DerivedTotal()),
	}

	out, err := mustache.Render(template, data)
	if err != nil {
		return "", fmt.Errorf("failed to render receipt: %w", err)
	}
	return out, nil
}
