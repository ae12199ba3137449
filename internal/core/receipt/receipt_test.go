package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/quocthai179/my-succulent-store/internal/core/config"
	"github.com/quocthai179/my-succulent-store/internal/core/models"
)

var renderTime = time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

func TestRender(t *testing.T) {
	cart := models.Cart{
		ID: 8,
		Items: []models.CartItem{
			{ID: 1, Product: models.Product{Name: "Sen đá Haworthia Zebra", Price: 75000}, Quantity: 2},
			{ID: 2, Product: models.Product{Name: "Chậu đất nung mini", Price: 32000}, Quantity: 1},
		},
	}

	out, err := Render(config.DefaultReceiptTemplate, cart, renderTime)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		"Giỏ hàng #8",
		"01/09/2026 10:30",
		"2 x Sen đá Haworthia Zebra (75.000 ₫) = 150.000 ₫",
		"1 x Chậu đất nung mini (32.000 ₫) = 32.000 ₫",
		"Tổng cộng: 182.000 ₫",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("receipt missing %q:\n%s", want, out)
		}
	}
}

func TestRender_EmptyCart(t *testing.T) {
	out, err := Render(config.DefaultReceiptTemplate, models.Cart{ID: 3}, renderTime)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "Giỏ hàng đang trống.") {
		t.Errorf("empty cart should render the placeholder:\n%s", out)
	}
	if !strings.Contains(out, "Tổng cộng: 0 ₫") {
		t.Errorf("empty cart total should be 0 ₫:\n%s", out)
	}
}

func TestRender_TotalDerivedFromItems(t *testing.T) {
	// A snapshot whose stored total drifted must still render the derived sum.
	cart := models.Cart{
		ID:    1,
		Items: []models.CartItem{{ID: 1, Product: models.Product{Name: "Đất trộn sen đá", Price: 42000}, Quantity: 1}},
		Total: 999999,
	}

	out, err := Render(config.DefaultReceiptTemplate, cart, renderTime)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "Tổng cộng: 42.000 ₫") {
		t.Errorf("total must be derived from items:\n%s", out)
	}
}

func TestRender_BadTemplate(t *testing.T) {
	if _, err := Render("{{#items}} unclosed section", models.Cart{}, renderTime); err == nil {
		t.Error("expected error for malformed template")
	}
}
