package models

import "testing"

func TestDerivedTotal(t *testing.T) {
	cart := Cart{
		ID: 1,
		Items: []CartItem{
			{ID: 1, Product: Product{ID: 1, Price: 75000}, Quantity: 2},
			{ID: 2, Product: Product{ID: 3, Price: 32000}, Quantity: 1},
		},
	}

	if got := cart.DerivedTotal(); got != 182000 {
		t.Errorf("DerivedTotal() = %d, want 182000", got)
	}
}

func TestDerivedTotal_Empty(t *testing.T) {
	var cart Cart
	if got := cart.DerivedTotal(); got != 0 {
		t.Errorf("DerivedTotal() = %d, want 0", got)
	}
	if !cart.IsEmpty() {
		t.Error("expected empty cart")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cart    Cart
		wantErr bool
	}{
		{
			name: "consistent cart",
			cart: Cart{
				ID:    1,
				Items: []CartItem{{ID: 1, Product: Product{Price: 15000}, Quantity: 2}},
				Total: 30000,
			},
		},
		{
			name: "total drifted from items",
			cart: Cart{
				ID:    1,
				Items: []CartItem{{ID: 1, Product: Product{Price: 15000}, Quantity: 2}},
				Total: 15000,
			},
			wantErr: true,
		},
		{
			name: "zero quantity line",
			cart: Cart{
				ID:    1,
				Items: []CartItem{{ID: 1, Product: Product{Price: 15000}, Quantity: 0}},
			},
			wantErr: true,
		},
		{
			name: "negative price",
			cart: Cart{
				ID:    1,
				Items: []CartItem{{ID: 1, Product: Product{Price: -1}, Quantity: 1}},
				Total: -1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cart.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatVND(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0 ₫"},
		{500, "500 ₫"},
		{75000, "75.000 ₫"},
		{1250000, "1.250.000 ₫"},
	}

	for _, tt := range tests {
		if got := FormatVND(tt.amount); got != tt.want {
			t.Errorf("FormatVND(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
