package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/quocthai179/my-succulent-store/internal/core/models"
	"github.com/quocthai179/my-succulent-store/internal/core/receipt"
)

func (m Model) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.cartView.Items

	switch msg.String() {
	case "up", "k":
		if m.cartCursor > 0 {
			m.cartCursor--
		}
		return m, nil

	case "down", "j":
		if m.cartCursor < len(items)-1 {
			m.cartCursor++
		}
		return m, nil

	case "+", "=":
		if m.cartCursor < len(items) {
			item := items[m.cartCursor]
			return m, setItemQuantity(m.carts, item.ID, item.Quantity+1)
		}
		return m, nil

	case "-":
		if m.cartCursor < len(items) {
			// Quantity 1 minus 1 hits the synchronizer's guard: no call, no change.
			item := items[m.cartCursor]
			return m, setItemQuantity(m.carts, item.ID, item.Quantity-1)
		}
		return m, nil

	case "x", "delete":
		if m.cartCursor < len(items) {
			return m, removeFromCart(m.carts, items[m.cartCursor].ID)
		}
		return m, nil

	case "y":
		// Copy a receipt of the current cart to the clipboard
		text, err := receipt.Render(m.cfg.ReceiptTemplate, m.cartView, time.Now())
		if err == nil {
			if err := clipboard.WriteAll(text); err == nil {
				m.statusNote = "Đã sao chép phiếu giỏ hàng."
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) viewCart() string {
	var b strings.Builder

	b.WriteString(paneTitleStyle.Render("Giỏ hàng"))
	if m.cartView.ID != 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  #%d", m.cartView.ID)))
	}
	b.WriteString("  ")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	if m.cartView.IsEmpty() {
		b.WriteString(mutedStyle.Render("Giỏ hàng đang trống."))
		b.WriteString("\n")
	} else {
		for i, item := range m.cartView.Items {
			b.WriteString(m.renderCartItem(item, i == m.cartCursor))
		}
	}

	b.WriteString("\n")
	b.WriteString(totalStyle.Render("Tổng cộng: " + models.FormatVND(m.cartView.DerivedTotal())))
	b.WriteString("\n")

	if m.statusNote != "" {
		b.WriteString(statusStyle.Render(m.statusNote))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ chọn • +/- số lượng • x xóa • y sao chép phiếu • tab trò chuyện • q thoát"))
	return b.String()
}

func (m Model) renderCartItem(item models.CartItem, selected bool) string {
	line := fmt.Sprintf("%d x %s — %s",
		item.Quantity,
		item.Product.Name,
		priceStyle.Render(models.FormatVND(item.Product.Price)))
	if selected {
		return selectedItemStyle.Render("> "+line) + "\n"
	}
	return itemStyle.Render(line) + "\n"
}
