package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/quocthai179/my-succulent-store/internal/core/models"
)

func statusProductCount(n int) string {
	return fmt.Sprintf("Tìm thấy %d sản phẩm", n)
}

func (m Model) updateShop(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.shopCursor > 0 {
			m.shopCursor--
		}
		return m, nil

	case "down", "j":
		if m.shopCursor < len(m.products)-1 {
			m.shopCursor++
		}
		return m, nil

	case "left", "h", "[":
		if m.activeCategory >= 0 {
			m.activeCategory--
		}
		return m.applyFilter(), nil

	case "right", "l", "]":
		if m.activeCategory < len(m.categories)-1 {
			m.activeCategory++
		}
		return m.applyFilter(), nil

	case "enter", " ":
		if m.shopCursor < len(m.products) {
			return m, addToCart(m.carts, m.products[m.shopCursor].ID)
		}
		return m, nil
	}
	return m, nil
}

// categoryTabs renders the filter row: "Tất cả" plus one tab per category.
func (m Model) categoryTabs() string {
	var b strings.Builder
	if m.activeCategory == -1 {
		b.WriteString(activeTabStyle.Render("Tất cả"))
	} else {
		b.WriteString(tabStyle.Render("Tất cả"))
	}
	for i, cat := range m.categories {
		if i == m.activeCategory {
			b.WriteString(activeTabStyle.Render(cat))
		} else {
			b.WriteString(tabStyle.Render(cat))
		}
	}
	return b.String()
}

func (m Model) viewShop() string {
	var b strings.Builder

	b.WriteString(paneTitleStyle.Render("Sen Đá Shop"))
	b.WriteString("  ")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.categoryTabs())
	b.WriteString("\n\n")

	// One visual group per distinct category of the filtered set
	var lastCategory string
	for i, p := range m.products {
		if p.Category != lastCategory {
			if lastCategory != "" {
				b.WriteString("\n")
			}
			b.WriteString(categoryStyle.Render(p.Category))
			b.WriteString("\n")
			lastCategory = p.Category
		}
		b.WriteString(m.renderProduct(p, i == m.shopCursor))
	}
	if len(m.products) == 0 {
		b.WriteString(mutedStyle.Render("Không có sản phẩm trong nhóm này."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ chọn • ←/→ nhóm • enter thêm vào giỏ • r tải lại • tab giỏ hàng • q thoát"))
	return b.String()
}

func (m Model) renderProduct(p models.Product, selected bool) string {
	line := fmt.Sprintf("%s — %s", p.Name, priceStyle.Render(models.FormatVND(p.Price)))
	if selected {
		line = selectedItemStyle.Render("> " + line)
	} else {
		line = itemStyle.Render(line)
	}
	out := line + "\n"
	if selected && p.Description != "" {
		out += itemStyle.Render(mutedStyle.Render(p.Description)) + "\n"
	}
	return out
}
