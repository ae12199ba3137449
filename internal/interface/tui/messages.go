package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/quocthai179/my-succulent-store/internal/core/cart"
	"github.com/quocthai179/my-succulent-store/internal/core/catalog"
	"github.com/quocthai179/my-succulent-store/internal/core/chat"
	"github.com/quocthai179/my-succulent-store/internal/core/models"
)

type catalogLoadedMsg struct {
	products   []models.Product
	categories []string
	degraded   bool
}

// cartUpdatedMsg carries whatever cart snapshot a mutation resolved to.
// Snapshots install in arrival order: if two mutations were in flight, the
// one answered last is the one that stays on screen.
type cartUpdatedMsg struct {
	cart models.Cart
	err  error
}

// chatRepliedMsg signals that the transcript changed; it also carries the
// cart the assistant may have mutated so the cart pane re-projects.
type chatRepliedMsg struct {
	cart models.Cart
	err  error
}

func loadCatalog(cache *catalog.Cache) tea.Cmd {
	return func() tea.Msg {
		products := cache.Load(context.Background())
		return catalogLoadedMsg{
			products:   products,
			categories: cache.Categories(),
			degraded:   cache.Degraded(),
		}
	}
}

func loadCart(carts *cart.Synchronizer) tea.Cmd {
	return func() tea.Msg {
		c, err := carts.LoadOrCreate(context.Background())
		return cartUpdatedMsg{cart: c, err: err}
	}
}

func addToCart(carts *cart.Synchronizer, productID int64) tea.Cmd {
	return func() tea.Msg {
		c, err := carts.AddItem(context.Background(), productID, 1)
		return cartUpdatedMsg{cart: c, err: err}
	}
}

func setItemQuantity(carts *cart.Synchronizer, itemID int64, quantity int) tea.Cmd {
	return func() tea.Msg {
		c, err := carts.UpdateItemQuantity(context.Background(), itemID, quantity)
		return cartUpdatedMsg{cart: c, err: err}
	}
}

func removeFromCart(carts *cart.Synchronizer, itemID int64) tea.Cmd {
	return func() tea.Msg {
		c, err := carts.RemoveItem(context.Background(), itemID)
		return cartUpdatedMsg{cart: c, err: err}
	}
}

func sendChat(bridge *chat.Bridge, carts *cart.Synchronizer, text string) tea.Cmd {
	return func() tea.Msg {
		_, err := bridge.Send(context.Background(), text)
		return chatRepliedMsg{cart: carts.Current(), err: err}
	}
}
