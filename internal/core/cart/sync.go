// Package cart owns the client's cart state. Every mutation funnels through
// the Synchronizer and replaces the held cart wholesale from the server
// response; the client never merges lines or computes totals locally.
package cart

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/quocthai179/my-succulent-store/internal/core/gateway"
	"github.com/quocthai179/my-succulent-store/internal/core/models"
	"github.com/quocthai179/my-succulent-store/internal/core/session"
)

// Synchronizer is the single source of truth for cart contents. Mutators
// issue their network call without holding the lock, so two in-flight
// mutations may complete in either order; whichever response is adopted
// last wins. That race is documented behavior, not a defect.
type Synchronizer struct {
	gw    *gateway.Client
	store *session.Store

	mu   sync.Mutex
	held models.Cart
}

func NewSynchronizer(gw *gateway.Client, store *session.Store) *Synchronizer {
	return &Synchronizer{gw: gw, store: store}
}

// Current returns the held cart snapshot.
func (s *Synchronizer) Current() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held
}

// Token returns the persisted cart id, if one has been established.
func (s *Synchronizer) Token() (int64, bool) {
	id, ok, err := s.store.CartID()
	if err != nil {
		return 0, false
	}
	return id, ok
}

// adopt installs snapshot as the held cart and persists its id. The id is
// only ever learned from server responses, never fabricated here.
func (s *Synchronizer) adopt(snapshot models.Cart) (models.Cart, error) {
	s.mu.Lock()
	s.held = snapshot
	s.mu.Unlock()

	if snapshot.ID != 0 {
		if err := s.store.SetCartID(snapshot.ID); err != nil {
			return snapshot, err
		}
	}
	return snapshot, nil
}

// cartQuery returns "?cart_id=N" when a session token exists, "" otherwise.
func (s *Synchronizer) cartQuery() string {
	if id, ok := s.Token(); ok {
		return fmt.Sprintf("?cart_id=%d", id)
	}
	return ""
}

// LoadOrCreate fetches the cart named by the session token, or asks the
// backend for a fresh anonymous cart when no token exists. On gateway
// failure the held cart becomes an empty, detached cart so the caller can
// still render a consistent view.
func (s *Synchronizer) LoadOrCreate(ctx context.Context) (models.Cart, error) {
	var fetched models.Cart
	if err := s.gw.Do(ctx, http.MethodGet, "/cart"+s.cartQuery(), nil, &fetched); err != nil {
		s.mu.Lock()
		s.held = models.Cart{}
		s.mu.Unlock()
		return models.Cart{}, err
	}
	return s.adopt(fetched)
}

// AddItem adds quantity of productID to the cart. The server merges
// duplicate product lines and assigns the cart id; a first add establishes
// the cart. On failure the prior cart is returned unchanged.
func (s *Synchronizer) AddItem(ctx context.Context, productID int64, quantity int) (models.Cart, error) {
	body := struct {
		ProductID int64 `json:"product_id"`
		Quantity  int   `json:"quantity"`
	}{productID, quantity}

	var updated models.Cart
	if err := s.gw.Do(ctx, http.MethodPost, "/cart/items"+s.cartQuery(), body, &updated); err != nil {
		return s.Current(), err
	}
	return s.adopt(updated)
}

// UpdateItemQuantity sets the quantity of an existing cart line. A quantity
// below 1 is rejected locally: no network call, held cart unchanged.
func (s *Synchronizer) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) (models.Cart, error) {
	if quantity < 1 {
		return s.Current(), nil
	}

	body := struct {
		Quantity int `json:"quantity"`
	}{quantity}

	var updated models.Cart
	endpoint := fmt.Sprintf("/cart/items/%d", itemID)
	if err := s.gw.Do(ctx, http.MethodPatch, endpoint, body, &updated); err != nil {
		return s.Current(), err
	}
	return s.adopt(updated)
}

// RemoveItem deletes a cart line.
func (s *Synchronizer) RemoveItem(ctx context.Context, itemID int64) (models.Cart, error) {
	var updated models.Cart
	endpoint := fmt.Sprintf("/cart/items/%d", itemID)
	if err := s.gw.Do(ctx, http.MethodDelete, endpoint, nil, &updated); err != nil {
		return s.Current(), err
	}
	return s.adopt(updated)
}

// ApplySnapshot installs a cart returned through another channel (the
// ordering assistant answers with a full cart alongside its reply) without
// an extra round trip. The snapshot's id is adopted exactly as the other
// mutators do.
func (s *Synchronizer) ApplySnapshot(snapshot models.Cart) (models.Cart, error) {
	return s.adopt(snapshot)
}
