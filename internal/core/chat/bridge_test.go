package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/quocthai179/my-succulent-store/internal/core/cart"
	"github.com/quocthai179/my-succulent-store/internal/core/gateway"
	"github.com/quocthai179/my-succulent-store/internal/core/models"
	"github.com/quocthai179/my-succulent-store/internal/core/session"
)

func newBridge(t *testing.T, backendURL string) (*Bridge, *cart.Synchronizer, *session.Store) {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "senda.db"))
	if err != nil {
		t.Fatalf("session.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	gw := gateway.New(backendURL, time.Second)
	carts := cart.NewSynchronizer(gw, store)
	return NewBridge(gw, carts), carts, store
}

func TestNewBridge_SeedsGreeting(t *testing.T) {
	b, _, _ := newBridge(t, "http://localhost:0")

	transcript := b.Transcript()
	if len(transcript) != 1 {
		t.Fatalf("transcript has %d entries, want 1", len(transcript))
	}
	if transcript[0].Role != RoleAssistant || transcript[0].Text != Greeting {
		t.Errorf("transcript[0] = %+v, want the greeting", transcript[0])
	}
}

func TestSend_AppliesReturnedCart(t *testing.T) {
	reply := "Đã thêm 2 chậu đất nung mini vào giỏ hàng của bạn."
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat" {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Message string `json:"message"`
			CartID  *int64 `json:"cart_id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Message != "cho tôi 2 chậu đất nung" {
			t.Errorf("message = %q", req.Message)
		}
		if req.CartID == nil || *req.CartID != 6 {
			t.Errorf("cart_id = %v, want 6", req.CartID)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"response": reply,
			"cart_id":  6,
			"cart": models.Cart{
				ID:    6,
				Items: []models.CartItem{{ID: 1, Product: models.Product{ID: 3, Price: 32000}, Quantity: 2}},
				Total: 64000,
			},
		})
	}))
	defer srv.Close()

	b, carts, store := newBridge(t, srv.URL)
	if err := store.SetCartID(6); err != nil {
		t.Fatal(err)
	}

	got, err := b.Send(context.Background(), "cho tôi 2 chậu đất nung")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if got != reply {
		t.Errorf("reply = %q, want %q", got, reply)
	}

	held := carts.Current()
	if held.ID != 6 || len(held.Items) != 1 || held.Total != 64000 {
		t.Errorf("held cart = %+v, want the assistant's snapshot", held)
	}

	transcript := b.Transcript()
	if len(transcript) != 3 {
		t.Fatalf("transcript has %d entries, want 3 (greeting, user, reply)", len(transcript))
	}
	if transcript[1].Role != RoleUser || transcript[2].Text != reply {
		t.Errorf("transcript = %+v", transcript)
	}
}

func TestSend_FirstReplyEstablishesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"response": "Giỏ hàng của bạn đang trống.",
			"cart_id":  14,
			"cart":     models.Cart{ID: 14},
		})
	}))
	defer srv.Close()

	b, _, store := newBridge(t, srv.URL)
	if _, err := b.Send(context.Background(), "giỏ hàng của tôi có gì?"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if id, ok, _ := store.CartID(); !ok || id != 14 {
		t.Errorf("stored cart id = %d, %v, want 14, true", id, ok)
	}
}

func TestSend_DegradedMode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // assistant unreachable

	b, carts, store := newBridge(t, srv.URL)
	before := len(b.Transcript())

	reply, err := b.Send(context.Background(), "xin chào")
	if err == nil {
		t.Fatal("expected gateway error")
	}
	if reply != DegradedNotice {
		t.Errorf("reply = %q, want the fixed degraded notice", reply)
	}

	transcript := b.Transcript()
	if len(transcript) != before+2 {
		t.Fatalf("appended %d entries, want exactly 2 (user message, notice)", len(transcript)-before)
	}
	if transcript[before].Role != RoleUser || transcript[before].Text != "xin chào" {
		t.Errorf("user message not preserved: %+v", transcript[before])
	}
	if transcript[before+1].Role != RoleAssistant || transcript[before+1].Text != DegradedNotice {
		t.Errorf("notice entry = %+v", transcript[before+1])
	}

	if !carts.Current().IsEmpty() {
		t.Error("cart must be untouched in degraded mode")
	}
	if _, ok, _ := store.CartID(); ok {
		t.Error("no session token should be adopted in degraded mode")
	}
}
