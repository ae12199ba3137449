// Package chat relays free-text messages to the shop's ordering assistant
// and applies the cart snapshot that comes back with each reply.
package chat

import (
	"context"
	"net/http"
	"sync"

	"github.com/quocthai179/my-succulent-store/internal/core/cart"
	"github.com/quocthai179/my-succulent-store/internal/core/gateway"
	"github.com/quocthai179/my-succulent-store/internal/core/models"
)

// Greeting opens every transcript.
const Greeting = "Xin chào! Tôi có thể giúp bạn chọn sen đá, phụ kiện và tạo đơn hàng."

// DegradedNotice is appended in place of a reply when the assistant
// endpoint cannot be reached.
const DegradedNotice = "Chatbot tạm thời chưa sẵn sàng. Vui lòng thử lại sau hoặc đặt hàng qua giỏ hàng."

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry.
type Message struct {
	Role Role
	Text string
}

// Bridge owns the append-only transcript. Messages are never edited or
// removed once appended; a user message is appended before the network
// call so it is never silently dropped.
type Bridge struct {
	gw    *gateway.Client
	carts *cart.Synchronizer

	mu         sync.Mutex
	transcript []Message
}

// NewBridge returns a Bridge seeded with the shop greeting.
func NewBridge(gw *gateway.Client, carts *cart.Synchronizer) *Bridge {
	return &Bridge{
		gw:         gw,
		carts:      carts,
		transcript: []Message{{Role: RoleAssistant, Text: Greeting}},
	}
}

// Transcript returns a copy of the transcript so far.
func (b *Bridge) Transcript() []Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Message, len(b.transcript))
	copy(out, b.transcript)
	return out
}

func (b *Bridge) append(role Role, text string) {
	b.mu.Lock()
	b.transcript = append(b.transcript, Message{Role: role, Text: text})
	b.mu.Unlock()
}

// Send relays text to the assistant together with the current session
// token. On success the returned cart snapshot is installed through the
// synchronizer and the reply appended; on gateway failure the fixed
// degraded notice is appended instead and the cart is left untouched.
func (b *Bridge) Send(ctx context.Context, text string) (string, error) {
	b.append(RoleUser, text)

	body := struct {
		Message string `json:"message"`
		CartID  *int64 `json:"cart_id"`
	}{Message: text}
	if id, ok := b.carts.Token(); ok {
		body.CartID = &id
	}

	var resp struct {
		Response string      `json:"response"`
		CartID   int64       `json:"cart_id"`
		Cart     models.Cart `json:"cart"`
	}
	if err := b.gw.Do(ctx, http.MethodPost, "/chat", body, &resp); err != nil {
		b.append(RoleAssistant, DegradedNotice)
		return DegradedNotice, err
	}

	if resp.Cart.ID == 0 {
		resp.Cart.ID = resp.CartID
	}
	if _, err := b.carts.ApplySnapshot(resp.Cart); err != nil {
		// Reply still stands even if persisting the token failed.
		b.append(RoleAssistant, resp.Response)
		return resp.Response, err
	}

	b.append(RoleAssistant, resp.Response)
	return resp.Response, nil
}
