// internal/domain/checkout/mocks_test.go
package checkout

import (
	"context"
	"sync"

	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// MockCartStore implements CartStore over an in-memory cart
type MockCartStore struct {
	mu      sync.Mutex
	Cart    *cart.SessionCart
	GetErr  error
	Cleared bool
}

func (m *MockCartStore) GetCart(_ context.Context, sessionID string) (*cart.SessionCart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Cart == nil {
		return &cart.SessionCart{SessionID: sessionID}, nil
	}
	return m.Cart, nil
}

func (m *MockCartStore) ClearCart(_ context.Context, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Cleared = true
	m.Cart = nil
	return nil
}

func (m *MockCartStore) WasCleared() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Cleared
}

// MockReceiptGenerator captures summaries handed to it. Generated is
// buffered so the fire-and-forget dispatch can be awaited in tests.
type MockReceiptGenerator struct {
	Generated chan *order.Summary
	Err       error
}

func NewMockReceiptGenerator() *MockReceiptGenerator {
	return &MockReceiptGenerator{Generated: make(chan *order.Summary, 1)}
}

func (m *MockReceiptGenerator) GenerateReceipt(_ context.Context, summary *order.Summary) ([]byte, error) {
	m.Generated <- summary
	return []byte("%PDF-1.4"), m.Err
}

// MockMessenger captures outbound messages
type MockMessenger struct {
	Sent chan SentMessage
	Err  error
}

type SentMessage struct {
	To   string
	Body string
}

func NewMockMessenger() *MockMessenger {
	return &MockMessenger{Sent: make(chan SentMessage, 1)}
}

func (m *MockMessenger) SendMessage(_ context.Context, to, body string) error {
	m.Sent <- SentMessage{To: to, Body: body}
	return m.Err
}

// MockArchiver captures archived summaries
type MockArchiver struct {
	Archived chan *order.Summary
	Err      error
}

func NewMockArchiver() *MockArchiver {
	return &MockArchiver{Archived: make(chan *order.Summary, 1)}
}

func (m *MockArchiver) Archive(_ context.Context, summary *order.Summary) error {
	m.Archived <- summary
	return m.Err
}
