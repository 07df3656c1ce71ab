// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/delivery"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/payment"
)

// CartStore is the cart collaborator the checkout engine reads from and
// clears on order close
type CartStore interface {
	GetCart(ctx context.Context, sessionID string) (*cart.SessionCart, error)
	ClearCart(ctx context.Context, sessionID string) error
}

// ReceiptGenerator renders an order summary into an opaque document
// artifact. The engine does not inspect the result.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, summary *order.Summary) ([]byte, error)
}

// Messenger dispatches an outbound message to a phone-like contact
// handle. Delivery confirmation is not required.
type Messenger interface {
	SendMessage(ctx context.Context, to, body string) error
}

// Archiver persists completed order summaries
type Archiver interface {
	Archive(ctx context.Context, summary *order.Summary) error
}

// Service owns the checkout sessions and wires the state machine to its
// collaborators. All transitions for a session run under the service
// lock; effect hand-offs run in goroutines and are never awaited.
type Service struct {
	mu       sync.Mutex
	sessions map[string]*Session

	carts     CartStore
	fees      *delivery.Calculator
	store     config.StoreConfig
	receipts  ReceiptGenerator
	messenger Messenger
	archive   Archiver
	log       *logrus.Logger

	effectTimeout time.Duration
}

// NewService creates a new checkout service
func NewService(carts CartStore, fees *delivery.Calculator, store config.StoreConfig, receipts ReceiptGenerator, messenger Messenger, archive Archiver, log *logrus.Logger) *Service {
	return &Service{
		sessions:      make(map[string]*Session),
		carts:         carts,
		fees:          fees,
		store:         store,
		receipts:      receipts,
		messenger:     messenger,
		archive:       archive,
		log:           log,
		effectTimeout: 30 * time.Second,
	}
}

// Status is the externally visible snapshot of a checkout session,
// including the live figures the UI displays while input is captured
type Status struct {
	SessionID     string             `json:"session_id"`
	State         State              `json:"state"`
	DeliveryInfo  order.DeliveryInfo `json:"delivery_info"`
	PaymentMethod payment.Method     `json:"payment_method,omitempty"`
	Subtotal      int64              `json:"subtotal"`
	DeliveryQuote delivery.Quote     `json:"delivery_quote"`
	Total         int64              `json:"total"`
	Change        *int64             `json:"change,omitempty"`
	Summary       *order.Summary     `json:"summary,omitempty"`
}

// Status reports the session's current state and live totals. The
// change figure is computed even when negative so a shortfall can be
// displayed before confirmation is allowed.
func (s *Service) Status(ctx context.Context, sessionID string) (*Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.session(sessionID)
	c, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.status(session, c), nil
}

// Finalize begins checkout for the session's cart
func (s *Service) Finalize(ctx context.Context, sessionID string) (*Status, error) {
	return s.step(ctx, sessionID, func(session *Session, c *cart.SessionCart) error {
		return session.Finalize(c)
	})
}

// SetDeliveryInfo records delivery form input
func (s *Service) SetDeliveryInfo(ctx context.Context, sessionID string, info order.DeliveryInfo) (*Status, error) {
	return s.step(ctx, sessionID, func(session *Session, _ *cart.SessionCart) error {
		return session.SetDeliveryInfo(info)
	})
}

// ConfirmDelivery advances from delivery capture to payment selection
func (s *Service) ConfirmDelivery(ctx context.Context, sessionID string) (*Status, error) {
	return s.step(ctx, sessionID, func(session *Session, _ *cart.SessionCart) error {
		return session.ConfirmDelivery()
	})
}

// CancelDelivery abandons the checkout from the delivery form
func (s *Service) CancelDelivery(ctx context.Context, sessionID string) (*Status, error) {
	return s.step(ctx, sessionID, func(session *Session, _ *cart.SessionCart) error {
		return session.CancelDelivery()
	})
}

// Back returns the session to the immediately-prior state
func (s *Service) Back(ctx context.Context, sessionID string) (*Status, error) {
	return s.step(ctx, sessionID, func(session *Session, _ *cart.SessionCart) error {
		return session.Back()
	})
}

// SelectPayment records the chosen method and, for cash, the tendered amount
func (s *Service) SelectPayment(ctx context.Context, sessionID string, method payment.Method, cashAmount string) (*Status, error) {
	return s.step(ctx, sessionID, func(session *Session, _ *cart.SessionCart) error {
		return session.SelectPayment(method, cashAmount)
	})
}

// Confirm completes payment selection, queues the side effects of the
// chosen branch, and dispatches them without awaiting
func (s *Service) Confirm(ctx context.Context, sessionID string) (*Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.session(sessionID)
	c, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	quote := s.fees.Quote(session.Delivery.Neighborhood)
	effects, err := session.Confirm(c, quote, s.store)
	if err != nil {
		return nil, err
	}

	s.dispatch(effects)
	return s.status(session, c), nil
}

// CloseSummary dismisses the order summary and clears the cart. The
// cart is cleared here and only here for non-PIX orders.
func (s *Service) CloseSummary(ctx context.Context, sessionID string) (*Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.session(sessionID)
	if err := session.Close(); err != nil {
		return nil, err
	}
	if err := s.carts.ClearCart(ctx, sessionID); err != nil {
		return nil, err
	}

	c, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.status(session, c), nil
}

// AcknowledgePix returns to idle after the PIX hand-off, keeping the
// cart since the order is not yet confirmed
func (s *Service) AcknowledgePix(ctx context.Context, sessionID string) (*Status, error) {
	return s.step(ctx, sessionID, func(session *Session, _ *cart.SessionCart) error {
		return session.AcknowledgePix()
	})
}

// CancelPix steps back to payment selection, allowed only before the
// instructions were dispatched
func (s *Service) CancelPix(ctx context.Context, sessionID string) (*Status, error) {
	return s.step(ctx, sessionID, func(session *Session, _ *cart.SessionCart) error {
		return session.CancelPix()
	})
}

// step runs one transition under the service lock and returns the
// resulting status snapshot
func (s *Service) step(ctx context.Context, sessionID string, fn func(*Session, *cart.SessionCart) error) (*Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.session(sessionID)
	c, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(session, c); err != nil {
		return nil, err
	}
	return s.status(session, c), nil
}

// session returns the session for the id, creating an idle one on first use
func (s *Service) session(sessionID string) *Session {
	session, ok := s.sessions[sessionID]
	if !ok {
		session = NewSession(sessionID)
		s.sessions[sessionID] = session
	}
	return session
}

func (s *Service) status(session *Session, c *cart.SessionCart) *Status {
	totals := c.Totals()
	quote := s.fees.Quote(session.Delivery.Neighborhood)
	total := totals.Subtotal + quote.Fee

	status := &Status{
		SessionID:     session.ID,
		State:         session.State,
		DeliveryInfo:  session.Delivery,
		PaymentMethod: session.Payment.Method,
		Subtotal:      totals.Subtotal,
		DeliveryQuote: quote,
		Total:         total,
		Summary:       session.Summary,
	}

	if session.Payment.Method == payment.MethodCash {
		if tendered, err := payment.ParseAmount(session.Payment.CashAmount); err == nil {
			change := payment.ChangeFor(tendered, total)
			status.Change = &change
		}
	}
	return status
}

// dispatch hands queued effects to the collaborators, fire-and-forget.
// A failure or delay never blocks or rolls back the transition that
// queued the effect; it is logged and swallowed here.
func (s *Service) dispatch(effects []Effect) {
	for _, effect := range effects {
		effect := effect
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), s.effectTimeout)
			defer cancel()

			switch e := effect.(type) {
			case GenerateReceipt:
				if s.receipts == nil {
					return
				}
				if _, err := s.receipts.GenerateReceipt(ctx, e.Summary); err != nil {
					s.log.WithFields(logrus.Fields{
						"order_number": e.Summary.OrderNumber,
					}).WithError(err).Warn("receipt generation failed")
				}
			case ArchiveOrder:
				if s.archive == nil {
					return
				}
				if err := s.archive.Archive(ctx, e.Summary); err != nil {
					s.log.WithFields(logrus.Fields{
						"order_number": e.Summary.OrderNumber,
					}).WithError(err).Warn("order archiving failed")
				}
			case SendPixInstructions:
				if s.messenger == nil {
					return
				}
				if err := s.messenger.SendMessage(ctx, e.To, e.Message); err != nil {
					s.log.WithFields(logrus.Fields{
						"pix_order_id": e.PixOrderID,
					}).WithError(err).Warn("pix instructions hand-off failed")
				}
			}
		}()
	}
}
