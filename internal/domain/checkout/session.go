// internal/domain/checkout/session.go
package checkout

import (
	"time"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/delivery"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/payment"
)

// Session is one checkout in progress. Each state carries exactly the
// transient data it needs; transition methods are the only mutation
// entry points, and a blocked transition mutates nothing. Sessions are
// single-owner: the service serializes access.
type Session struct {
	ID        string
	State     State
	Delivery  order.DeliveryInfo
	Payment   payment.Selection
	Summary   *order.Summary
	UpdatedAt time.Time

	pixDispatched bool
}

// NewSession creates an idle checkout session
func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		State:     StateIdle,
		UpdatedAt: time.Now().UTC(),
	}
}

// Finalize starts the checkout flow. An empty cart blocks the action
// entirely; there is no error state to recover from, the session simply
// stays idle.
func (s *Session) Finalize(c *cart.SessionCart) error {
	if s.State != StateIdle {
		return ErrInvalidTransition
	}
	if c.IsEmpty() {
		return ErrEmptyCart
	}
	s.transition(StateCapturingDelivery)
	return nil
}

// SetDeliveryInfo records the delivery form input while it is being
// captured. Validation happens at ConfirmDelivery, not here.
func (s *Session) SetDeliveryInfo(info order.DeliveryInfo) error {
	if s.State != StateCapturingDelivery {
		return ErrInvalidTransition
	}
	s.Delivery = info
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// ConfirmDelivery advances to payment selection. Blocked while any
// required delivery field is blank.
func (s *Session) ConfirmDelivery() error {
	if s.State != StateCapturingDelivery {
		return ErrInvalidTransition
	}
	if !payment.ValidDeliveryInfo(s.Delivery) {
		return ErrInvalidDeliveryInfo
	}
	s.transition(StateSelectingPayment)
	return nil
}

// CancelDelivery abandons the checkout from the delivery form,
// discarding the captured fields
func (s *Session) CancelDelivery() error {
	if s.State != StateCapturingDelivery {
		return ErrInvalidTransition
	}
	s.Delivery = order.DeliveryInfo{}
	s.transition(StateIdle)
	return nil
}

// Back returns to the immediately-prior state. Delivery fields are
// retained when stepping back from payment selection.
func (s *Session) Back() error {
	switch s.State {
	case StateSelectingPayment:
		s.transition(StateCapturingDelivery)
	case StateCapturingDelivery:
		s.transition(StateIdle)
	default:
		return ErrInvalidTransition
	}
	return nil
}

// SelectPayment records the chosen method and, for cash, the raw
// tendered amount. Choosing a method never fails validation by itself;
// cash sufficiency is checked at Confirm.
func (s *Session) SelectPayment(method payment.Method, cashAmount string) error {
	if s.State != StateSelectingPayment {
		return ErrInvalidTransition
	}
	if !method.Valid() {
		return ErrNoPaymentMethod
	}
	s.Payment.Method = method
	s.Payment.CashAmount = ""
	if method == payment.MethodCash {
		s.Payment.CashAmount = cashAmount
	}
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// Confirm closes payment selection. For cash/credit/debit it builds the
// order summary and queues receipt generation and archiving; for PIX it
// mints a PIX order id and queues the payment-instructions hand-off,
// skipping the summary entirely. The returned effects are dispatched by
// the caller, never awaited here.
func (s *Session) Confirm(c *cart.SessionCart, quote delivery.Quote, store config.StoreConfig) ([]Effect, error) {
	if s.State != StateSelectingPayment {
		return nil, ErrInvalidTransition
	}
	if s.Payment.Method == "" {
		// Terminal confirm with no method chosen is a no-op
		return nil, ErrNoPaymentMethod
	}

	totals := c.Totals()
	total := totals.Subtotal + quote.Fee

	if s.Payment.Method == payment.MethodPix {
		pixOrderID := order.NewPixOrderID()
		message := FormatPixInstructions(pixOrderID, c, s.Delivery, totals.Subtotal, quote.Fee, total, store)

		s.Summary = nil
		s.pixDispatched = true
		s.transition(StateAwaitingPixConfirmation)

		return []Effect{SendPixInstructions{
			To:         s.Delivery.WhatsApp,
			Message:    message,
			PixOrderID: pixOrderID,
		}}, nil
	}

	summary := &order.Summary{
		OrderNumber:   order.NewOrderNumber(),
		Items:         lineItems(c),
		Subtotal:      totals.Subtotal,
		DeliveryFee:   quote.Fee,
		Total:         total,
		PaymentMethod: s.Payment.Method.DisplayName(),
		Timestamp:     time.Now().UTC(),
		DeliveryInfo:  s.Delivery,
	}

	if s.Payment.Method == payment.MethodCash {
		if !payment.ValidCashAmount(s.Payment.CashAmount, total) {
			return nil, ErrInsufficientCash
		}
		tendered, _ := payment.ParseAmount(s.Payment.CashAmount)
		change := payment.ChangeFor(tendered, total)
		summary.CashAmount = &tendered
		summary.Change = &change
	}

	s.Summary = summary
	s.transition(StateShowingSummary)

	return []Effect{
		GenerateReceipt{Summary: summary},
		ArchiveOrder{Summary: summary},
	}, nil
}

// Close dismisses the order summary. The only exit from
// StateShowingSummary; the caller clears the cart after this succeeds,
// never at summary-creation time.
func (s *Session) Close() error {
	if s.State != StateShowingSummary {
		return ErrInvalidTransition
	}
	s.reset()
	return nil
}

// AcknowledgePix returns to idle after the PIX hand-off without
// clearing the cart; the order is not confirmed until the human side
// approves it. Acknowledging an already-idle session is a no-op.
func (s *Session) AcknowledgePix() error {
	if s.State == StateIdle {
		return nil
	}
	if s.State != StateAwaitingPixConfirmation {
		return ErrInvalidTransition
	}
	s.reset()
	return nil
}

// CancelPix steps back to payment selection to change method. Allowed
// only before the instructions hand-off was dispatched; once sent, the
// state is fixed so a second dispatch under a new method cannot happen.
func (s *Session) CancelPix() error {
	if s.State != StateAwaitingPixConfirmation {
		return ErrInvalidTransition
	}
	if s.pixDispatched {
		return ErrPixAlreadySent
	}
	s.transition(StateSelectingPayment)
	return nil
}

func (s *Session) transition(to State) {
	s.State = to
	s.UpdatedAt = time.Now().UTC()
}

// reset discards all in-flight checkout state and returns to idle
func (s *Session) reset() {
	s.Delivery = order.DeliveryInfo{}
	s.Payment.Clear()
	s.Summary = nil
	s.pixDispatched = false
	s.transition(StateIdle)
}

// lineItems converts cart entries to order lines, echoing the selected
// customizations
func lineItems(c *cart.SessionCart) []order.LineItem {
	items := make([]order.LineItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = order.LineItem{
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice(),
			LineTotal:      item.LineTotal(),
			Customizations: item.Customizations,
		}
	}
	return items
}
