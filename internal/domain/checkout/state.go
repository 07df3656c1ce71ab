// internal/domain/checkout/state.go
package checkout

import "errors"

// State is a checkout session's position in the ordering flow. States
// advance in strict forward order; the only backward transition is to
// the immediately-prior state.
type State string

const (
	// StateIdle means the cart may have items but no checkout is in progress
	StateIdle State = "idle"
	// StateCapturingDelivery means the delivery form is being filled
	StateCapturingDelivery State = "capturing_delivery"
	// StateSelectingPayment means a payment method is being chosen
	StateSelectingPayment State = "selecting_payment"
	// StateShowingSummary is the terminal success state for non-PIX methods
	StateShowingSummary State = "showing_summary"
	// StateAwaitingPixConfirmation is the terminal-pending state for PIX;
	// payment approval happens out-of-band
	StateAwaitingPixConfirmation State = "awaiting_pix_confirmation"
)

// Blocked-transition errors. None of these is fatal: every blocked
// transition leaves the session unchanged and is recoverable by
// correcting input and retrying.
var (
	ErrEmptyCart           = errors.New("checkout: cart is empty")
	ErrInvalidDeliveryInfo = errors.New("checkout: delivery info is incomplete")
	ErrNoPaymentMethod     = errors.New("checkout: no payment method selected")
	ErrInsufficientCash    = errors.New("checkout: cash amount does not cover the total")
	ErrPixAlreadySent      = errors.New("checkout: pix instructions already sent")
	ErrInvalidTransition   = errors.New("checkout: action not allowed in current state")
)
