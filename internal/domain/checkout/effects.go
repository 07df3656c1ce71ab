// internal/domain/checkout/effects.go
package checkout

import (
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// Effect is a side effect queued by a state transition. Transitions
// return effects instead of calling collaborators inline; the service
// dispatches them asynchronously and never feeds failures back into
// the state machine.
type Effect interface {
	isEffect()
}

// GenerateReceipt asks the document collaborator to render the order
// summary. The engine does not inspect the resulting artifact.
type GenerateReceipt struct {
	Summary *order.Summary
}

// ArchiveOrder persists the completed summary in the order archive
type ArchiveOrder struct {
	Summary *order.Summary
}

// SendPixInstructions hands the formatted payment-instructions message
// to the messaging collaborator. Delivery confirmation is not required.
type SendPixInstructions struct {
	To         string
	Message    string
	PixOrderID string
}

func (GenerateReceipt) isEffect()     {}
func (ArchiveOrder) isEffect()        {}
func (SendPixInstructions) isEffect() {}
