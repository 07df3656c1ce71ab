// internal/domain/order/entity.go
package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// DeliveryInfo holds the customer's delivery address and contact.
// Street, number, neighborhood and whatsapp are required for checkout
// to proceed; complement is optional.
type DeliveryInfo struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	WhatsApp     string `json:"whatsapp"`
	Complement   string `json:"complement,omitempty"`
}

// LineItem is one order line in a summary. UnitPrice includes the
// item's customization surcharges; LineTotal is UnitPrice × Quantity.
type LineItem struct {
	Name           string                      `json:"name"`
	Quantity       int                         `json:"quantity"`
	UnitPrice      int64                       `json:"unit_price"`
	LineTotal      int64                       `json:"line_total"`
	Customizations map[string][]catalog.Option `json:"customizations,omitempty"`
}

// Summary is the terminal artifact of a successful checkout. Created
// once, immutable afterwards. Amounts are in centavos.
type Summary struct {
	OrderNumber   string       `json:"order_number"`
	Items         []LineItem   `json:"items"`
	Subtotal      int64        `json:"subtotal"`
	DeliveryFee   int64        `json:"delivery_fee"`
	Total         int64        `json:"total"`
	PaymentMethod string       `json:"payment_method"` // Display name, e.g. "Dinheiro"
	Timestamp     time.Time    `json:"timestamp"`
	DeliveryInfo  DeliveryInfo `json:"delivery_info"`

	// Cash only
	CashAmount *int64 `json:"cash_amount,omitempty"`
	Change     *int64 `json:"change,omitempty"`

	// PIX only
	PixOrderID string `json:"pix_order_id,omitempty"`
}

// NewOrderNumber generates a process-unique order number,
// e.g. PED-20250114-a1b2c3d4
func NewOrderNumber() string {
	return newNumber("PED")
}

// NewPixOrderID generates a process-unique PIX order id,
// e.g. PIX-20250114-a1b2c3d4
func NewPixOrderID() string {
	return newNumber("PIX")
}

func newNumber(prefix string) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().Format("20060102"), suffix)
}

// FormatAmount renders centavos as a decimal string, e.g. 2290 -> "22.90".
// Negative amounts keep their sign for live change/shortfall display.
func FormatAmount(centavos int64) string {
	sign := ""
	if centavos < 0 {
		sign = "-"
		centavos = -centavos
	}
	return fmt.Sprintf("%s%d.%02d", sign, centavos/100, centavos%100)
}
