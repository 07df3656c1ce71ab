// internal/domain/payment/method.go
package payment

// Method identifies how the customer pays
type Method string

const (
	MethodCash   Method = "cash"
	MethodPix    Method = "pix"
	MethodCredit Method = "credit"
	MethodDebit  Method = "debit"
)

// Valid reports whether the method is one of the accepted values
func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodPix, MethodCredit, MethodDebit:
		return true
	}
	return false
}

// DisplayName returns the customer-facing name of the method
func (m Method) DisplayName() string {
	switch m {
	case MethodCash:
		return "Dinheiro"
	case MethodPix:
		return "PIX"
	case MethodCredit:
		return "Cartão de Crédito"
	case MethodDebit:
		return "Cartão de Débito"
	default:
		return "Método de Pagamento"
	}
}

// Selection is the transient payment state of a checkout session. For
// cash, CashAmount holds the raw tendered input; nothing here persists
// past order confirmation.
type Selection struct {
	Method     Method `json:"method,omitempty"`
	CashAmount string `json:"cash_amount,omitempty"`
}

// Clear resets the selection
func (s *Selection) Clear() {
	s.Method = ""
	s.CashAmount = ""
}
