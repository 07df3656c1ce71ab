// internal/domain/payment/validator.go
package payment

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/your-org/storefront-backend/internal/domain/order"
)

// ValidDeliveryInfo reports whether all required delivery fields are
// non-empty after trimming. Complement is optional.
func ValidDeliveryInfo(info order.DeliveryInfo) bool {
	return strings.TrimSpace(info.Street) != "" &&
		strings.TrimSpace(info.Number) != "" &&
		strings.TrimSpace(info.Neighborhood) != "" &&
		strings.TrimSpace(info.WhatsApp) != ""
}

// ParseAmount parses a raw decimal input ("30.00") into centavos.
// Empty or negative input is rejected.
func ParseAmount(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("amount is empty")
	}
	// Accept comma as the decimal separator, common in pt-BR input
	raw = strings.ReplaceAll(raw, ",", ".")

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("amount must be non-negative")
	}
	return int64(math.Round(value * 100)), nil
}

// ValidCashAmount reports whether the raw tendered input parses as a
// non-negative amount covering the total
func ValidCashAmount(raw string, total int64) bool {
	tendered, err := ParseAmount(raw)
	if err != nil {
		return false
	}
	return tendered >= total
}

// ChangeFor returns tendered minus total. The result may be negative;
// a negative value is what blocks cash confirmation, but it is always
// computable for live shortfall display.
func ChangeFor(tendered, total int64) int64 {
	return tendered - total
}
