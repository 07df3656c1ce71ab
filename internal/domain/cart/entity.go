// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Item represents a product snapshot plus order-time state. It is
// created when a product and its customization set are confirmed in the
// product-detail flow and mutated only by quantity updates.
type Item struct {
	ProductID      string                      `json:"product_id"`
	Name           string                      `json:"name"`
	Description    string                      `json:"description,omitempty"`
	Price          int64                       `json:"price"` // Base price in centavos at time of adding
	Category       string                      `json:"category"`
	IsPopular      bool                        `json:"is_popular,omitempty"`
	Customizations map[string][]catalog.Option `json:"customizations,omitempty"` // Keyed by customization group id
	Quantity       int                         `json:"quantity"`
	AddedAt        time.Time                   `json:"added_at"`
}

// ExtrasTotal returns the sum of selected option prices across all
// customization groups, unscaled by quantity. Used for display.
func (i Item) ExtrasTotal() int64 {
	var total int64
	for _, options := range i.Customizations {
		for _, opt := range options {
			total += opt.Price
		}
	}
	return total
}

// UnitPrice returns the per-unit price including customization surcharges
func (i Item) UnitPrice() int64 {
	return i.Price + i.ExtrasTotal()
}

// LineTotal returns the item's total. Customization surcharges scale
// with quantity.
func (i Item) LineTotal() int64 {
	return i.UnitPrice() * int64(i.Quantity)
}

// SessionCart represents a cart for a storefront session (stored in Redis).
// Items keep insertion order; adding the same product twice creates two
// independent entries.
type SessionCart struct {
	SessionID string    `json:"session_id"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of cart entries
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	Subtotal      int64 `json:"subtotal"`       // Sum of line totals, before delivery fee
}

// IsEmpty reports whether the cart has no items
func (c *SessionCart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Totals computes the cart totals. An empty cart yields a zero subtotal.
func (c *SessionCart) Totals() Totals {
	totals := Totals{ItemCount: len(c.Items)}
	for _, item := range c.Items {
		totals.TotalQuantity += item.Quantity
		totals.Subtotal += item.LineTotal()
	}
	return totals
}

// Add appends an item at the end of the cart
func (c *SessionCart) Add(item Item) {
	c.Items = append(c.Items, item)
}

// UpdateQuantity sets the quantity of the entry at index. A quantity of
// zero or less removes the entry instead of storing a non-positive
// quantity. Out-of-range indexes are ignored.
func (c *SessionCart) UpdateQuantity(index, quantity int) {
	if index < 0 || index >= len(c.Items) {
		return
	}
	if quantity <= 0 {
		c.Remove(index)
		return
	}
	c.Items[index].Quantity = quantity
}

// Remove deletes the entry at index, preserving the order of the rest
func (c *SessionCart) Remove(index int) {
	if index < 0 || index >= len(c.Items) {
		return
	}
	c.Items = append(c.Items[:index], c.Items[index+1:]...)
}

// Clear removes all items
func (c *SessionCart) Clear() {
	c.Items = nil
}
