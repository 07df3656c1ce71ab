// internal/domain/cart/entity_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

func marmitaItem(quantity int) Item {
	return Item{
		ProductID: "marmita-maminha",
		Name:      "Marmita de Maminha",
		Price:     2290,
		Category:  "marmita-promocao",
		Quantity:  quantity,
		Customizations: map[string][]catalog.Option{
			"size":   {{ID: "medium", Name: "Média", Price: 300}},
			"extras": {{ID: "bacon", Name: "Bacon", Price: 300}, {ID: "cheese", Name: "Queijo Ralado", Price: 200}},
		},
	}
}

func TestItem_ExtrasTotal(t *testing.T) {
	item := marmitaItem(1)

	assert.Equal(t, int64(800), item.ExtrasTotal())
}

func TestItem_UnitPriceIncludesExtras(t *testing.T) {
	item := marmitaItem(1)

	assert.Equal(t, int64(3090), item.UnitPrice())
}

func TestItem_LineTotalScalesExtrasWithQuantity(t *testing.T) {
	item := marmitaItem(3)

	// Surcharges are per unit, not per line
	assert.Equal(t, int64(9270), item.LineTotal())
}

func TestItem_NoCustomizations(t *testing.T) {
	item := Item{ProductID: "coca-lata", Name: "Coca-Cola Lata", Price: 600, Quantity: 2}

	assert.Equal(t, int64(0), item.ExtrasTotal())
	assert.Equal(t, int64(600), item.UnitPrice())
	assert.Equal(t, int64(1200), item.LineTotal())
}

func TestSessionCart_EmptyTotals(t *testing.T) {
	c := &SessionCart{SessionID: "s1"}

	assert.True(t, c.IsEmpty())

	totals := c.Totals()
	assert.Equal(t, 0, totals.ItemCount)
	assert.Equal(t, 0, totals.TotalQuantity)
	assert.Equal(t, int64(0), totals.Subtotal)
}

func TestSessionCart_Totals(t *testing.T) {
	c := &SessionCart{SessionID: "s1"}
	c.Add(marmitaItem(2))
	c.Add(Item{ProductID: "coca-lata", Name: "Coca-Cola Lata", Price: 600, Quantity: 1})

	totals := c.Totals()

	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 3, totals.TotalQuantity)
	assert.Equal(t, int64(6780), totals.Subtotal)
}

func TestSessionCart_AddDoesNotMergeSameProduct(t *testing.T) {
	c := &SessionCart{SessionID: "s1"}
	c.Add(marmitaItem(1))
	c.Add(marmitaItem(1))

	assert.Len(t, c.Items, 2)
	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, 1, c.Items[1].Quantity)
}

func TestSessionCart_PreservesInsertionOrder(t *testing.T) {
	c := &SessionCart{SessionID: "s1"}
	c.Add(Item{ProductID: "a", Quantity: 1})
	c.Add(Item{ProductID: "b", Quantity: 1})
	c.Add(Item{ProductID: "c", Quantity: 1})

	c.Remove(1)

	assert.Equal(t, "a", c.Items[0].ProductID)
	assert.Equal(t, "c", c.Items[1].ProductID)
}

func TestSessionCart_UpdateQuantity(t *testing.T) {
	c := &SessionCart{SessionID: "s1"}
	c.Add(marmitaItem(1))

	c.UpdateQuantity(0, 4)

	assert.Equal(t, 4, c.Items[0].Quantity)
}

func TestSessionCart_UpdateQuantityToZeroRemoves(t *testing.T) {
	c := &SessionCart{SessionID: "s1"}
	c.Add(marmitaItem(1))
	c.Add(Item{ProductID: "coca-lata", Quantity: 1})

	c.UpdateQuantity(0, 0)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, "coca-lata", c.Items[0].ProductID)
}

func TestSessionCart_UpdateQuantityNegativeRemoves(t *testing.T) {
	c := &SessionCart{SessionID: "s1"}
	c.Add(marmitaItem(1))

	c.UpdateQuantity(0, -2)

	assert.True(t, c.IsEmpty())
}

func TestSessionCart_OutOfRangeIndexIgnored(t *testing.T) {
	c := &SessionCart{SessionID: "s1"}
	c.Add(marmitaItem(1))

	c.UpdateQuantity(5, 2)
	c.Remove(-1)
	c.Remove(3)

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestSessionCart_Clear(t *testing.T) {
	c := &SessionCart{SessionID: "s1"}
	c.Add(marmitaItem(1))
	c.Add(marmitaItem(2))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(0), c.Totals().Subtotal)
}
