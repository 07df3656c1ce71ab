// internal/pkg/pdf/service_test.go
package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

func testSummary() *order.Summary {
	cash := int64(3000)
	change := int64(210)
	return &order.Summary{
		OrderNumber: "PED-20260828-a1b2c3d4",
		Items: []order.LineItem{
			{
				Name:      "Marmita de Maminha",
				Quantity:  1,
				UnitPrice: 2290,
				LineTotal: 2290,
				Customizations: map[string][]catalog.Option{
					"size": {{ID: "medium", Name: "Média", Price: 300}},
				},
			},
		},
		Subtotal:      2290,
		DeliveryFee:   500,
		Total:         2790,
		PaymentMethod: "Dinheiro",
		Timestamp:     time.Date(2026, 8, 28, 12, 30, 0, 0, time.UTC),
		DeliveryInfo: order.DeliveryInfo{
			Street:       "Rua das Flores",
			Number:       "123",
			Neighborhood: "Centro",
			WhatsApp:     "11999998888",
		},
		CashAmount: &cash,
		Change:     &change,
	}
}

func TestGenerateHTML(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{
		Name:    "Boteco da Maminha",
		Address: "Rua Principal, 1",
		Phone:   "11988887777",
	}}
	svc := NewService(cfg)

	html, err := svc.generateHTML(testSummary())

	require.NoError(t, err)
	assert.Contains(t, html, "Boteco da Maminha")
	assert.Contains(t, html, "PED-20260828-a1b2c3d4")
	assert.Contains(t, html, "Marmita de Maminha")
	assert.Contains(t, html, "22.90")
	assert.Contains(t, html, "27.90")
	assert.Contains(t, html, "Dinheiro")
	assert.Contains(t, html, "28/08/2026 12:30")
	assert.Contains(t, html, "Rua das Flores, 123")
}

func TestGenerateHTML_CashSection(t *testing.T) {
	svc := NewService(&config.Config{})

	html, err := svc.generateHTML(testSummary())

	require.NoError(t, err)
	assert.Contains(t, html, "30.00")
	assert.Contains(t, html, "2.10")
}

func TestGenerateHTML_NoCashSectionForCard(t *testing.T) {
	svc := NewService(&config.Config{})

	summary := testSummary()
	summary.CashAmount = nil
	summary.Change = nil
	summary.PaymentMethod = "Cartão de Crédito"

	html, err := svc.generateHTML(summary)

	require.NoError(t, err)
	assert.NotContains(t, html, "Troco")
}

func TestFlattenCustomizations_SortedByGroup(t *testing.T) {
	item := order.LineItem{
		Customizations: map[string][]catalog.Option{
			"size":   {{Name: "Grande"}},
			"extras": {{Name: "Bacon"}, {Name: "Queijo Ralado"}},
		},
	}

	assert.Equal(t, "Bacon, Queijo Ralado, Grande", flattenCustomizations(item))
}
