// internal/domain/checkout/message.go
package checkout

import (
	"fmt"
	"sort"
	"strings"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// FormatPixInstructions builds the pt-BR payment-instructions message
// sent to the customer over WhatsApp when a PIX order is placed
func FormatPixInstructions(pixOrderID string, c *cart.SessionCart, info order.DeliveryInfo, subtotal, deliveryFee, total int64, store config.StoreConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎯 *PEDIDO PIX - %s*\n\n", pixOrderID)
	fmt.Fprintf(&b, "🍽️ *%s*\n\n", store.Name)

	b.WriteString("📦 *Resumo do Pedido:*\n")
	for _, item := range c.Items {
		fmt.Fprintf(&b, "• %dx %s\n", item.Quantity, item.Name)
		if names := selectionNames(item); names != "" {
			fmt.Fprintf(&b, "  ↳ %s\n", names)
		}
	}

	b.WriteString("\n💰 *Valores:*\n")
	fmt.Fprintf(&b, "Subtotal: R$ %s\n", order.FormatAmount(subtotal))
	fmt.Fprintf(&b, "Taxa de Entrega: R$ %s\n", order.FormatAmount(deliveryFee))
	b.WriteString("━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "*Total: R$ %s*\n\n", order.FormatAmount(total))

	b.WriteString("📍 *Endereço de Entrega:*\n")
	fmt.Fprintf(&b, "%s, %s\n", info.Street, info.Number)
	if info.Complement != "" {
		fmt.Fprintf(&b, "%s - %s\n", info.Neighborhood, info.Complement)
	} else {
		fmt.Fprintf(&b, "%s\n", info.Neighborhood)
	}
	fmt.Fprintf(&b, "📱 WhatsApp: %s\n\n", info.WhatsApp)

	b.WriteString("━━━━━━━━━━━━━━━━━\n")
	b.WriteString("💳 *PAGAMENTO PIX:*\n")
	b.WriteString("━━━━━━━━━━━━━━━━━\n\n")
	fmt.Fprintf(&b, "🔑 *Chave PIX:*\n%s\n\n", store.PixKey)
	fmt.Fprintf(&b, "💰 *Valor:* R$ %s\n\n", order.FormatAmount(total))
	fmt.Fprintf(&b, "📱 *ID do Pedido:* %s\n\n", pixOrderID)

	b.WriteString("━━━━━━━━━━━━━━━━━\n")
	b.WriteString("📸 *INSTRUÇÕES:*\n")
	b.WriteString("━━━━━━━━━━━━━━━━━\n")
	b.WriteString("1. Copie a chave PIX acima\n")
	b.WriteString("2. Abra seu app de banco\n")
	b.WriteString("3. Faça o pagamento PIX\n")
	b.WriteString("4. Envie o comprovante aqui\n\n")
	b.WriteString("⏰ Seu pedido será confirmado após envio do comprovante!")

	return b.String()
}

// selectionNames flattens an item's selected options into a stable,
// comma-separated list
func selectionNames(item cart.Item) string {
	if len(item.Customizations) == 0 {
		return ""
	}

	groupIDs := make([]string, 0, len(item.Customizations))
	for id := range item.Customizations {
		groupIDs = append(groupIDs, id)
	}
	sort.Strings(groupIDs)

	var names []string
	for _, id := range groupIDs {
		for _, opt := range item.Customizations[id] {
			names = append(names, opt.Name)
		}
	}
	return strings.Join(names, ", ")
}
