// Package notify renders order confirmations for out-of-band messaging.
// Payment itself is coordinated over WhatsApp; nothing here has side effects.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"resto-menu-api/models"
)

// ComposeConfirmation renders the human-readable summary the customer sends
// to the restaurant. Items appear in the order's persisted item order. The
// address line only appears when an address was given; notes go in a
// trailing block after a blank line.
func ComposeConfirmation(order *models.Order) string {
	lines := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("• %dx %s ($%s)",
			item.Quantity, item.Product.Name, item.UnitPrice.StringFixed(2)))
	}

	msg := fmt.Sprintf(`¡Hola! Quiero confirmar mi pedido #%d:

%s

💰 Total: $%s
📦 Entrega: %s
💳 Pago: %s

👤 Nombre: %s
📱 Teléfono: %s
`,
		order.ID,
		strings.Join(lines, "\n"),
		order.Total.StringFixed(2),
		order.DeliveryType.Label(),
		order.PaymentMethod.Label(),
		order.CustomerName,
		order.Phone,
	)

	if order.Address != "" {
		msg += fmt.Sprintf("📍 Dirección: %s\n", order.Address)
	}
	if order.Notes != "" {
		msg += fmt.Sprintf("\n📝 Notas: %s", order.Notes)
	}
	return msg
}

// WhatsAppLink builds a wa.me link that opens a chat with the restaurant
// and the confirmation message prefilled.
func WhatsAppLink(storePhone string, order *models.Order) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", storePhone, escape(ComposeConfirmation(order)))
}

// escape percent-encodes for a URL query value, with spaces as %20 rather
// than "+" so messaging apps render them correctly.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
