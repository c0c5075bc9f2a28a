// Package whatsapp builds the customer notification messages and wa.me deep
// links. Nothing is ever sent from the server; the admin opens the link
// client-side.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

var statusMessages = map[string]string{
	"pending":    "Hola %s! Recibimos tu pedido y lo estamos revisando. Te avisamos pronto.",
	"processing": "Hola %s! Tu pedido está en proceso de impresión. Te avisamos cuando esté listo.",
	"ready":      "Hola %s! Tu pedido DTF está listo para retirar. Te esperamos!",
	"rejected":   "Hola %s, hubo un problema con tu archivo. Por favor contactanos para más detalles.",
}

// Message returns the canned notification text for an order status. Unknown
// statuses fall back to the pending message.
func Message(status, customerName string) string {
	template, ok := statusMessages[status]
	if !ok {
		template = statusMessages["pending"]
	}
	return fmt.Sprintf(template, customerName)
}

// FormatNumber strips everything but digits from a phone number.
func FormatNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Link builds a wa.me deep link that opens a chat with the given phone number
// pre-filled with message.
func Link(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", FormatNumber(phone), url.QueryEscape(message))
}
