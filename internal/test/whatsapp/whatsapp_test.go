package whatsapp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dtf-orders-backend/internal/whatsapp"
)

func TestLink(t *testing.T) {
	link := whatsapp.Link("+54 9 11 1234-5678", "hi")
	assert.Equal(t, "https://wa.me/5491112345678?text=hi", link)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "5491112345678", whatsapp.FormatNumber("+54 9 11 1234-5678"))
	assert.Equal(t, "1234", whatsapp.FormatNumber("(12) 34"))
	assert.Equal(t, "", whatsapp.FormatNumber("abc"))
}

func TestMessage_KnownStatuses(t *testing.T) {
	for _, status := range []string{"pending", "processing", "ready", "rejected"} {
		msg := whatsapp.Message(status, "Ana")
		assert.Contains(t, msg, "Ana")
	}
	assert.Contains(t, whatsapp.Message("ready", "Ana"), "listo para retirar")
	assert.Contains(t, whatsapp.Message("rejected", "Ana"), "hubo un problema")
}

func TestMessage_FallsBackToPending(t *testing.T) {
	assert.Equal(t, whatsapp.Message("pending", "Ana"), whatsapp.Message("archived", "Ana"))
}

func TestLink_EncodesMessage(t *testing.T) {
	link := whatsapp.Link("5491112345678", "Hola Ana! Tu pedido está listo")
	assert.Contains(t, link, "https://wa.me/5491112345678?text=")
	assert.NotContains(t, link, " ")
}
