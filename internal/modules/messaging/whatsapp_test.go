package messaging

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsAppLinkFormatsBrazilianNumber(t *testing.T) {
	link, err := WhatsAppLink("(11) 98765-4321", "Olá!")

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://api.whatsapp.com/send?phone=5511987654321&text="))

	u, err := url.Parse(link)
	assert.NoError(t, err)
	assert.Equal(t, "Olá!", u.Query().Get("text"))
}

func TestWhatsAppLinkKeepsExistingCountryCode(t *testing.T) {
	link, err := WhatsAppLink("+55 11 98765-4321", "oi")

	assert.NoError(t, err)
	assert.Contains(t, link, "phone=5511987654321")
	assert.NotContains(t, link, "phone=5555")
}

func TestWhatsAppLinkRejectsEmptyPhone(t *testing.T) {
	_, err := WhatsAppLink("", "oi")
	assert.ErrorIs(t, err, ErrNoPhone)

	_, err = WhatsAppLink("sem telefone", "oi")
	assert.ErrorIs(t, err, ErrNoPhone)
}

func TestConfirmationMessage(t *testing.T) {
	msg := ConfirmationMessage("Ana", "10:00", "Volume Russo")

	assert.Contains(t, msg, "Ana")
	assert.Contains(t, msg, "10:00")
	assert.Contains(t, msg, "Volume Russo")
}

func TestPaymentReminderMessageFormatsAmount(t *testing.T) {
	msg := PaymentReminderMessage("Ana", "Manutenção", 120.5)

	assert.Contains(t, msg, "R$ 120.50")
	assert.Contains(t, msg, "Manutenção")
}
