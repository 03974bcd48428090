package messaging

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrNoPhone = errors.New("client has no phone number")

// WhatsAppLink builds the click-to-chat URL for a Brazilian number. The
// caller opens it in the browser; nothing is sent or tracked server-side.
func WhatsAppLink(phone, text string) (string, error) {
	digits := onlyDigits(phone)
	if digits == "" {
		return "", ErrNoPhone
	}
	if !strings.HasPrefix(digits, "55") {
		digits = "55" + digits
	}
	return "https://api.whatsapp.com/send?phone=" + digits + "&text=" + url.QueryEscape(text), nil
}

// ConfirmationMessage asks the client to confirm today's appointment.
func ConfirmationMessage(clientName, startTime, serviceName string) string {
	return fmt.Sprintf("Olá, %s! 🌸\nConfirmado seu horário de hoje às %s para %s? ✨", clientName, startTime, serviceName)
}

// AnticipationMessage offers an earlier start when the previous appointment
// finished ahead of schedule.
func AnticipationMessage(clientName string) string {
	return fmt.Sprintf("Olá, %s! ✨\nTerminei meu atendimento anterior um pouco mais cedo. Se você quiser adiantar o seu horário de hoje, já estou disponível! 🌸", clientName)
}

// PaymentReminderMessage nudges a client about an open balance.
func PaymentReminderMessage(clientName, serviceName string, amount float64) string {
	return fmt.Sprintf("Olá, %s! 🌸\nTudo bem? Passando para lembrar do seu pagamento pendente ref. ao serviço de %s no valor de R$ %.2f.\n\nQualquer dúvida estou à disposição! ✨", clientName, serviceName, amount)
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
