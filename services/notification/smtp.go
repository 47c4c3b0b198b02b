// File: services/notification/smtp.go
package notification

import (
	"fmt"
	"net/smtp"
	"strings"

	"medicore/config"
)

// SMTPNotifier sends plain-text email via unauthenticated SMTP
// (Mailpit-compatible for development).
type SMTPNotifier struct {
	addr string
	from string
}

// NewSMTPNotifier builds a notifier from the application config.
func NewSMTPNotifier() *SMTPNotifier {
	from := strings.TrimSpace(config.AppConfig.SMTPFrom)
	if from == "" {
		from = "no-reply@medicore.local"
	}
	return &SMTPNotifier{
		addr: fmt.Sprintf("%s:%s", config.AppConfig.SMTPHost, config.AppConfig.SMTPPort),
		from: from,
	}
}

func (n *SMTPNotifier) Send(to, subject, body string) error {
	msg := buildMessage(n.from, to, subject, body)
	return smtp.SendMail(n.addr, nil, n.from, []string{to}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}
