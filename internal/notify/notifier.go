// Package notify delivers best-effort email notifications. Delivery
// failures are the caller's to log; the business state transition is the
// source of truth, never the email.
package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"auction-platform/internal/config"
	"auction-platform/utils"
)

// Notifier delivers a templated message to an address.
type Notifier interface {
	Send(to, subject, text, html string) error
}

// SMTPNotifier sends mail through a plain SMTP relay.
type SMTPNotifier struct {
	cfg config.SMTP
}

// NewSMTPNotifier creates a notifier for the given transport settings.
func NewSMTPNotifier(cfg config.SMTP) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

// Send delivers the message as a multipart/alternative body. The html part
// is optional.
func (n *SMTPNotifier) Send(to, subject, text, html string) error {
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	if html != "" {
		const boundary = "auction-alt-boundary"
		fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)
		fmt.Fprintf(&b, "--%s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n", boundary, text)
		fmt.Fprintf(&b, "--%s\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n", boundary, html)
		fmt.Fprintf(&b, "--%s--\r\n", boundary)
	} else {
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		b.WriteString(text)
		b.WriteString("\r\n")
	}

	var auth smtp.Auth
	if n.cfg.User != "" {
		auth = smtp.PlainAuth("", n.cfg.User, n.cfg.Password, n.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{to}, []byte(b.String())); err != nil {
		return fmt.Errorf("notify: send to %s: %w", to, err)
	}
	return nil
}

// LogNotifier writes messages to the log instead of delivering them.
// Used when no SMTP host is configured, and in tests.
type LogNotifier struct{}

// Send logs the message and always succeeds.
func (LogNotifier) Send(to, subject, text, html string) error {
	utils.Info("notification (log only)", map[string]any{
		"to":      to,
		"subject": subject,
		"body":    text,
	})
	return nil
}

// FromConfig returns the SMTP notifier when a host is configured and the
// log-only notifier otherwise.
func FromConfig(cfg config.SMTP) Notifier {
	if cfg.Host == "" {
		return LogNotifier{}
	}
	return NewSMTPNotifier(cfg)
}
