// Package smtpmail delivers notifications over plain SMTP.
package smtpmail

import (
	"context"
	"fmt"
	"net/smtp"
)

// Channel implements ports.NotificationChannel over an SMTP relay.
// Authentication is optional; local relays such as MailHog accept
// unauthenticated sessions.
type Channel struct {
	host string
	port string
	from string
	auth smtp.Auth
}

// NewChannel creates an SMTP channel. Pass empty credentials to send
// without authentication.
func NewChannel(host, port, from, username, password string) *Channel {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &Channel{
		host: host,
		port: port,
		from: from,
		auth: auth,
	}
}

// Send delivers one HTML message to one recipient.
func (c *Channel) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		c.from, to, subject, body)

	addr := fmt.Sprintf("%s:%s", c.host, c.port)
	if err := smtp.SendMail(addr, c.auth, c.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("sending mail via %s: %w", addr, err)
	}

	return nil
}
