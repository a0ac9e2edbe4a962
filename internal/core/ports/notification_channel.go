package ports

import (
	"context"
)

// NotificationChannel delivers a single rendered message to one recipient.
// Implementations wrap a concrete transport (SMTP, SES). A nil return means
// the transport accepted the message; it does not guarantee final delivery.
type NotificationChannel interface {
	Send(ctx context.Context, to string, subject string, body string) error
}
