package services

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"
)

// NotificationMessage is a fully rendered message addressed to one recipient.
type NotificationMessage struct {
	To      string
	Subject string
	Body    string
}

// DispatchResult reports the outcome of a bulk send.
// Sent <= Total always holds; the difference is the number of failures.
type DispatchResult struct {
	Total int
	Sent  int
}

// Failed returns the number of recipients the channel rejected.
func (r DispatchResult) Failed() int {
	return r.Total - r.Sent
}

// Dispatcher delivers messages through a NotificationChannel.
//
// Delivery is best-effort: a channel failure for one recipient is logged and
// counted but never aborts the remaining sends and never surfaces as an
// error to the caller.
type Dispatcher struct {
	channel ports.NotificationChannel
	logger  *slog.Logger
}

// NewDispatcher creates a Dispatcher over the given channel.
func NewDispatcher(channel ports.NotificationChannel, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		channel: channel,
		logger:  logger.With("component", "dispatcher"),
	}
}

// SendOne attempts a single delivery and reports whether the channel
// accepted the message.
func (d *Dispatcher) SendOne(ctx context.Context, msg NotificationMessage) bool {
	if err := d.channel.Send(ctx, msg.To, msg.Subject, msg.Body); err != nil {
		d.logger.Warn("message delivery failed",
			"to", msg.To,
			"subject", msg.Subject,
			"error", err)
		return false
	}

	d.logger.Info("message delivered", "to", msg.To, "subject", msg.Subject)
	return true
}

// SendToMany delivers the messages sequentially in input order, one attempt
// per recipient. Failures are counted, not propagated; an empty input yields
// a zero result.
func (d *Dispatcher) SendToMany(ctx context.Context, msgs []NotificationMessage) DispatchResult {
	result := DispatchResult{Total: len(msgs)}

	for _, msg := range msgs {
		if d.SendOne(ctx, msg) {
			result.Sent++
		}
	}

	return result
}
