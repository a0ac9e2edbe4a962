// Package subscriber implements the Subscriber aggregate.
//
// A Subscriber is a mailing-list member identified by a case-insensitive
// unique email address. Subscribers carry an active flag and a promotional
// opt-in flag; only active subscribers with the opt-in set receive campaign
// messages.
//
// Removal is always a soft transition: deactivation flips the active flag
// and records an unsubscribed timestamp, but the record is never physically
// deleted. Email uniqueness is enforced by the repository at creation time.
package subscriber
