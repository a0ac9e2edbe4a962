package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// Unlike a classic state machine there is no transition adjacency graph:
// any valid status may replace any other, because the domain allows manual
// correction (e.g. re-opening a canceled order). The only structural
// guarantee is membership in the enumerated set.
//
// Status is a value object that provides string representations for
// persistence and the API surface.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is first created.
	StatusPending

	// StatusProcessing indicates the order is being prepared for shipment.
	StatusProcessing

	// StatusShipped indicates the order has left the warehouse.
	StatusShipped

	// StatusDelivered indicates the order has reached the customer.
	StatusDelivered

	// StatusCanceled indicates the order was canceled.
	// Canceled orders may be re-opened by a later status change.
	StatusCanceled
)

// getStatusStrings returns a map of Status values to their wire names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "unknown",
		StatusPending:    "pending",
		StatusProcessing: "processing",
		StatusShipped:    "shipped",
		StatusDelivered:  "delivered",
		StatusCanceled:   "canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "pending",
		StatusProcessing: "processing",
		StatusShipped:    "shipped",
		StatusDelivered:  "delivered",
		StatusCanceled:   "canceled",
	}
}

// StatusFromString parses a wire name into a Status.
//
// Accepted values are exactly "pending", "processing", "shipped",
// "delivered" and "canceled". Any other input fails with a
// ValueIsInvalidError before any side effect can occur, which is how
// out-of-enum input from the API layer is rejected.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is a member of the enumerated set.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String returns the wire name of the status ("pending", "shipped", ...).
// Returns "unknown" for invalid status values. Implements fmt.Stringer and
// is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// TriggersNotification reports whether a transition into this status must
// send a status-update notification to the customer.
//
// Notifications are due for processing, shipped and delivered only; pending
// and canceled produce zero send attempts.
func (s Status) TriggersNotification() bool {
	return s == StatusProcessing || s == StatusShipped || s == StatusDelivered
}
