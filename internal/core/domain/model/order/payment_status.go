package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// PaymentStatus represents the payment state of an order.
//
// It is tracked independently of the fulfillment Status; the model places no
// constraint between the two dimensions. Like Status, the only structural
// guarantee is membership in the enumerated set.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status of a new order.
	PaymentPending

	// PaymentPaid indicates the payment has been received.
	PaymentPaid

	// PaymentFailed indicates the payment attempt failed.
	PaymentFailed

	// PaymentRefunded indicates the payment was returned to the customer.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "unknown",
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentFailed:   "failed",
		PaymentRefunded: "refunded",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentFailed:   "failed",
		PaymentRefunded: "refunded",
	}
}

// PaymentStatusFromString parses a wire name into a PaymentStatus.
// Accepted values are exactly "pending", "paid", "failed" and "refunded";
// anything else fails with a ValueIsInvalidError.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range getValidPaymentStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks if the PaymentStatus is a member of the enumerated set.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the wire name of the payment status.
// Returns "unknown" for invalid values.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// TriggersNotification reports whether a transition into this payment status
// must send a payment-confirmation notification. Only "paid" does.
func (s PaymentStatus) TriggersNotification() bool {
	return s == PaymentPaid
}
