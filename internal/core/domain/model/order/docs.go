// Package order implements the Order aggregate and its lifecycle state.
//
// An Order tracks what a customer bought, where it ships, and two independent
// status dimensions: the fulfillment status (pending, processing, shipped,
// delivered, canceled) and the payment status (pending, paid, failed,
// refunded). Both are enumerated value objects; membership in the enumerated
// set is the only structural guarantee. There is deliberately no transition
// adjacency graph: the domain allows manual correction, such as re-opening a
// canceled order, so any valid status may replace any other.
//
// The two dimensions are intentionally not cross-constrained - a canceled
// order may still carry paymentStatus=paid. This mirrors the business reality
// that cancellation and refunding are separate processes.
//
// The total amount is derived from the items at construction time and is not
// accepted from callers, so the aggregate can never carry a total that
// disagrees with its item lines.
package order
