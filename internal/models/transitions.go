package models

// orderTransitions is the intended forward progression of an order.
// DELIVERED branches to RETURNED or EXCHANGE; both are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusNew:       {OrderStatusPackaging},
	OrderStatusPackaging: {OrderStatusPacked},
	OrderStatusPacked:    {OrderStatusShipped},
	OrderStatusShipped:   {OrderStatusDelivered},
	OrderStatusDelivered: {OrderStatusReturned, OrderStatusExchange},
	OrderStatusReturned:  {},
	OrderStatusExchange:  {},
}

// CanTransition reports whether moving an order from one status to
// another follows the intended progression. Setting the same status
// again is allowed (repeat calls are idempotent). Operators can still
// bypass this table through the force-set path.
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses an order may advance to from the
// given stage, excluding itself
func NextStatuses(from OrderStatus) []OrderStatus {
	next := orderTransitions[from]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}
