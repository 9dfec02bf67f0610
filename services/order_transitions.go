package services

import "github.com/adeanumainah/coffe-corner/entity"

// transitions is the only legal movement through the order lifecycle.
// REJECTED and COMPLETED are terminal.
var transitions = map[string][]string{
	entity.OrderPending:  {entity.OrderAccepted, entity.OrderRejected},
	entity.OrderAccepted: {entity.OrderCompleted},
}

func canTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateStatus moves an order along the lifecycle. The check runs against
// the stored status under the ledger lock, so a stale caller cannot
// resurrect a terminal order.
func (s *OrderService) UpdateStatus(orderID int64, next string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(next) {
		return nil, invalid("status", "unknown order status")
	}
	order, err := s.Orders.UpdateStatus(orderID, next, func(current string) error {
		if !canTransition(current, next) {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	publish(s.Events, EventOrderStatusChanged, order)
	return order, nil
}
