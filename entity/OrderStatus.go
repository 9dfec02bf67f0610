package entity

const (
	OrderPending   = "PENDING"
	OrderAccepted  = "ACCEPTED"
	OrderRejected  = "REJECTED"
	OrderCompleted = "COMPLETED"
)

// OrderStatuses lists every status in display order.
var OrderStatuses = []string{OrderPending, OrderAccepted, OrderRejected, OrderCompleted}

func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}
