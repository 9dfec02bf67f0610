package entity

const (
	OrderDineIn   = "dine-in"
	OrderTakeaway = "takeaway"
	OrderPickup   = "pickup"
)

func ValidOrderType(s string) bool {
	return s == OrderDineIn || s == OrderTakeaway || s == OrderPickup
}
