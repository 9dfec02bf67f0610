package entity

// Customer holds the details entered at checkout. TableNumber is set for
// dine-in orders only.
type Customer struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	TableNumber string `json:"tableNumber,omitempty"`
	Notes       string `json:"notes"`
}

// Order is appended to the ledger at checkout. Items and the money fields
// are immutable after creation; Status is the only field mutated later.
type Order struct {
	ID        int64      `json:"id"`
	OrderCode string     `json:"orderCode"`
	UserID    string     `json:"userId"`
	Items     []CartLine `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	Tax       float64    `json:"tax"`
	Total     float64    `json:"total"`
	Date      string     `json:"date"`
	Status    string     `json:"status"`
	OrderType string     `json:"orderType"`
	Customer  Customer   `json:"customerDetails"`
}
