package entity

// CartLine copies the menu fields at add time; later catalog edits do not
// change lines already in a cart. Qty is never persisted at zero or below,
// a decrement to zero drops the line.
type CartLine struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Qty      int     `json:"qty"`
}

func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Qty)
}
