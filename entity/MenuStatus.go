package entity

const (
	MenuAvailable  = "available"
	MenuOutOfStock = "out-of-stock"
)

func ValidMenuStatus(s string) bool {
	return s == MenuAvailable || s == MenuOutOfStock
}
