package services

import (
	"github.com/adeanumainah/coffe-corner/entity"
	"github.com/adeanumainah/coffe-corner/repository"
)

// TaxRate is applied to the cart subtotal at checkout and in summaries.
const TaxRate = 0.05

type CartService struct {
	Carts *repository.CartRepository
	Menus *repository.MenuRepository
}

func NewCartService(carts *repository.CartRepository, menus *repository.MenuRepository) *CartService {
	return &CartService{Carts: carts, Menus: menus}
}

func (s *CartService) Lines(username string) ([]entity.CartLine, error) {
	lines, err := s.Carts.Lines(username)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []entity.CartLine{}
	}
	return lines, nil
}

// Add puts one unit of the menu item into the cart, merging into an
// existing line for the same id. Out-of-stock items cannot be added.
func (s *CartService) Add(username string, menuID int) ([]entity.CartLine, error) {
	menu, err := s.Menus.FindByID(menuID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, ErrNotFound
	}
	if menu.Status == entity.MenuOutOfStock {
		return nil, ErrIneligible
	}

	lines, err := s.Carts.Lines(username)
	if err != nil {
		return nil, err
	}
	merged := false
	for i := range lines {
		if lines[i].ID == menuID {
			lines[i].Qty++
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, entity.CartLine{
			ID:       menu.ID,
			Name:     menu.Name,
			Category: menu.Category,
			Price:    menu.Price,
			Image:    menu.Image,
			Qty:      1,
		})
	}
	if err := s.Carts.Save(username, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// RemoveLine drops the line unconditionally.
func (s *CartService) RemoveLine(username string, menuID int) ([]entity.CartLine, error) {
	lines, err := s.Carts.Lines(username)
	if err != nil {
		return nil, err
	}
	kept := lines[:0]
	found := false
	for _, l := range lines {
		if l.ID == menuID {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return nil, ErrNotFound
	}
	if err := s.Carts.Save(username, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *CartService) IncreaseQty(username string, menuID int) ([]entity.CartLine, error) {
	return s.adjustQty(username, menuID, +1)
}

// DecreaseQty drops the line when its qty reaches zero; a zero or
// negative qty is never persisted.
func (s *CartService) DecreaseQty(username string, menuID int) ([]entity.CartLine, error) {
	return s.adjustQty(username, menuID, -1)
}

func (s *CartService) adjustQty(username string, menuID, delta int) ([]entity.CartLine, error) {
	lines, err := s.Carts.Lines(username)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range lines {
		if lines[i].ID == menuID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}
	lines[idx].Qty += delta
	if lines[idx].Qty <= 0 {
		lines = append(lines[:idx], lines[idx+1:]...)
	}
	if err := s.Carts.Save(username, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *CartService) Clear(username string) error {
	return s.Carts.Clear(username)
}

// CartSummary is derived from the current line set on every call, never
// cached across mutations.
type CartSummary struct {
	Lines     []entity.CartLine `json:"lines"`
	ItemCount int               `json:"itemCount"`
	Subtotal  float64           `json:"subtotal"`
	Tax       float64           `json:"tax"`
	Total     float64           `json:"total"`
}

func (s *CartService) Summary(username string) (*CartSummary, error) {
	lines, err := s.Lines(username)
	if err != nil {
		return nil, err
	}
	return summarize(lines), nil
}

func summarize(lines []entity.CartLine) *CartSummary {
	sum := &CartSummary{Lines: lines}
	for _, l := range lines {
		sum.ItemCount += l.Qty
		sum.Subtotal += l.LineTotal()
	}
	sum.Tax = sum.Subtotal * TaxRate
	sum.Total = sum.Subtotal + sum.Tax
	return sum
}
