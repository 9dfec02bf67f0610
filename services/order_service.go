package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/adeanumainah/coffe-corner/entity"
	"github.com/adeanumainah/coffe-corner/repository"
)

type OrderService struct {
	Orders *repository.OrderRepository
	Carts  *repository.CartRepository
	Menus  *repository.MenuRepository
	Events Publisher

	now  func() time.Time
	code func() string
}

func NewOrderService(orders *repository.OrderRepository, carts *repository.CartRepository, menus *repository.MenuRepository, events Publisher) *OrderService {
	return &OrderService{
		Orders: orders,
		Carts:  carts,
		Menus:  menus,
		Events: events,
		now:    time.Now,
		code:   newOrderCode,
	}
}

// newOrderCode returns the short code shown to the customer at the
// counter: ORD- plus six random digits.
func newOrderCode() string {
	return fmt.Sprintf("ORD-%d", 100000+rand.Intn(900000))
}

type CheckoutIn struct {
	OrderType   string `json:"orderType"`
	Name        string `json:"name"`
	TableNumber string `json:"tableNumber"`
	Notes       string `json:"notes"`
}

// Place converts the user's cart into a ledger entry. It spans three
// stores and is all-or-nothing: the availability check runs first against
// the live catalog, and on any out-of-stock line nothing is mutated, the
// cart included. On success the cart snapshot becomes the immutable order
// items, the order is appended with status PENDING and the cart is
// cleared.
func (s *OrderService) Place(username, phone string, in CheckoutIn) (*entity.Order, error) {
	lines, err := s.Carts.Lines(username)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, invalid("cart", "is empty")
	}
	if !entity.ValidOrderType(in.OrderType) {
		return nil, invalid("orderType", "must be dine-in, takeaway or pickup")
	}
	if in.OrderType == entity.OrderDineIn && strings.TrimSpace(in.TableNumber) == "" {
		return nil, invalid("tableNumber", "is required for dine-in orders")
	}

	// Availability is checked at submission time; the cart does not track
	// catalog changes on its own.
	for _, l := range lines {
		menu, err := s.Menus.FindByID(l.ID)
		if err != nil {
			return nil, err
		}
		if menu != nil && menu.Status == entity.MenuOutOfStock {
			return nil, ErrIneligible
		}
	}

	sum := summarize(lines)

	id := s.now().UnixMilli()
	existing, err := s.Orders.All()
	if err != nil {
		return nil, err
	}
	// Millisecond timestamps can collide under test or bursty checkouts.
	for _, o := range existing {
		if o.ID >= id {
			id = o.ID + 1
		}
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = username
	}
	if phone == "" {
		phone = "Not provided"
	}
	table := ""
	if in.OrderType == entity.OrderDineIn {
		table = strings.TrimSpace(in.TableNumber)
	}

	order := entity.Order{
		ID:        id,
		OrderCode: s.code(),
		UserID:    username,
		Items:     lines,
		Subtotal:  sum.Subtotal,
		Tax:       sum.Tax,
		Total:     sum.Total,
		Date:      s.now().Format(time.RFC3339),
		Status:    entity.OrderPending,
		OrderType: in.OrderType,
		Customer: entity.Customer{
			Name:        name,
			Phone:       phone,
			TableNumber: table,
			Notes:       in.Notes,
		},
	}

	if err := s.Orders.Append(order); err != nil {
		return nil, err
	}
	if err := s.Carts.Clear(username); err != nil {
		return nil, err
	}
	publish(s.Events, EventOrderPlaced, order)
	return &order, nil
}

// List returns the full ledger, newest first, optionally filtered by
// status.
func (s *OrderService) List(status string) ([]entity.Order, error) {
	orders, err := s.Orders.All()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		if status != "" && orders[i].Status != status {
			continue
		}
		out = append(out, orders[i])
	}
	return out, nil
}

func (s *OrderService) ListForUser(username string) ([]entity.Order, error) {
	orders, err := s.Orders.All()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Order, 0)
	for i := len(orders) - 1; i >= 0; i-- {
		if orders[i].UserID == username {
			out = append(out, orders[i])
		}
	}
	return out, nil
}

// StatusCounts is recomputed from the full ledger on every call.
func (s *OrderService) StatusCounts() (map[string]int, error) {
	orders, err := s.Orders.All()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(entity.OrderStatuses))
	for _, st := range entity.OrderStatuses {
		counts[st] = 0
	}
	for _, o := range orders {
		counts[o.Status]++
	}
	return counts, nil
}

// Revenue sums Total over COMPLETED orders only. Status mutates in place,
// so this is never cached.
func (s *OrderService) Revenue() (float64, error) {
	orders, err := s.Orders.All()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, o := range orders {
		if o.Status == entity.OrderCompleted {
			total += o.Total
		}
	}
	return total, nil
}

// ProfileStats summarizes one customer's order history for their profile
// page.
type ProfileStats struct {
	TotalOrders      int    `json:"totalOrders"`
	CompletedOrders  int    `json:"completedOrders"`
	PendingOrders    int    `json:"pendingOrders"`
	FavoriteCategory string `json:"favoriteCategory"`
}

func (s *OrderService) StatsForUser(username string) (*ProfileStats, error) {
	orders, err := s.Orders.All()
	if err != nil {
		return nil, err
	}
	stats := &ProfileStats{}
	categoryCount := make(map[string]int)
	for _, o := range orders {
		if o.UserID != username {
			continue
		}
		stats.TotalOrders++
		switch o.Status {
		case entity.OrderCompleted:
			stats.CompletedOrders++
		case entity.OrderPending:
			stats.PendingOrders++
		}
		for _, l := range o.Items {
			categoryCount[l.Category] += l.Qty
		}
	}
	best := 0
	for cat, n := range categoryCount {
		if n > best || (n == best && cat < stats.FavoriteCategory) {
			best = n
			stats.FavoriteCategory = cat
		}
	}
	return stats, nil
}
