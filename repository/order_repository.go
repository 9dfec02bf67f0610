package repository

import (
	"sync"

	"github.com/adeanumainah/coffe-corner/entity"
	"github.com/adeanumainah/coffe-corner/storage"
)

// OrderRepository owns the order ledger: append-mostly, with Status the
// only field ever rewritten in place.
type OrderRepository struct {
	store storage.Store
	mu    sync.Mutex
}

func NewOrderRepository(s storage.Store) *OrderRepository {
	return &OrderRepository{store: s}
}

func (r *OrderRepository) All() ([]entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *OrderRepository) Append(o entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders, err := r.load()
	if err != nil {
		return err
	}
	orders = append(orders, o)
	return writeJSON(r.store, storage.KeyOrders, orders)
}

// UpdateStatus rewrites the status of the order matching id after check
// approves the transition from the currently stored status. Holding the
// repository lock across the check keeps read-check-write atomic within
// the process.
func (r *OrderRepository) UpdateStatus(id int64, next string, check func(current string) error) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if err := check(orders[i].Status); err != nil {
			return nil, err
		}
		orders[i].Status = next
		if err := writeJSON(r.store, storage.KeyOrders, orders); err != nil {
			return nil, err
		}
		o := orders[i]
		return &o, nil
	}
	return nil, nil
}

func (r *OrderRepository) load() ([]entity.Order, error) {
	var orders []entity.Order
	if _, err := readJSON(r.store, storage.KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
