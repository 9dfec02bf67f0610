package repository

import (
	"sync"

	"github.com/adeanumainah/coffe-corner/entity"
	"github.com/adeanumainah/coffe-corner/storage"
)

// CartRepository keys carts by username, cart_guest while logged out.
// Carts never merge: logging in simply switches to a different key and
// whatever sits under cart_guest is abandoned.
type CartRepository struct {
	store storage.Store
	mu    sync.Mutex
}

func NewCartRepository(s storage.Store) *CartRepository {
	return &CartRepository{store: s}
}

func (r *CartRepository) Lines(username string) ([]entity.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lines []entity.CartLine
	if _, err := readJSON(r.store, storage.CartKey(username), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *CartRepository) Save(username string, lines []entity.CartLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if lines == nil {
		lines = []entity.CartLine{}
	}
	return writeJSON(r.store, storage.CartKey(username), lines)
}

func (r *CartRepository) Clear(username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Remove(storage.CartKey(username))
}
