package repository

import (
	"sync"

	"github.com/adeanumainah/coffe-corner/entity"
	"github.com/adeanumainah/coffe-corner/storage"
)

type MenuRepository struct {
	store storage.Store
	mu    sync.Mutex
}

func NewMenuRepository(s storage.Store) *MenuRepository {
	return &MenuRepository{store: s}
}

func (r *MenuRepository) All() ([]entity.Menu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// FindByID returns nil when the id is absent.
func (r *MenuRepository) FindByID(id int) (*entity.Menu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	menus, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range menus {
		if menus[i].ID == id {
			m := menus[i]
			return &m, nil
		}
	}
	return nil, nil
}

// Seeded reports whether the menus key has ever been written. An empty
// catalog that was written deliberately still counts as seeded.
func (r *MenuRepository) Seeded() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok, err := r.store.Get(storage.KeyMenus)
	return ok, err
}

func (r *MenuRepository) SaveAll(menus []entity.Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return writeJSON(r.store, storage.KeyMenus, menus)
}

func (r *MenuRepository) Append(m entity.Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	menus, err := r.load()
	if err != nil {
		return err
	}
	menus = append(menus, m)
	return writeJSON(r.store, storage.KeyMenus, menus)
}

// Replace swaps the record matching m.ID, reporting whether it existed.
func (r *MenuRepository) Replace(m entity.Menu) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	menus, err := r.load()
	if err != nil {
		return false, err
	}
	for i := range menus {
		if menus[i].ID == m.ID {
			menus[i] = m
			return true, writeJSON(r.store, storage.KeyMenus, menus)
		}
	}
	return false, nil
}

// Delete removes the record matching id, reporting whether it existed.
func (r *MenuRepository) Delete(id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	menus, err := r.load()
	if err != nil {
		return false, err
	}
	kept := menus[:0]
	found := false
	for _, m := range menus {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	if !found {
		return false, nil
	}
	return true, writeJSON(r.store, storage.KeyMenus, kept)
}

func (r *MenuRepository) load() ([]entity.Menu, error) {
	var menus []entity.Menu
	if _, err := readJSON(r.store, storage.KeyMenus, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}
