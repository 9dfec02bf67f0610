package repository

import (
	"sync"

	"github.com/adeanumainah/coffe-corner/storage"
)

// PreferenceRepository covers the two small leftover keys: the UI theme
// and the liked-items map (menu id -> liked).
type PreferenceRepository struct {
	store storage.Store
	mu    sync.Mutex
}

func NewPreferenceRepository(s storage.Store) *PreferenceRepository {
	return &PreferenceRepository{store: s}
}

func (r *PreferenceRepository) Theme() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok, err := r.store.Get(storage.KeyTheme)
	if err != nil || !ok {
		return "", err
	}
	return v, nil
}

func (r *PreferenceRepository) SetTheme(theme string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Set(storage.KeyTheme, theme)
}

func (r *PreferenceRepository) LikedItems() (map[int]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	liked := make(map[int]bool)
	if _, err := readJSON(r.store, storage.KeyLikedItems, &liked); err != nil {
		return nil, err
	}
	return liked, nil
}

func (r *PreferenceRepository) SaveLikedItems(liked map[int]bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return writeJSON(r.store, storage.KeyLikedItems, liked)
}
