package repository

import (
	"sync"

	"github.com/adeanumainah/coffe-corner/entity"
	"github.com/adeanumainah/coffe-corner/storage"
)

type UserRepository struct {
	store storage.Store
	mu    sync.Mutex
}

func NewUserRepository(s storage.Store) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) All() ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// FindByUsername returns nil when no record matches.
func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			u := users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Append(u entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	users, err := r.load()
	if err != nil {
		return err
	}
	users = append(users, u)
	return writeJSON(r.store, storage.KeyUsers, users)
}

// Replace swaps the record matching u.Username. It reports whether a
// record was found.
func (r *UserRepository) Replace(u entity.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users, err := r.load()
	if err != nil {
		return false, err
	}
	for i := range users {
		if users[i].Username == u.Username {
			users[i] = u
			return true, writeJSON(r.store, storage.KeyUsers, users)
		}
	}
	return false, nil
}

func (r *UserRepository) load() ([]entity.User, error) {
	var users []entity.User
	if _, err := readJSON(r.store, storage.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}
