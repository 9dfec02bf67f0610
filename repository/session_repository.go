package repository

import (
	"sync"

	"github.com/adeanumainah/coffe-corner/entity"
	"github.com/adeanumainah/coffe-corner/storage"
)

// SessionRepository persists the single session record so a login
// survives a process restart, like the storefront surviving a reload.
type SessionRepository struct {
	store storage.Store
	mu    sync.Mutex
}

func NewSessionRepository(s storage.Store) *SessionRepository {
	return &SessionRepository{store: s}
}

// Get returns a zero session (IsLoggedIn=false) when none is stored.
func (r *SessionRepository) Get() (entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sess entity.Session
	if _, err := readJSON(r.store, storage.KeySession, &sess); err != nil {
		return entity.Session{}, err
	}
	return sess, nil
}

func (r *SessionRepository) Set(sess entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return writeJSON(r.store, storage.KeySession, sess)
}

func (r *SessionRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Remove(storage.KeySession)
}
