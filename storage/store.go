// Package storage provides the key-value substrate every repository sits
// on: a durable, synchronous, process-local string map. Values are whole
// JSON documents read and rewritten in full on every mutation.
package storage

// Store is the port repositories are built against.
//
// There is no cross-handle isolation: two handles over the same backing
// data do unsynchronized read-modify-write cycles and the last writer
// wins. Repositories serialize access within one process; concurrent
// processes on the same sqlite file remain a known race.
type Store interface {
	// Get returns the raw value and whether the key exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Logical key space.
const (
	KeyUsers      = "users"
	KeySession    = "session"
	KeyMenus      = "menus"
	KeyOrders     = "orders"
	KeyTheme      = "theme"
	KeyLikedItems = "likedItems"

	// GuestUser keys the cart used while nobody is logged in.
	GuestUser = "guest"
)

// CartKey returns the per-user cart key, cart_<username>. An empty
// username maps to the guest cart.
func CartKey(username string) string {
	if username == "" {
		username = GuestUser
	}
	return "cart_" + username
}
