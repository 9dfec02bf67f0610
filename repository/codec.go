// Package repository holds one repository per persisted collection. Each
// read loads the full JSON document for its key and each write rewrites
// it, the same whole-value cycle the storefront performed against local
// storage. A per-repository mutex serializes that cycle within the
// process; nothing protects two processes sharing one sqlite file.
package repository

import (
	"encoding/json"

	"github.com/adeanumainah/coffe-corner/storage"
)

func readJSON(s storage.Store, key string, out any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, err
	}
	return true, nil
}

func writeJSON(s storage.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, string(raw))
}
