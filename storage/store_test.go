package storage

import "testing"

func TestMemStoreRoundTrip(t *testing.T) {
	s := NewMemStore()

	if _, ok, _ := s.Get("menus"); ok {
		t.Fatalf("empty store reported a value for menus")
	}

	if err := s.Set("menus", `[{"id":1}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get("menus")
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if v != `[{"id":1}]` {
		t.Fatalf("wrong value %q", v)
	}

	if err := s.Set("menus", `[]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = s.Get("menus")
	if v != `[]` {
		t.Fatalf("overwrite did not replace full value, got %q", v)
	}

	if err := s.Remove("menus"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := s.Get("menus"); ok {
		t.Fatalf("value survived remove")
	}
}

func TestCartKey(t *testing.T) {
	if got := CartKey("budi"); got != "cart_budi" {
		t.Fatalf("CartKey(budi) = %q", got)
	}
	if got := CartKey(""); got != "cart_guest" {
		t.Fatalf("CartKey(\"\") = %q", got)
	}
}
