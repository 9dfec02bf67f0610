package services

import (
	"errors"
	"testing"

	"github.com/adeanumainah/coffe-corner/entity"
)

func TestCreateAssignsMaxPlusOne(t *testing.T) {
	e := newTestEnv(t)

	tea := e.addMenu(t, "Tea", "Drinks", 12000, "")
	if tea.ID != 1 {
		t.Fatalf("first id = %d, want 1", tea.ID)
	}
	if tea.Status != entity.MenuAvailable {
		t.Fatalf("default status = %q", tea.Status)
	}

	coffee := e.addMenu(t, "Coffee", "Drinks", 15000, "")
	if coffee.ID != 2 {
		t.Fatalf("second id = %d, want 2", coffee.ID)
	}

	// Removing id 1 must not free it for reuse.
	if err := e.menus.Delete(tea.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	third := e.addMenu(t, "Cocoa", "Drinks", 14000, "")
	if third.ID != 3 {
		t.Fatalf("id after delete = %d, want 3", third.ID)
	}
}

func TestMenuValidation(t *testing.T) {
	e := newTestEnv(t)

	cases := []struct {
		name  string
		draft MenuDraft
		field string
	}{
		{"missing name", MenuDraft{Category: "Drinks", Price: 100}, "name"},
		{"short name", MenuDraft{Name: "ab", Category: "Drinks", Price: 100}, "name"},
		{"missing category", MenuDraft{Name: "Tea", Price: 100}, "category"},
		{"zero price", MenuDraft{Name: "Tea", Category: "Drinks"}, "price"},
		{"negative price", MenuDraft{Name: "Tea", Category: "Drinks", Price: -5}, "price"},
		{"price too high", MenuDraft{Name: "Tea", Category: "Drinks", Price: 10_000_001}, "price"},
		{"bad image", MenuDraft{Name: "Tea", Category: "Drinks", Price: 100, Image: "ftp://x"}, "image"},
		{"bad status", MenuDraft{Name: "Tea", Category: "Drinks", Price: 100, Status: "sold"}, "status"},
	}
	for _, tc := range cases {
		_, err := e.menus.Create(tc.draft)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: got %v, want ValidationError", tc.name, err)
		}
		if ve.Field != tc.field {
			t.Fatalf("%s: field = %q, want %q", tc.name, ve.Field, tc.field)
		}
		// No mutation on violation.
		menus, _ := e.menus.Repo.All()
		if len(menus) != 0 {
			t.Fatalf("%s: catalog mutated on invalid draft", tc.name)
		}
	}

	if _, err := e.menus.Create(MenuDraft{Name: "Tea", Category: "Drinks", Price: 10_000_000, Image: "https://img/tea.jpg"}); err != nil {
		t.Fatalf("boundary draft rejected: %v", err)
	}
}

func TestUpdateAndDeleteNotFound(t *testing.T) {
	e := newTestEnv(t)
	draft := MenuDraft{Name: "Tea", Category: "Drinks", Price: 12000}

	if _, err := e.menus.Update(99, draft); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update stale id: got %v", err)
	}
	if err := e.menus.Delete(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete stale id: got %v", err)
	}

	m := e.addMenu(t, "Tea", "Drinks", 12000, "")
	updated, err := e.menus.Update(m.ID, MenuDraft{Name: "Green Tea", Category: "Drinks", Price: 13000})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Green Tea" || updated.Price != 13000 || updated.ID != m.ID {
		t.Fatalf("update result %+v", updated)
	}
}

func TestSetStatus(t *testing.T) {
	e := newTestEnv(t)
	m := e.addMenu(t, "Scone", "Pastry", 18000, "")

	out, err := e.menus.SetStatus(m.ID, entity.MenuOutOfStock)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if out.Status != entity.MenuOutOfStock || out.Name != "Scone" {
		t.Fatalf("set status result %+v", out)
	}

	if _, err := e.menus.SetStatus(m.ID, "gone"); err == nil {
		t.Fatalf("bad status value accepted")
	}
	if _, err := e.menus.SetStatus(404, entity.MenuAvailable); !errors.Is(err, ErrNotFound) {
		t.Fatalf("set status stale id: got %v", err)
	}
}

func TestListProjections(t *testing.T) {
	e := newTestEnv(t)
	e.addMenu(t, "Espresso", "Coffee", 18000, "")
	e.addMenu(t, "Cappuccino", "Coffee", 25000, "")
	e.addMenu(t, "Matcha Latte", "Non-Coffee", 28000, "")
	e.addMenu(t, "Iced Latte", "Coffee", 26000, "")

	// Category filter; "All" and empty behave the same.
	page, err := e.menus.List(ListQuery{Category: "Coffee"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 3 {
		t.Fatalf("coffee count = %d", page.Total)
	}
	all, _ := e.menus.List(ListQuery{Category: "All"})
	if all.Total != 4 {
		t.Fatalf("All count = %d", all.Total)
	}

	// Case-insensitive substring search.
	found, _ := e.menus.List(ListQuery{Search: "laTTe"})
	if found.Total != 2 {
		t.Fatalf("search total = %d, want 2", found.Total)
	}

	// Sorting.
	byPrice, _ := e.menus.List(ListQuery{Sort: "price-desc"})
	if byPrice.Items[0].Name != "Matcha Latte" {
		t.Fatalf("price-desc first = %q", byPrice.Items[0].Name)
	}
	byName, _ := e.menus.List(ListQuery{Sort: "name-asc"})
	if byName.Items[0].Name != "Cappuccino" {
		t.Fatalf("name-asc first = %q", byName.Items[0].Name)
	}
}

func TestListPagination(t *testing.T) {
	e := newTestEnv(t)
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	for _, n := range names {
		e.addMenu(t, n+"-item", "Snack", 10000, "")
	}

	first, _ := e.menus.List(ListQuery{Page: 1})
	if len(first.Items) != PageSize || first.TotalPages != 2 || first.Total != 10 {
		t.Fatalf("page 1: len=%d totalPages=%d total=%d", len(first.Items), first.TotalPages, first.Total)
	}
	second, _ := e.menus.List(ListQuery{Page: 2})
	if len(second.Items) != 2 {
		t.Fatalf("page 2 len = %d", len(second.Items))
	}
	past, _ := e.menus.List(ListQuery{Page: 5})
	if len(past.Items) != 0 {
		t.Fatalf("page past the end returned items")
	}
}

func TestCounts(t *testing.T) {
	e := newTestEnv(t)
	e.addMenu(t, "Espresso", "Coffee", 18000, "")
	e.addMenu(t, "Brownie", "Dessert", 21000, entity.MenuOutOfStock)

	c, err := e.menus.Counts()
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if c.Total != 2 || c.Available != 1 || c.OutOfStock != 1 {
		t.Fatalf("counts %+v", c)
	}
}
