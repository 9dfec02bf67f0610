package services

import (
	"errors"
	"testing"

	"github.com/adeanumainah/coffe-corner/entity"
)

func TestAddMergesLines(t *testing.T) {
	e := newTestEnv(t)
	m := e.addMenu(t, "Latte", "Coffee", 27000, "")

	lines, err := e.carts.Add("budi", m.ID)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(lines) != 1 || lines[0].Qty != 1 {
		t.Fatalf("first add: %+v", lines)
	}

	lines, err = e.carts.Add("budi", m.ID)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if len(lines) != 1 || lines[0].Qty != 2 {
		t.Fatalf("add did not merge: %+v", lines)
	}
	if lines[0].Name != "Latte" || lines[0].Price != 27000 {
		t.Fatalf("menu fields not copied: %+v", lines[0])
	}
}

func TestAddOutOfStockOrUnknown(t *testing.T) {
	e := newTestEnv(t)
	m := e.addMenu(t, "Brownie", "Dessert", 21000, entity.MenuOutOfStock)

	if _, err := e.carts.Add("budi", m.ID); !errors.Is(err, ErrIneligible) {
		t.Fatalf("add out-of-stock: got %v", err)
	}
	if _, err := e.carts.Add("budi", 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("add unknown id: got %v", err)
	}
}

func TestQtyInvariants(t *testing.T) {
	e := newTestEnv(t)
	a := e.addMenu(t, "Mocha", "Coffee", 30000, "")
	b := e.addMenu(t, "Scone", "Pastry", 18000, "")

	e.fillCart(t, "budi", a.ID, 2)
	e.fillCart(t, "budi", b.ID, 1)

	check := func(wantCount int) {
		t.Helper()
		sum, err := e.carts.Summary("budi")
		if err != nil {
			t.Fatalf("summary: %v", err)
		}
		total := 0
		for _, l := range sum.Lines {
			if l.Qty <= 0 {
				t.Fatalf("line with qty <= 0 persisted: %+v", l)
			}
			total += l.Qty
		}
		if total != sum.ItemCount || total != wantCount {
			t.Fatalf("item count = %d (lines sum %d), want %d", sum.ItemCount, total, wantCount)
		}
	}

	check(3)
	if _, err := e.carts.IncreaseQty("budi", a.ID); err != nil {
		t.Fatalf("increase: %v", err)
	}
	check(4)
	if _, err := e.carts.DecreaseQty("budi", b.ID); err != nil {
		t.Fatalf("decrease: %v", err)
	}
	check(3) // b dropped at zero

	lines, _ := e.carts.Lines("budi")
	for _, l := range lines {
		if l.ID == b.ID {
			t.Fatalf("line b survived decrement to zero")
		}
	}

	if _, err := e.carts.IncreaseQty("budi", b.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("adjust missing line: got %v", err)
	}
}

func TestRemoveLine(t *testing.T) {
	e := newTestEnv(t)
	m := e.addMenu(t, "Latte", "Coffee", 27000, "")
	e.fillCart(t, "budi", m.ID, 3)

	lines, err := e.carts.RemoveLine("budi", m.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("line survived remove: %+v", lines)
	}
	if _, err := e.carts.RemoveLine("budi", m.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("remove absent line: got %v", err)
	}
}

func TestSummaryRecomputed(t *testing.T) {
	e := newTestEnv(t)
	m := e.addMenu(t, "Latte", "Coffee", 20000, "")
	e.fillCart(t, "budi", m.ID, 2)

	sum, _ := e.carts.Summary("budi")
	if sum.Subtotal != 40000 || sum.Tax != 2000 || sum.Total != 42000 {
		t.Fatalf("summary %+v", sum)
	}

	// Every read reflects the current line set; nothing is cached.
	if _, err := e.carts.IncreaseQty("budi", m.ID); err != nil {
		t.Fatalf("increase: %v", err)
	}
	sum, _ = e.carts.Summary("budi")
	if sum.Subtotal != 60000 || sum.Tax != 3000 || sum.Total != 63000 {
		t.Fatalf("summary after mutation %+v", sum)
	}

	if err := e.carts.Clear("budi"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	sum, _ = e.carts.Summary("budi")
	if sum.ItemCount != 0 || sum.Subtotal != 0 || sum.Total != 0 {
		t.Fatalf("summary after clear %+v", sum)
	}
}

func TestCartsArePerUser(t *testing.T) {
	e := newTestEnv(t)
	m := e.addMenu(t, "Latte", "Coffee", 27000, "")

	e.fillCart(t, "budi", m.ID, 1)
	e.fillCart(t, "", m.ID, 2) // guest

	budi, _ := e.carts.Lines("budi")
	guest, _ := e.carts.Lines("")
	if len(budi) != 1 || budi[0].Qty != 1 {
		t.Fatalf("budi cart %+v", budi)
	}
	if len(guest) != 1 || guest[0].Qty != 2 {
		t.Fatalf("guest cart %+v", guest)
	}

	// No merge between carts, ever.
	if err := e.carts.Clear("budi"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	guest, _ = e.carts.Lines("")
	if len(guest) != 1 {
		t.Fatalf("guest cart affected by other user's clear")
	}
}
