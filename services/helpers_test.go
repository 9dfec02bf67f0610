package services

import (
	"testing"
	"time"

	"github.com/adeanumainah/coffe-corner/entity"
	"github.com/adeanumainah/coffe-corner/repository"
	"github.com/adeanumainah/coffe-corner/storage"
)

type testEnv struct {
	store *storage.MemStore
	auth  *AuthService
	menus *MenuService
	carts *CartService
	order *OrderService
	prefs *PreferenceService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := storage.NewMemStore()
	userRepo := repository.NewUserRepository(store)
	sessRepo := repository.NewSessionRepository(store)
	menuRepo := repository.NewMenuRepository(store)
	cartRepo := repository.NewCartRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	prefRepo := repository.NewPreferenceRepository(store)

	order := NewOrderService(orderRepo, cartRepo, menuRepo, nil)
	// Deterministic clock and code for assertions.
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	order.now = func() time.Time { return base }
	order.code = func() string { return "ORD-123456" }

	return &testEnv{
		store: store,
		auth:  NewAuthService(userRepo, sessRepo, cartRepo, "admin", "admin123"),
		menus: NewMenuService(menuRepo, nil),
		carts: NewCartService(cartRepo, menuRepo),
		order: order,
		prefs: NewPreferenceService(prefRepo),
	}
}

func (e *testEnv) addMenu(t *testing.T, name, category string, price float64, status string) entity.Menu {
	t.Helper()
	m, err := e.menus.Create(MenuDraft{Name: name, Category: category, Price: price, Status: status})
	if err != nil {
		t.Fatalf("create menu %s: %v", name, err)
	}
	return *m
}

func (e *testEnv) fillCart(t *testing.T, username string, menuID, qty int) {
	t.Helper()
	for i := 0; i < qty; i++ {
		if _, err := e.carts.Add(username, menuID); err != nil {
			t.Fatalf("add menu %d to cart: %v", menuID, err)
		}
	}
}
