package main

import (
	"fmt"
	"log"

	"github.com/adeanumainah/coffe-corner/configs"
	"github.com/adeanumainah/coffe-corner/middlewares"
	"github.com/adeanumainah/coffe-corner/pkg/logger"
	"github.com/adeanumainah/coffe-corner/repository"
	"github.com/adeanumainah/coffe-corner/routes"
	"github.com/adeanumainah/coffe-corner/services"
	"github.com/adeanumainah/coffe-corner/storage"
	"github.com/adeanumainah/coffe-corner/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	logg := logger.New("coffe-corner", cfg.LogLevel)

	// Storage
	store, err := storage.OpenDB(cfg.DBSource)
	if err != nil {
		log.Fatalf("open store failed: %v", err)
	}

	// Repositories
	users := repository.NewUserRepository(store)
	sessions := repository.NewSessionRepository(store)
	menus := repository.NewMenuRepository(store)
	carts := repository.NewCartRepository(store)
	orders := repository.NewOrderRepository(store)
	prefs := repository.NewPreferenceRepository(store)

	if err := configs.SeedMenus(menus); err != nil {
		log.Fatalf("seed menus failed: %v", err)
	}

	// Live event feed
	hub := ws.NewEventHub()
	go hub.Run()

	// Services
	deps := routes.Deps{
		Sessions:    sessions,
		Auth:        services.NewAuthService(users, sessions, carts, cfg.AdminUsername, cfg.AdminPassword),
		Menus:       services.NewMenuService(menus, hub),
		Carts:       services.NewCartService(carts, menus),
		Orders:      services.NewOrderService(orders, carts, menus, hub),
		Preferences: services.NewPreferenceService(prefs),
		Events:      hub,
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RequestLogger(logg))

	routes.RegisterRoutes(r, deps)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logg.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
