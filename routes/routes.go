package routes

import (
	"github.com/adeanumainah/coffe-corner/controllers"
	"github.com/adeanumainah/coffe-corner/entity"
	"github.com/adeanumainah/coffe-corner/middlewares"
	"github.com/adeanumainah/coffe-corner/repository"
	"github.com/adeanumainah/coffe-corner/services"
	"github.com/adeanumainah/coffe-corner/ws"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Sessions *repository.SessionRepository

	Auth        *services.AuthService
	Menus       *services.MenuService
	Carts       *services.CartService
	Orders      *services.OrderService
	Preferences *services.PreferenceService

	Events *ws.EventHub
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	r.Use(middlewares.WithSession(d.Sessions))

	authCtrl := controllers.NewAuthController(d.Auth)
	menuCtrl := controllers.NewMenuController(d.Menus)
	cartCtrl := controllers.NewCartController(d.Carts)
	orderCtrl := controllers.NewOrderController(d.Orders)
	adminCtrl := controllers.NewAdminController(d.Orders, d.Menus)
	prefCtrl := controllers.NewPreferenceController(d.Preferences)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", authCtrl.Logout)
		a.GET("/me", authCtrl.Me)
	}
	a.PATCH("/me", middlewares.AuthMiddleware(), authCtrl.UpdateMe)

	// Catalog (public, read-only projections)
	r.GET("/menus", menuCtrl.List)
	r.GET("/menus/categories", menuCtrl.Categories)
	r.GET("/menus/:id", menuCtrl.Detail)

	// Cart works for guests too; the guest cart is abandoned on login.
	cart := r.Group("/cart")
	{
		cart.GET("", cartCtrl.Get)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:id/increase", cartCtrl.IncreaseQty)
		cart.PATCH("/items/:id/decrease", cartCtrl.DecreaseQty)
		cart.DELETE("/items/:id", cartCtrl.RemoveLine)
	}

	// Preferences
	pref := r.Group("/preferences")
	{
		pref.GET("/theme", prefCtrl.Theme)
		pref.PUT("/theme", prefCtrl.SetTheme)
		pref.GET("/likes", prefCtrl.Liked)
		pref.POST("/likes/:id", prefCtrl.ToggleLike)
	}

	// Orders (user)
	u := r.Group("/", middlewares.AuthMiddleware())
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/profile/stats", orderCtrl.MyStats)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/orders", adminCtrl.ListOrders)
		admin.PATCH("/orders/:id/status", adminCtrl.UpdateOrderStatus)

		admin.POST("/menus", menuCtrl.Create)
		admin.PUT("/menus/:id", menuCtrl.Update)
		admin.PATCH("/menus/:id/status", menuCtrl.SetStatus)
		admin.DELETE("/menus/:id", menuCtrl.Delete)
	}

	// Live order feed for the admin queue.
	r.GET("/ws/orders", middlewares.AuthMiddleware(entity.RoleAdmin), d.Events.HandleWebSocket)
}
