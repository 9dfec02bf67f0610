package controllers

import (
	"strconv"

	"github.com/adeanumainah/coffe-corner/pkg/resp"
	"github.com/adeanumainah/coffe-corner/services"

	"github.com/gin-gonic/gin"
)

// AdminController groups the order-queue and dashboard endpoints behind
// the admin role guard.
type AdminController struct {
	Orders *services.OrderService
	Menus  *services.MenuService
}

func NewAdminController(orders *services.OrderService, menus *services.MenuService) *AdminController {
	return &AdminController{Orders: orders, Menus: menus}
}

// GET /admin/orders?status=
func (h *AdminController) ListOrders(c *gin.Context) {
	orders, err := h.Orders.List(c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// PATCH /admin/orders/:id/status
func (h *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Orders.UpdateStatus(id, body.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /admin/dashboard
func (h *AdminController) Dashboard(c *gin.Context) {
	counts, err := h.Orders.StatusCounts()
	if err != nil {
		fail(c, err)
		return
	}
	revenue, err := h.Orders.Revenue()
	if err != nil {
		fail(c, err)
		return
	}
	catalog, err := h.Menus.Counts()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{
		"orderCounts": counts,
		"revenue":     revenue,
		"catalog":     catalog,
	})
}
