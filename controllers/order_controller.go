package controllers

import (
	"github.com/adeanumainah/coffe-corner/pkg/resp"
	"github.com/adeanumainah/coffe-corner/services"
	"github.com/adeanumainah/coffe-corner/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders — checkout the caller's cart.
func (h *OrderController) Create(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.Place(utils.CurrentUsername(c), utils.CurrentPhone(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders — the caller's own orders, newest first.
func (h *OrderController) ListForMe(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUsername(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /profile/stats
func (h *OrderController) MyStats(c *gin.Context) {
	stats, err := h.Svc.StatsForUser(utils.CurrentUsername(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, stats)
}
