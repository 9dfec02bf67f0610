package controllers

import (
	"strconv"

	"github.com/adeanumainah/coffe-corner/entity"
	"github.com/adeanumainah/coffe-corner/pkg/resp"
	"github.com/adeanumainah/coffe-corner/services"
	"github.com/adeanumainah/coffe-corner/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	sum, err := h.Svc.Summary(utils.CurrentUsername(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, sum)
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var body struct {
		MenuID int `json:"menuId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	lines, err := h.Svc.Add(utils.CurrentUsername(c), body.MenuID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, lines)
}

// PATCH /cart/items/:id/increase and /decrease
func (h *CartController) IncreaseQty(c *gin.Context) { h.adjust(c, h.Svc.IncreaseQty) }
func (h *CartController) DecreaseQty(c *gin.Context) { h.adjust(c, h.Svc.DecreaseQty) }

func (h *CartController) adjust(c *gin.Context, op func(string, int) ([]entity.CartLine, error)) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}
	lines, err := op(utils.CurrentUsername(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, lines)
}

// DELETE /cart/items/:id
func (h *CartController) RemoveLine(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}
	lines, err := h.Svc.RemoveLine(utils.CurrentUsername(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, lines)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUsername(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
