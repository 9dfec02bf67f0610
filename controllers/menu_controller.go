package controllers

import (
	"strconv"

	"github.com/adeanumainah/coffe-corner/pkg/resp"
	"github.com/adeanumainah/coffe-corner/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Svc: s}
}

func menuID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return 0, false
	}
	return id, true
}

// GET /menus?category=&search=&sort=&page=
func (h *MenuController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	out, err := h.Svc.List(services.ListQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
		Page:     page,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /menus/categories
func (h *MenuController) Categories(c *gin.Context) {
	cats, err := h.Svc.Categories()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /menus/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, ok := menuID(c)
	if !ok {
		return
	}
	menu, err := h.Svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, menu)
}

// POST /admin/menus
func (h *MenuController) Create(c *gin.Context) {
	var draft services.MenuDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := h.Svc.Create(draft)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, menu)
}

// PUT /admin/menus/:id
func (h *MenuController) Update(c *gin.Context) {
	id, ok := menuID(c)
	if !ok {
		return
	}
	var draft services.MenuDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := h.Svc.Update(id, draft)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, menu)
}

// PATCH /admin/menus/:id/status
func (h *MenuController) SetStatus(c *gin.Context) {
	id, ok := menuID(c)
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := h.Svc.SetStatus(id, body.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, menu)
}

// DELETE /admin/menus/:id
func (h *MenuController) Delete(c *gin.Context) {
	id, ok := menuID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
