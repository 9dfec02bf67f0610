package controllers

import (
	"strconv"

	"github.com/adeanumainah/coffe-corner/pkg/resp"
	"github.com/adeanumainah/coffe-corner/services"

	"github.com/gin-gonic/gin"
)

type PreferenceController struct{ Svc *services.PreferenceService }

func NewPreferenceController(s *services.PreferenceService) *PreferenceController {
	return &PreferenceController{Svc: s}
}

// GET /preferences/theme
func (h *PreferenceController) Theme(c *gin.Context) {
	theme, err := h.Svc.Theme()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"theme": theme})
}

// PUT /preferences/theme
func (h *PreferenceController) SetTheme(c *gin.Context) {
	var body struct {
		Theme string `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetTheme(body.Theme); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"theme": body.Theme})
}

// GET /preferences/likes
func (h *PreferenceController) Liked(c *gin.Context) {
	liked, err := h.Svc.Liked()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, liked)
}

// POST /preferences/likes/:id
func (h *PreferenceController) ToggleLike(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}
	liked, err := h.Svc.ToggleLike(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "liked": liked})
}
