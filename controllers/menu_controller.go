package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/entity"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/pkg/resp"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/services"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /menu?category=
func (h *MenuController) List(c *gin.Context) {
	category := entity.MenuCategory(c.Query("category"))
	resp.OK(c, gin.H{
		"items":      h.Svc.List(category),
		"categories": entity.MenuCategories,
	})
}

// GET /menu/:id
func (h *MenuController) Detail(c *gin.Context) {
	item, ok := h.Svc.Get(c.Param("id"))
	if !ok {
		resp.NotFound(c, "menu item not found")
		return
	}
	resp.OK(c, gin.H{"item": item})
}
