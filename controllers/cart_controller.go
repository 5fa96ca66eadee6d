package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/pkg/resp"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/services"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	resp.OK(c, gin.H{
		"items":      h.Svc.Items(),
		"totalItems": h.Svc.TotalItems(),
		"totalPrice": h.Svc.TotalPrice(),
		"isOpen":     h.Svc.IsOpen(),
	})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	line := h.Svc.AddItem(req)
	resp.Created(c, gin.H{"line": line, "totalItems": h.Svc.TotalItems(), "totalPrice": h.Svc.TotalPrice()})
}

// PATCH /cart/items/:id
func (h *CartController) UpdateQty(c *gin.Context) {
	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.Svc.SetQuantity(c.Param("id"), *body.Quantity)
	resp.OK(c, gin.H{"totalItems": h.Svc.TotalItems(), "totalPrice": h.Svc.TotalPrice()})
}

// DELETE /cart/items/:id
func (h *CartController) Remove(c *gin.Context) {
	h.Svc.RemoveItem(c.Param("id"))
	resp.OK(c, gin.H{"totalItems": h.Svc.TotalItems(), "totalPrice": h.Svc.TotalPrice()})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	h.Svc.Clear()
	resp.OK(c, gin.H{"totalItems": 0, "totalPrice": 0})
}

// POST /cart/open
func (h *CartController) SetOpen(c *gin.Context) {
	var body struct {
		Open *bool `json:"open" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.Svc.SetOpen(*body.Open)
	resp.OK(c, gin.H{"isOpen": h.Svc.IsOpen()})
}
