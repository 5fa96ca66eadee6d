package controllers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/pkg/resp"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/services"
)

type CheckoutController struct{ Svc *services.CheckoutService }

func NewCheckoutController(s *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Svc: s}
}

// POST /checkout
func (h *CheckoutController) Place(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			// client went away mid-delay; nothing to answer
			return
		case errors.Is(err, services.ErrCartEmpty), errors.Is(err, services.ErrInvalidPhone):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"order": order})
}
