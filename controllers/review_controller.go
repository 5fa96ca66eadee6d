package controllers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/pkg/resp"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/services"
)

type ReviewController struct{ Svc *services.ReviewService }

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{Svc: s}
}

// GET /reviews
func (h *ReviewController) List(c *gin.Context) {
	reviews, agg := h.Svc.List()
	resp.OK(c, gin.H{"items": reviews, "aggregate": agg})
}

// POST /reviews
func (h *ReviewController) Create(c *gin.Context) {
	var req services.SubmitReviewIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	review, err := h.Svc.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"review": review})
}
