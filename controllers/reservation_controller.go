package controllers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/pkg/resp"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/services"
)

type ReservationController struct{ Svc *services.ReservationService }

func NewReservationController(s *services.ReservationService) *ReservationController {
	return &ReservationController{Svc: s}
}

// GET /reservations/slots
func (h *ReservationController) Slots(c *gin.Context) {
	resp.OK(c, gin.H{"timeSlots": services.TimeSlots, "guestOptions": services.GuestOptions})
}

// POST /reservations
func (h *ReservationController) Create(c *gin.Context) {
	var req services.ReservationIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rsv, err := h.Svc.Reserve(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			return
		case errors.Is(err, services.ErrInvalidPhone),
			errors.Is(err, services.ErrInvalidTimeSlot),
			errors.Is(err, services.ErrInvalidGuests),
			errors.Is(err, services.ErrPastDate):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"reservation": rsv})
}
