package services

import (
	"context"
	"time"

	"github.com/lucsky/cuid"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/entity"
)

// TimeSlots a table can be booked for: lunch and dinner service.
var TimeSlots = []string{
	"11:00 AM", "11:30 AM", "12:00 PM", "12:30 PM",
	"1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM",
	"6:00 PM", "6:30 PM", "7:00 PM", "7:30 PM",
	"8:00 PM", "8:30 PM", "9:00 PM", "9:30 PM",
}

// GuestOptions for the party-size selector.
var GuestOptions = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10+"}

// ReservationService validates and submits table bookings. Bookings are not
// persisted; confirmation is the whole flow, like the rest of the simulated
// submissions.
type ReservationService struct {
	Gateway OrderGateway
}

func NewReservationService(gw OrderGateway) *ReservationService {
	return &ReservationService{Gateway: gw}
}

type ReservationIn struct {
	Name            string `json:"name" binding:"required,min=2,max=100"`
	Email           string `json:"email" binding:"required,email,max=255"`
	Phone           string `json:"phone" binding:"required,min=10,max=15"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Guests          string `json:"guests" binding:"required"`
	SpecialRequests string `json:"specialRequests" binding:"omitempty,max=500"`
}

func (s *ReservationService) Reserve(ctx context.Context, in ReservationIn) (*entity.Reservation, error) {
	if !phonePattern.MatchString(in.Phone) {
		return nil, ErrInvalidPhone
	}
	if !contains(TimeSlots, in.Time) {
		return nil, ErrInvalidTimeSlot
	}
	if !contains(GuestOptions, in.Guests) {
		return nil, ErrInvalidGuests
	}
	day, err := time.ParseInLocation("2006-01-02", in.Date, time.Local)
	if err != nil {
		return nil, ErrPastDate
	}
	today := time.Now()
	startOfToday := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	if day.Before(startOfToday) {
		return nil, ErrPastDate
	}

	if err := s.Gateway.Submit(ctx, in); err != nil {
		return nil, err
	}

	return &entity.Reservation{
		ID:              "rsv_" + cuid.New(),
		Name:            in.Name,
		Email:           in.Email,
		Phone:           in.Phone,
		Date:            in.Date,
		Time:            in.Time,
		Guests:          in.Guests,
		SpecialRequests: in.SpecialRequests,
		CreatedAt:       time.Now().Format(time.RFC3339),
	}, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
