package services

import (
	"context"
	"testing"
	"time"
)

func validReservation() ReservationIn {
	return ReservationIn{
		Name:   "John Doe",
		Email:  "john@example.com",
		Phone:  "+91 98765 43210",
		Date:   time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		Time:   "7:00 PM",
		Guests: "4",
	}
}

func TestReserve(t *testing.T) {
	svc := NewReservationService(SimulatedGateway{})
	rsv, err := svc.Reserve(context.Background(), validReservation())
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if rsv.ID == "" || rsv.Time != "7:00 PM" {
		t.Errorf("unexpected reservation %+v", rsv)
	}
}

func TestReserveRejectsBadSlot(t *testing.T) {
	svc := NewReservationService(SimulatedGateway{})
	in := validReservation()
	in.Time = "3:00 AM"
	if _, err := svc.Reserve(context.Background(), in); err != ErrInvalidTimeSlot {
		t.Fatalf("expected ErrInvalidTimeSlot, got %v", err)
	}
}

func TestReserveRejectsBadGuests(t *testing.T) {
	svc := NewReservationService(SimulatedGateway{})
	in := validReservation()
	in.Guests = "42"
	if _, err := svc.Reserve(context.Background(), in); err != ErrInvalidGuests {
		t.Fatalf("expected ErrInvalidGuests, got %v", err)
	}
}

func TestReserveRejectsPastDate(t *testing.T) {
	svc := NewReservationService(SimulatedGateway{})
	in := validReservation()
	in.Date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	if _, err := svc.Reserve(context.Background(), in); err != ErrPastDate {
		t.Fatalf("expected ErrPastDate, got %v", err)
	}

	in.Date = "not-a-date"
	if _, err := svc.Reserve(context.Background(), in); err != ErrPastDate {
		t.Fatalf("expected ErrPastDate for unparseable date, got %v", err)
	}
}

func TestReserveTodayAllowed(t *testing.T) {
	svc := NewReservationService(SimulatedGateway{})
	in := validReservation()
	in.Date = time.Now().Format("2006-01-02")
	if _, err := svc.Reserve(context.Background(), in); err != nil {
		t.Fatalf("same-day reservation rejected: %v", err)
	}
}

func TestReserveRejectsBadPhone(t *testing.T) {
	svc := NewReservationService(SimulatedGateway{})
	in := validReservation()
	in.Phone = "phone#number!"
	if _, err := svc.Reserve(context.Background(), in); err != ErrInvalidPhone {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}
}
