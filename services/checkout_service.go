package services

import (
	"context"
	"regexp"
	"time"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/entity"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/utils"
)

var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)

// CheckoutService turns the current cart into a confirmed order: submit
// through the gateway, award order points, clear the cart.
type CheckoutService struct {
	Cart    *CartService
	Loyalty *LoyaltyService
	Gateway OrderGateway
}

func NewCheckoutService(cart *CartService, loyalty *LoyaltyService, gw OrderGateway) *CheckoutService {
	return &CheckoutService{Cart: cart, Loyalty: loyalty, Gateway: gw}
}

type CheckoutIn struct {
	Name          string `json:"name" binding:"required,min=2,max=100"`
	Email         string `json:"email" binding:"required,email,max=255"`
	Phone         string `json:"phone" binding:"required,min=10,max=15"`
	Address       string `json:"address" binding:"required,min=10,max=500"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=cod upi card"`
	Notes         string `json:"notes" binding:"omitempty,max=500"`
}

// PlaceOrder validates, submits and settles the order. 10 points are earned
// per full ₹100 of the total; a zero earn records nothing.
func (s *CheckoutService) PlaceOrder(ctx context.Context, in CheckoutIn) (*entity.Order, error) {
	if !phonePattern.MatchString(in.Phone) {
		return nil, ErrInvalidPhone
	}

	items := s.Cart.Items()
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}
	total := s.Cart.TotalPrice()

	if err := s.Gateway.Submit(ctx, in); err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		Number:        utils.OrderNumber(now),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		Items:         items,
		Total:         total,
		EarnedPoints:  total / 100 * 10,
		PlacedAt:      now.Format(time.RFC3339),
	}

	if order.EarnedPoints > 0 {
		s.Loyalty.AddPoints(order.EarnedPoints, entity.TxOrder, "Order #"+order.Number)
	}
	s.Cart.Clear()
	return order, nil
}
