package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/entity"
)

// CartService owns the session cart: one line per item id, quantities, and
// derived totals. The cart is deliberately not persisted; only the loyalty
// ledger is durable.
type CartService struct {
	mu    sync.Mutex
	lines []*entity.CartLine
	open  bool
}

func NewCartService() *CartService { return &CartService{} }

type AddItemIn struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       int    `json:"price" binding:"required,gt=0"`
	IsVeg       bool   `json:"isVeg"`
}

// lineKey derives a stable id from name+price so visually identical items
// from different pages collapse to one line.
func lineKey(name string, price int) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	return fmt.Sprintf("%s-%d", slug, price)
}

// AddItem upserts a line: existing id bumps quantity by one, otherwise a new
// line starts at quantity 1.
func (s *CartService) AddItem(in AddItemIn) entity.CartLine {
	id := in.ID
	if id == "" {
		id = lineKey(in.Name, in.Price)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.lines {
		if l.ID == id {
			l.Quantity++
			return *l
		}
	}
	line := &entity.CartLine{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		Price:       in.Price,
		IsVeg:       in.IsVeg,
		Quantity:    1,
	}
	s.lines = append(s.lines, line)
	return *line
}

// RemoveItem deletes the line if present, no-op otherwise.
func (s *CartService) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

func (s *CartService) removeLocked(id string) {
	for i, l := range s.lines {
		if l.ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line's quantity; qty <= 0 removes the line.
func (s *CartService) SetQuantity(id string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if qty <= 0 {
		s.removeLocked(id)
		return
	}
	for _, l := range s.lines {
		if l.ID == id {
			l.Quantity = qty
			return
		}
	}
}

// Clear empties the cart, invoked after a successful checkout.
func (s *CartService) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()
}

// Items returns a snapshot copy of all lines in insertion order.
func (s *CartService) Items() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.CartLine, 0, len(s.lines))
	for _, l := range s.lines {
		out = append(out, *l)
	}
	return out
}

// TotalItems is the sum of quantities over all lines.
func (s *CartService) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// TotalPrice is the sum of price*quantity over all lines.
func (s *CartService) TotalPrice() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, l := range s.lines {
		total += l.Price * l.Quantity
	}
	return total
}

// IsOpen reports the cart-panel view flag; plain state, no rules.
func (s *CartService) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *CartService) SetOpen(open bool) {
	s.mu.Lock()
	s.open = open
	s.mu.Unlock()
}
