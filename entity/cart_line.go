package entity

// CartLine is one distinct orderable item in the cart. At most one line
// exists per ID; adding the same item again bumps Quantity instead.
type CartLine struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       int    `json:"price"`
	IsVeg       bool   `json:"isVeg"`
	Quantity    int    `json:"quantity"`
}

func (l CartLine) Total() int { return l.Price * l.Quantity }
