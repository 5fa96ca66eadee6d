package entity

// Order is the confirmation snapshot returned after checkout. Nothing is
// persisted server-side; the order exists only in the success response.
type Order struct {
	Number        string     `json:"number"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	PaymentMethod string     `json:"paymentMethod"`
	Notes         string     `json:"notes,omitempty"`
	Items         []CartLine `json:"items"`
	Total         int        `json:"total"`
	EarnedPoints  int        `json:"earnedPoints"`
	PlacedAt      string     `json:"placedAt"`
}
