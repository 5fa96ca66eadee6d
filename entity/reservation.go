package entity

type Reservation struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          string `json:"guests"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	CreatedAt       string `json:"createdAt"`
}
