package entity

type OfferKind string

const (
	OfferDaily    OfferKind = "daily"
	OfferCombo    OfferKind = "combo"
	OfferSeasonal OfferKind = "seasonal"
)

type Offer struct {
	Title         string    `json:"title" yaml:"title"`
	Description   string    `json:"description" yaml:"description"`
	OriginalPrice int       `json:"originalPrice" yaml:"originalPrice"`
	OfferPrice    int       `json:"offerPrice" yaml:"offerPrice"`
	Discount      string    `json:"discount" yaml:"discount"`
	Badge         string    `json:"badge" yaml:"badge"`
	Kind          OfferKind `json:"kind" yaml:"kind"`
	Image         string    `json:"image" yaml:"image"`
}

// Countdown is the remaining time until today's offers expire.
type Countdown struct {
	Days    int    `json:"days"`
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Seconds int    `json:"seconds"`
	EndsAt  string `json:"endsAt"`
}
