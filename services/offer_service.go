package services

import (
	"time"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/entity"
)

// OfferService serves the seeded offer catalog and the end-of-day countdown
// for today's deals.
type OfferService struct {
	offers []entity.Offer
}

func NewOfferService(offers []entity.Offer) *OfferService {
	return &OfferService{offers: offers}
}

// Grouped splits offers by kind for the offers page sections.
type Grouped struct {
	Daily    []entity.Offer `json:"daily"`
	Combos   []entity.Offer `json:"combos"`
	Seasonal []entity.Offer `json:"seasonal"`
}

func (s *OfferService) List() Grouped {
	var g Grouped
	for _, o := range s.offers {
		switch o.Kind {
		case entity.OfferDaily:
			g.Daily = append(g.Daily, o)
		case entity.OfferCombo:
			g.Combos = append(g.Combos, o)
		case entity.OfferSeasonal:
			g.Seasonal = append(g.Seasonal, o)
		}
	}
	return g
}

// Countdown returns the time remaining until today's offers expire at
// midnight local time.
func (s *OfferService) Countdown(now time.Time) entity.Countdown {
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	remaining := endOfDay.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	secs := int(remaining.Seconds())
	return entity.Countdown{
		Days:    secs / 86400,
		Hours:   secs / 3600 % 24,
		Minutes: secs / 60 % 60,
		Seconds: secs % 60,
		EndsAt:  endOfDay.Format(time.RFC3339),
	}
}
