package services

import (
	"context"
	"time"

	"github.com/lucsky/cuid"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/entity"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/repository"
)

// Storage key kept from the original site. Only user-submitted reviews are
// stored; the seed reviews are prepended at read time and never persisted.
const keyReviews = "rinku-hotel-reviews"

type ReviewService struct {
	store   repository.Store
	loyalty *LoyaltyService
	gateway OrderGateway
	seeds   []entity.Review
}

func NewReviewService(store repository.Store, loyalty *LoyaltyService, gw OrderGateway) *ReviewService {
	return &ReviewService{store: store, loyalty: loyalty, gateway: gw, seeds: seedReviews()}
}

func seedReviews() []entity.Review {
	now := time.Now()
	daysAgo := func(d int) string { return now.AddDate(0, 0, -d).Format(time.RFC3339) }
	return []entity.Review{
		{
			ID:     "1",
			Name:   "Priya Sharma",
			Rating: 5,
			Comment: "Absolutely love the butter chicken here! The flavors are authentic and remind me of " +
				"my grandmother's cooking. The staff is incredibly friendly and the ambiance is perfect for family dinners.",
			CreatedAt: daysAgo(2),
		},
		{
			ID:     "2",
			Name:   "Rahul Patel",
			Rating: 4,
			Comment: "Great biryani with perfect spices. The portion sizes are generous and the prices " +
				"are reasonable. Will definitely come back for more!",
			CreatedAt: daysAgo(5),
		},
		{
			ID:     "3",
			Name:   "Anita Desai",
			Rating: 5,
			Comment: "The best Indian restaurant in town! Tried the paneer tikka and dal makhani - both " +
				"were exceptional. The gulab jamun for dessert was the perfect ending to a wonderful meal.",
			CreatedAt: daysAgo(7),
		},
	}
}

type SubmitReviewIn struct {
	Name    string `json:"name" binding:"required,min=2,max=50"`
	Comment string `json:"comment" binding:"required,min=10,max=500"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// ReviewAggregate summarizes the visible reviews.
type ReviewAggregate struct {
	AvgRating float64 `json:"avgRating"`
	Total     int     `json:"total"`
}

func (s *ReviewService) stored() []entity.Review {
	var reviews []entity.Review
	s.store.Get(keyReviews, &reviews)
	return reviews
}

// List returns user reviews (newest first) followed by the seeds, with the
// average rating over everything shown.
func (s *ReviewService) List() ([]entity.Review, ReviewAggregate) {
	reviews := append(s.stored(), s.seeds...)
	agg := ReviewAggregate{Total: len(reviews)}
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		agg.AvgRating = float64(sum) / float64(len(reviews))
	}
	return reviews, agg
}

// Submit validates and stores a review, then awards the review bonus.
func (s *ReviewService) Submit(ctx context.Context, in SubmitReviewIn) (*entity.Review, error) {
	if err := s.gateway.Submit(ctx, in); err != nil {
		return nil, err
	}

	review := entity.Review{
		ID:        cuid.New(),
		Name:      in.Name,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	updated := append([]entity.Review{review}, s.stored()...)
	if err := s.store.Put(keyReviews, updated); err != nil {
		return nil, err
	}

	s.loyalty.AddPoints(ReviewBonus, entity.TxReview, "Review submitted")
	return &review, nil
}
