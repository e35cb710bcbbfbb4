package reviews

import (
	"context"

	"github.com/sadmanCR7/aeropulse/internal/domain"
	"github.com/sadmanCR7/aeropulse/internal/repository"
)

type ReviewUseCase interface {
	AddReview(ctx context.Context, input AddReviewInput) (*domain.Review, error)
	ListByFlight(ctx context.Context, flightID int64) ([]domain.Review, error)
}

type AddReviewInput struct {
	UserID   int64  `json:"user_id"`
	FlightID int64  `json:"flight_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

type ReviewService struct {
	reviews  repository.ReviewRepository
	bookings repository.BookingRepository
	flights  repository.FlightRepository
}

func NewReviewService(reviews repository.ReviewRepository, bookings repository.BookingRepository, flights repository.FlightRepository) *ReviewService {
	return &ReviewService{reviews: reviews, bookings: bookings, flights: flights}
}

// AddReview records feedback for a flight the user has actually paid to fly:
// a CONFIRMED booking for the pair must exist. A user may review the same
// flight more than once.
func (s *ReviewService) AddReview(ctx context.Context, input AddReviewInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	if _, err := s.flights.GetByID(ctx, input.FlightID); err != nil {
		return nil, err
	}

	eligible, err := s.bookings.HasConfirmed(ctx, input.UserID, input.FlightID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, domain.ErrNotEligible
	}

	review := &domain.Review{
		UserID:   input.UserID,
		FlightID: input.FlightID,
		Rating:   input.Rating,
		Comment:  input.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListByFlight(ctx context.Context, flightID int64) ([]domain.Review, error) {
	return s.reviews.ListByFlight(ctx, flightID)
}

var _ ReviewUseCase = (*ReviewService)(nil)
