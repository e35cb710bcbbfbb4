package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sadmanCR7/aeropulse/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByFlight(ctx context.Context, flightID int64) ([]domain.Review, error)
}

type PGReviewRepository struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) ReviewRepository {
	return &PGReviewRepository{db: db}
}

func (r *PGReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return r.db.QueryRow(ctx, `INSERT INTO reviews (user_id, flight_id, rating, comment) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		review.UserID, review.FlightID, review.Rating, review.Comment).
		Scan(&review.ID, &review.CreatedAt)
}

func (r *PGReviewRepository) ListByFlight(ctx context.Context, flightID int64) ([]domain.Review, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, flight_id, rating, comment, created_at FROM reviews WHERE flight_id=$1 ORDER BY created_at DESC`, flightID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.FlightID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

var _ ReviewRepository = (*PGReviewRepository)(nil)
