package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sadmanCR7/aeropulse/internal/domain"
)

type AirportRepository interface {
	List(ctx context.Context) ([]domain.Airport, error)
	GetByCode(ctx context.Context, code string) (*domain.Airport, error)
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT code, name, location FROM airports ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.Code, &a.Name, &a.Location); err != nil {
			return nil, err
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

func (r *PGAirportRepository) GetByCode(ctx context.Context, code string) (*domain.Airport, error) {
	var a domain.Airport
	err := r.db.QueryRow(ctx, `SELECT code, name, location FROM airports WHERE code=$1`, code).
		Scan(&a.Code, &a.Name, &a.Location)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAirportNotFound
		}
		return nil, err
	}
	return &a, nil
}

var _ AirportRepository = (*PGAirportRepository)(nil)
