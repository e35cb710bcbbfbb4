package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sadmanCR7/aeropulse/internal/domain"
)

// DestinationPrice is one row of the price-map aggregation: the cheapest
// economy fare from the queried origin to a destination airport.
type DestinationPrice struct {
	AirportCode   string
	Location      string
	MinPriceCents int64
}

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Search(ctx context.Context, origin, destination string, class domain.FareClass, passengers int) ([]domain.Flight, error)
	MinEconomyByDestination(ctx context.Context, origin string) ([]DestinationPrice, error)
	CheapestPerDestination(ctx context.Context, origin string, budgetCents int64, class domain.FareClass) ([]domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, airline_code, departure_airport, destination_airport, departure_time, arrival_time, economy_price_cents, economy_seats, business_price_cents, business_seats, created_at, updated_at`

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	err := row.Scan(&f.ID, &f.AirlineCode, &f.DepartureAirport, &f.DestinationAirport, &f.DepartureTime, &f.ArrivalTime,
		&f.EconomyPriceCents, &f.EconomySeats, &f.BusinessPriceCents, &f.BusinessSeats, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func collectFlights(rows pgx.Rows) ([]domain.Flight, error) {
	defer rows.Close()
	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY departure_time`)
	if err != nil {
		return nil, err
	}
	return collectFlights(rows)
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	f, err := scanFlight(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFlightNotFound
		}
		return nil, err
	}
	return f, nil
}

// Search returns flights on the requested route with enough unsold seats in
// the requested class. Destination is optional.
func (r *PGFlightRepository) Search(ctx context.Context, origin, destination string, class domain.FareClass, passengers int) ([]domain.Flight, error) {
	query := fmt.Sprintf(`SELECT `+flightColumns+` FROM flights WHERE departure_airport=$1 AND %s >= $2`, seatColumn(class))
	args := []interface{}{origin, passengers}
	if destination != "" {
		query += ` AND destination_airport=$3`
		args = append(args, destination)
	}
	query += ` ORDER BY departure_time`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectFlights(rows)
}

// MinEconomyByDestination computes the minimum economy fare per destination
// airport for flights leaving the given origin.
func (r *PGFlightRepository) MinEconomyByDestination(ctx context.Context, origin string) ([]DestinationPrice, error) {
	rows, err := r.db.Query(ctx, `
		SELECT f.destination_airport, a.location, MIN(f.economy_price_cents)
		FROM flights f
		JOIN airports a ON a.code = f.destination_airport
		WHERE f.departure_airport = $1
		GROUP BY f.destination_airport, a.location`, origin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make([]DestinationPrice, 0)
	for rows.Next() {
		var p DestinationPrice
		if err := rows.Scan(&p.AirportCode, &p.Location, &p.MinPriceCents); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}

// CheapestPerDestination returns, for each destination reachable from origin
// at or under the budget in the given class, the single cheapest flight.
func (r *PGFlightRepository) CheapestPerDestination(ctx context.Context, origin string, budgetCents int64, class domain.FareClass) ([]domain.Flight, error) {
	price := priceColumn(class)
	query := fmt.Sprintf(`
		SELECT DISTINCT ON (destination_airport) `+flightColumns+`
		FROM flights
		WHERE departure_airport = $1 AND %[1]s <= $2
		ORDER BY destination_airport, %[1]s`, price)

	rows, err := r.db.Query(ctx, query, origin, budgetCents)
	if err != nil {
		return nil, err
	}
	return collectFlights(rows)
}

// seatColumn and priceColumn map a validated fare class to its inventory
// columns. Callers must validate the class first; anything not BUSINESS
// falls back to economy, mirroring the search defaults.
func seatColumn(class domain.FareClass) string {
	if class == domain.FareClassBusiness {
		return "business_seats"
	}
	return "economy_seats"
}

func priceColumn(class domain.FareClass) string {
	if class == domain.FareClassBusiness {
		return "business_price_cents"
	}
	return "economy_price_cents"
}

var _ FlightRepository = (*PGFlightRepository)(nil)
