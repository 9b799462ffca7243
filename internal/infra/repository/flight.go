package repository

import (
	"context"
	"errors"
	"time"

	"tripstack/internal/domain/flight"
	"tripstack/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository struct {
	pool *pgxpool.Pool
}

func NewFlightRepository(pool *pgxpool.Pool) *FlightRepository {
	return &FlightRepository{pool: pool}
}

func (r *FlightRepository) Create(ctx context.Context, leg flight.Leg) error {
	query := `
		INSERT INTO flights (id, origin, destination, departure_time, arrival_time,
		                     price_cents, total_seats, booked_seats, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
	`

	_, err := r.pool.Exec(ctx, query,
		leg.ID, leg.Origin, leg.Destination, leg.Departure, leg.Arrival,
		leg.PriceCents, leg.TotalSeats, leg.BookedSeats,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create flight", err)
	}
	return nil
}

func (r *FlightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete flight", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("flight not found", nil, infra.KindNotFound)
	}
	return nil
}

// CommitSeats reserves seats with a single conditional UPDATE: the seat
// arithmetic and the free-seat guard run in one statement, so concurrent
// purchases on the same flight serialize on the row without an explicit lock.
func (r *FlightRepository) CommitSeats(ctx context.Context, flightID uuid.UUID, seats int) error {
	query := `
		UPDATE flights
		SET booked_seats = booked_seats + $2, updated_at = now()
		WHERE id = $1 AND total_seats - booked_seats >= $2
	`

	tag, err := r.pool.Exec(ctx, query, flightID, seats)
	if err != nil {
		return infra.WrapRepoErr("failed to commit seats", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Zero rows: either the flight is gone or the seats are.
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM flights WHERE id = $1)`, flightID).Scan(&exists); err != nil {
		return infra.WrapRepoErr("failed to check flight existence", err)
	}
	if !exists {
		return infra.WrapRepoErr("flight not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("not enough free seats", nil, infra.KindConflict)
}

func (r *FlightRepository) FindByDepartureWindow(ctx context.Context, from, to time.Time, minSeats int) ([]flight.Leg, error) {
	query := `
		SELECT id, origin, destination, departure_time, arrival_time,
		       price_cents, total_seats, booked_seats
		FROM flights
		WHERE departure_time >= $1
		  AND departure_time < $2
		  AND total_seats - booked_seats >= $3
		ORDER BY departure_time ASC
	`

	rows, err := r.pool.Query(ctx, query, from, to, minSeats)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query candidate flights", err)
	}
	defer rows.Close()

	var legs []flight.Leg
	for rows.Next() {
		var l flight.Leg
		err := rows.Scan(
			&l.ID, &l.Origin, &l.Destination, &l.Departure, &l.Arrival,
			&l.PriceCents, &l.TotalSeats, &l.BookedSeats,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan flight", err)
		}
		legs = append(legs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate flights", err)
	}

	return legs, nil
}

func (r *FlightRepository) FindByID(ctx context.Context, id uuid.UUID) (*flight.Leg, error) {
	query := `
		SELECT id, origin, destination, departure_time, arrival_time,
		       price_cents, total_seats, booked_seats
		FROM flights
		WHERE id = $1
	`

	var l flight.Leg
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.Origin, &l.Destination, &l.Departure, &l.Arrival,
		&l.PriceCents, &l.TotalSeats, &l.BookedSeats,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("flight not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find flight", err)
	}
	return &l, nil
}
