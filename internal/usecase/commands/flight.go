package commands

import (
	"context"
	"time"

	"tripstack/internal/domain/flight"
	"tripstack/internal/infra"
	"tripstack/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrFlightNotFound        = errs.New("flight not found")
	ErrInvalidFlightSchedule = errs.New("invalid flight schedule")
	ErrInvalidSeatCount      = errs.New("seat count must be at least 1")
	ErrNotEnoughSeats        = errs.New("not enough free seats")
)

type CreateFlightParams struct {
	Origin      string
	Destination string
	Departure   time.Time
	Arrival     time.Time
	PriceCents  int64
	TotalSeats  int
}

type FlightCommands interface {
	Create(ctx context.Context, params CreateFlightParams) (*flight.Leg, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CommitSeats(ctx context.Context, flightID uuid.UUID, seats int) error
}

type flightCommandsImpl struct {
	flights FlightRepository
}

func NewFlightCommands(flights FlightRepository) FlightCommands {
	return &flightCommandsImpl{flights: flights}
}

func (c *flightCommandsImpl) Create(ctx context.Context, params CreateFlightParams) (*flight.Leg, error) {
	leg, err := flight.NewLeg(
		params.Origin,
		params.Destination,
		params.Departure,
		params.Arrival,
		params.PriceCents,
		params.TotalSeats,
		0,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidFlightSchedule)
	}

	if err := c.flights.Create(ctx, leg); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &leg, nil
}

func (c *flightCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.flights.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrFlightNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *flightCommandsImpl) CommitSeats(ctx context.Context, flightID uuid.UUID, seats int) error {
	if seats < 1 {
		return ErrInvalidSeatCount
	}

	if err := c.flights.CommitSeats(ctx, flightID, seats); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrFlightNotFound
		case infra.IsKind(err, infra.KindConflict):
			return ErrNotEnoughSeats
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}
