package flight

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidSchedule = errors.New("arrival must be after departure")
	ErrInvalidSeats    = errors.New("booked seats cannot exceed total seats")
)

// Leg is one scheduled flight between two locations. It is a read model for
// the search engine; mutation happens through FlightCommands.
type Leg struct {
	ID          uuid.UUID
	Origin      string
	Destination string
	Departure   time.Time
	Arrival     time.Time
	PriceCents  int64
	TotalSeats  int
	BookedSeats int
}

func NewLeg(origin, destination string, departure, arrival time.Time, priceCents int64, totalSeats, bookedSeats int) (Leg, error) {
	if !arrival.After(departure) {
		return Leg{}, ErrInvalidSchedule
	}
	if bookedSeats > totalSeats {
		return Leg{}, ErrInvalidSeats
	}
	return Leg{
		ID:          uuid.New(),
		Origin:      origin,
		Destination: destination,
		Departure:   departure,
		Arrival:     arrival,
		PriceCents:  priceCents,
		TotalSeats:  totalSeats,
		BookedSeats: bookedSeats,
	}, nil
}

func (l Leg) AvailableSeats() int {
	return l.TotalSeats - l.BookedSeats
}

func (l Leg) Duration() time.Duration {
	return l.Arrival.Sub(l.Departure)
}
