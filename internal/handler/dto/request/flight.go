package request

import (
	"time"

	"tripstack/internal/usecase/commands"
)

type CreateFlightRequest struct {
	Origin        string    `json:"origin" binding:"required"`
	Destination   string    `json:"destination" binding:"required"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time `json:"arrival_time" binding:"required"`
	PriceCents    int64     `json:"price_cents" binding:"required,min=0"`
	TotalSeats    int       `json:"total_seats" binding:"required,min=1"`
}

func (r CreateFlightRequest) ToParams() commands.CreateFlightParams {
	return commands.CreateFlightParams{
		Origin:      r.Origin,
		Destination: r.Destination,
		Departure:   r.DepartureTime,
		Arrival:     r.ArrivalTime,
		PriceCents:  r.PriceCents,
		TotalSeats:  r.TotalSeats,
	}
}

type CommitSeatsRequest struct {
	Seats int `json:"seats" binding:"required,min=1"`
}

// SearchFlightsQuery binds the /flights/search query string; the travel date
// arrives as a plain calendar day.
type SearchFlightsQuery struct {
	Origin      string `form:"origin" binding:"required"`
	Destination string `form:"destination" binding:"required"`
	Date        string `form:"date" binding:"required"`
	Passengers  int    `form:"passengers,default=1"`
}

func (q SearchFlightsQuery) ParseDate() (time.Time, error) {
	return time.Parse("2006-01-02", q.Date)
}
