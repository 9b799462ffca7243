package response

import (
	"time"

	"tripstack/internal/domain/flight"

	"github.com/google/uuid"
)

type FlightResponse struct {
	ID             uuid.UUID `json:"id"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureTime  time.Time `json:"departure_time"`
	ArrivalTime    time.Time `json:"arrival_time"`
	PriceCents     int64     `json:"price_cents"`
	TotalSeats     int       `json:"total_seats"`
	AvailableSeats int       `json:"available_seats"`
}

func FromLeg(l flight.Leg) FlightResponse {
	return FlightResponse{
		ID:             l.ID,
		Origin:         l.Origin,
		Destination:    l.Destination,
		DepartureTime:  l.Departure,
		ArrivalTime:    l.Arrival,
		PriceCents:     l.PriceCents,
		TotalSeats:     l.TotalSeats,
		AvailableSeats: l.AvailableSeats(),
	}
}

type SegmentResponse struct {
	Flight         FlightResponse `json:"flight"`
	LayoverMinutes *int64         `json:"layover_minutes,omitempty"`
}

type ItineraryResponse struct {
	ID              uuid.UUID         `json:"id"`
	Segments        []SegmentResponse `json:"segments"`
	CostCents       int64             `json:"cost_cents"`
	DurationMinutes int64             `json:"duration_minutes"`
	Categories      []string          `json:"categories"`
}

type SearchFlightsResponse struct {
	Itineraries []ItineraryResponse `json:"itineraries"`
}

func FromItineraries(itineraries []flight.Itinerary) SearchFlightsResponse {
	out := make([]ItineraryResponse, 0, len(itineraries))
	for _, it := range itineraries {
		segments := make([]SegmentResponse, 0, len(it.Segments))
		for _, seg := range it.Segments {
			sr := SegmentResponse{Flight: FromLeg(seg.Leg)}
			if seg.HasLayover {
				minutes := int64(seg.Layover / time.Minute)
				sr.LayoverMinutes = &minutes
			}
			segments = append(segments, sr)
		}
		categories := it.Categories
		if categories == nil {
			categories = []string{}
		}
		out = append(out, ItineraryResponse{
			ID:              it.ID,
			Segments:        segments,
			CostCents:       it.CostCents,
			DurationMinutes: int64(it.Duration / time.Minute),
			Categories:      categories,
		})
	}
	return SearchFlightsResponse{Itineraries: out}
}
