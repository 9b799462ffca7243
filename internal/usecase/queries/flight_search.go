package queries

import (
	"context"
	"fmt"
	"time"

	"tripstack/internal/domain/flight"
	"tripstack/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
)

var ErrInvalidPassengerCount = errs.New("passenger count must be at least 1")

type FlightReadStore interface {
	// FindByDepartureWindow applies the coarse filter only: departure inside
	// [from, to) and at least minSeats free. Layover and path admission stay
	// with the engine.
	FindByDepartureWindow(ctx context.Context, from, to time.Time, minSeats int) ([]flight.Leg, error)
}

// LegCache stores raw candidate legs, never ranked results: cheapest/fastest
// tags are relative to one result set and cannot be reused across requests.
// Both methods are best-effort; a broken cache degrades to store reads.
type LegCache interface {
	GetLegs(ctx context.Context, key string) ([]flight.Leg, bool)
	SetLegs(ctx context.Context, key string, legs []flight.Leg)
}

type FlightQueries interface {
	Search(ctx context.Context, origin, destination string, date time.Time, passengers int) ([]flight.Itinerary, error)
}

type flightQueriesImpl struct {
	store FlightReadStore
	cache LegCache
	group singleflight.Group
}

func NewFlightQueries(store FlightReadStore, cache LegCache) FlightQueries {
	return &flightQueriesImpl{
		store: store,
		cache: cache,
	}
}

func (q *flightQueriesImpl) Search(
	ctx context.Context,
	origin, destination string,
	date time.Time,
	passengers int,
) ([]flight.Itinerary, error) {
	if passengers < 1 {
		return nil, ErrInvalidPassengerCount
	}

	candidates, err := q.candidateLegs(ctx, date)
	if err != nil {
		return nil, err
	}

	// Candidates are cached seat-agnostic; apply the per-request seat floor
	// here so one cache entry serves any party size.
	legs := make([]flight.Leg, 0, len(candidates))
	for _, l := range candidates {
		if l.AvailableSeats() >= passengers {
			legs = append(legs, l)
		}
	}

	itineraries := flight.BuildItineraries(legs, origin, destination)
	if len(itineraries) == 0 {
		return []flight.Itinerary{}, nil
	}
	return flight.RankItineraries(itineraries, passengers), nil
}

func (q *flightQueriesImpl) candidateLegs(ctx context.Context, date time.Time) ([]flight.Leg, error) {
	key := searchCacheKey(date)

	if legs, ok := q.cache.GetLegs(ctx, key); ok {
		return legs, nil
	}

	// Singleflight collapses concurrent fills of the same window so a cold
	// cache does not stampede the store.
	result, err, _ := q.group.Do(key, func() (any, error) {
		from, to := flight.CandidateWindow(date)
		legs, err := q.store.FindByDepartureWindow(ctx, from, to, 1)
		if err != nil {
			return nil, err
		}
		q.cache.SetLegs(ctx, key, legs)
		return legs, nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to load candidate legs")
	}

	legs, _ := result.([]flight.Leg)
	return legs, nil
}

func searchCacheKey(date time.Time) string {
	return fmt.Sprintf("flight_search:%s", date.Format("2006-01-02"))
}
