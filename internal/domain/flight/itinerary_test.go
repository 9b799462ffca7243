//go:build unit

package flight_test

import (
	"testing"
	"time"

	"tripstack/internal/domain/flight"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func leg(t *testing.T, origin, destination string, departure, arrival time.Duration, priceCents int64) flight.Leg {
	t.Helper()
	l, err := flight.NewLeg(origin, destination, base.Add(departure), base.Add(arrival), priceCents, 100, 0)
	require.NoError(t, err)
	return l
}

func TestCandidateWindow(t *testing.T) {
	searchDate := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

	from, to := flight.CandidateWindow(searchDate)

	assert.Equal(t, time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), to)
}

func TestBuildItineraries(t *testing.T) {
	t.Run("direct flight yields single-segment itinerary", func(t *testing.T) {
		legs := []flight.Leg{
			leg(t, "NYC", "LAX", 10*time.Hour, 16*time.Hour, 30000),
		}

		got := flight.BuildItineraries(legs, "NYC", "LAX")

		require.Len(t, got, 1)
		require.Len(t, got[0].Segments, 1)
		assert.False(t, got[0].Segments[0].HasLayover)
	})

	t.Run("connection within layover band is built", func(t *testing.T) {
		legs := []flight.Leg{
			leg(t, "NYC", "CHI", 10*time.Hour, 12*time.Hour, 15000),
			leg(t, "CHI", "LAX", 12*time.Hour+45*time.Minute, 14*time.Hour, 18000),
		}

		got := flight.BuildItineraries(legs, "NYC", "LAX")

		require.Len(t, got, 1)
		want := []flight.Segment{
			{Leg: legs[0]},
			{Leg: legs[1], Layover: 45 * time.Minute, HasLayover: true},
		}
		if diff := cmp.Diff(want, got[0].Segments, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("segments mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("layover below thirty minutes is rejected", func(t *testing.T) {
		legs := []flight.Leg{
			leg(t, "NYC", "CHI", 10*time.Hour, 12*time.Hour, 15000),
			leg(t, "CHI", "LAX", 12*time.Hour+20*time.Minute, 14*time.Hour, 18000),
		}

		got := flight.BuildItineraries(legs, "NYC", "LAX")

		assert.Empty(t, got)
	})

	t.Run("layover band boundaries are inclusive", func(t *testing.T) {
		cases := []struct {
			name    string
			layover time.Duration
			want    int
		}{
			{"exactly thirty minutes", 30 * time.Minute, 1},
			{"one second short of thirty minutes", 30*time.Minute - time.Second, 0},
			{"exactly twenty-four hours", 24 * time.Hour, 1},
			{"one minute past twenty-four hours", 24*time.Hour + time.Minute, 0},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				legs := []flight.Leg{
					leg(t, "NYC", "CHI", 10*time.Hour, 12*time.Hour, 15000),
					leg(t, "CHI", "LAX", 12*time.Hour+tc.layover, 40*time.Hour, 18000),
				}

				got := flight.BuildItineraries(legs, "NYC", "LAX")

				assert.Len(t, got, tc.want)
			})
		}
	})

	t.Run("first segment needs no layover check", func(t *testing.T) {
		// Departure long before the search day's midnight is still admissible.
		legs := []flight.Leg{
			leg(t, "NYC", "LAX", -20*time.Hour, -14*time.Hour, 30000),
		}

		got := flight.BuildItineraries(legs, "NYC", "LAX")

		assert.Len(t, got, 1)
	})

	t.Run("paths stop growing at three segments", func(t *testing.T) {
		legs := []flight.Leg{
			leg(t, "A", "B", 1*time.Hour, 2*time.Hour, 100),
			leg(t, "B", "C", 3*time.Hour, 4*time.Hour, 100),
			leg(t, "C", "D", 5*time.Hour, 6*time.Hour, 100),
			leg(t, "D", "E", 7*time.Hour, 8*time.Hour, 100),
		}

		threeHops := flight.BuildItineraries(legs, "A", "D")
		require.Len(t, threeHops, 1)
		assert.Len(t, threeHops[0].Segments, 3)

		fourHops := flight.BuildItineraries(legs, "A", "E")
		assert.Empty(t, fourHops)
	})

	t.Run("reaching the destination ends the path", func(t *testing.T) {
		// A leg out of LAX must not extend an itinerary that already arrived.
		legs := []flight.Leg{
			leg(t, "NYC", "LAX", 1*time.Hour, 2*time.Hour, 100),
			leg(t, "LAX", "SFO", 3*time.Hour, 4*time.Hour, 100),
			leg(t, "SFO", "LAX", 5*time.Hour, 6*time.Hour, 100),
		}

		got := flight.BuildItineraries(legs, "NYC", "LAX")

		require.Len(t, got, 1)
		assert.Len(t, got[0].Segments, 1)
	})

	t.Run("multiple viable paths are all enumerated", func(t *testing.T) {
		legs := []flight.Leg{
			leg(t, "NYC", "LAX", 9*time.Hour, 15*time.Hour, 40000),
			leg(t, "NYC", "CHI", 8*time.Hour, 10*time.Hour, 12000),
			leg(t, "CHI", "LAX", 11*time.Hour, 15*time.Hour, 15000),
		}

		got := flight.BuildItineraries(legs, "NYC", "LAX")

		require.Len(t, got, 2)
		// Breadth-first: the direct itinerary comes out before the one-stop.
		assert.Len(t, got[0].Segments, 1)
		assert.Len(t, got[1].Segments, 2)
	})

	t.Run("no path yields empty result", func(t *testing.T) {
		legs := []flight.Leg{
			leg(t, "NYC", "CHI", 8*time.Hour, 10*time.Hour, 12000),
		}

		got := flight.BuildItineraries(legs, "NYC", "LAX")

		assert.Empty(t, got)
	})
}

func TestRankItineraries(t *testing.T) {
	build := func(t *testing.T, legs []flight.Leg) []flight.Itinerary {
		t.Helper()
		got := flight.BuildItineraries(legs, "NYC", "LAX")
		require.NotEmpty(t, got)
		return got
	}

	t.Run("cost scales with passenger count", func(t *testing.T) {
		its := build(t, []flight.Leg{
			leg(t, "NYC", "LAX", 9*time.Hour, 15*time.Hour, 40000),
		})

		ranked := flight.RankItineraries(its, 3)

		require.Len(t, ranked, 1)
		assert.Equal(t, int64(120000), ranked[0].CostCents)
		assert.Equal(t, 6*time.Hour, ranked[0].Duration)
	})

	t.Run("duration spans first departure to last arrival", func(t *testing.T) {
		its := build(t, []flight.Leg{
			leg(t, "NYC", "CHI", 8*time.Hour, 10*time.Hour, 12000),
			leg(t, "CHI", "LAX", 11*time.Hour, 15*time.Hour, 15000),
		})

		ranked := flight.RankItineraries(its, 1)

		require.Len(t, ranked, 1)
		// Layover time counts against the itinerary.
		assert.Equal(t, 7*time.Hour, ranked[0].Duration)
	})

	t.Run("global minima are tagged", func(t *testing.T) {
		its := build(t, []flight.Leg{
			// direct: expensive but fast
			leg(t, "NYC", "LAX", 9*time.Hour, 14*time.Hour, 40000),
			// one-stop: cheap but slow
			leg(t, "NYC", "CHI", 8*time.Hour, 10*time.Hour, 12000),
			leg(t, "CHI", "LAX", 11*time.Hour, 15*time.Hour, 15000),
		})

		ranked := flight.RankItineraries(its, 1)

		require.Len(t, ranked, 2)
		for _, it := range ranked {
			switch len(it.Segments) {
			case 1:
				assert.True(t, it.IsFastest())
				assert.False(t, it.IsCheapest())
			case 2:
				assert.True(t, it.IsCheapest())
				assert.False(t, it.IsFastest())
			}
		}
	})

	t.Run("one itinerary carries both tags", func(t *testing.T) {
		its := build(t, []flight.Leg{
			leg(t, "NYC", "CHI", 10*time.Hour, 12*time.Hour, 15000),
			leg(t, "CHI", "LAX", 12*time.Hour+45*time.Minute, 14*time.Hour, 18000),
		})

		ranked := flight.RankItineraries(its, 1)

		require.Len(t, ranked, 1)
		assert.True(t, ranked[0].IsCheapest())
		assert.True(t, ranked[0].IsFastest())
	})

	t.Run("ties all receive the tag", func(t *testing.T) {
		its := build(t, []flight.Leg{
			leg(t, "NYC", "LAX", 9*time.Hour, 14*time.Hour, 20000),
			leg(t, "NYC", "LAX", 10*time.Hour, 15*time.Hour, 20000),
		})

		ranked := flight.RankItineraries(its, 1)

		require.Len(t, ranked, 2)
		for _, it := range ranked {
			assert.True(t, it.IsCheapest())
			assert.True(t, it.IsFastest())
		}
	})

	t.Run("tagged itineraries sort before untagged, then by cost", func(t *testing.T) {
		its := build(t, []flight.Leg{
			// cheapest
			leg(t, "NYC", "LAX", 9*time.Hour, 17*time.Hour, 10000),
			// fastest
			leg(t, "NYC", "LAX", 9*time.Hour, 14*time.Hour, 50000),
			// neither, mid cost
			leg(t, "NYC", "LAX", 9*time.Hour, 16*time.Hour, 30000),
			// neither, low cost
			leg(t, "NYC", "LAX", 9*time.Hour, 16*time.Hour, 20000),
		})

		ranked := flight.RankItineraries(its, 1)

		require.Len(t, ranked, 4)
		assert.True(t, ranked[0].IsCheapest())
		assert.True(t, ranked[1].IsFastest())
		assert.Equal(t, int64(10000), ranked[0].CostCents)
		assert.Equal(t, int64(50000), ranked[1].CostCents)
		// Untagged remainder in ascending cost order.
		assert.Equal(t, int64(20000), ranked[2].CostCents)
		assert.Equal(t, int64(30000), ranked[3].CostCents)
		assert.Empty(t, ranked[2].Categories)
		assert.Empty(t, ranked[3].Categories)
	})
}
