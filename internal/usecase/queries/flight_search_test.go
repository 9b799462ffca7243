//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tripstack/internal/domain/flight"
	"tripstack/internal/usecase/queries"
	queriesmock "tripstack/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FlightQueriesTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *queriesmock.MockFlightReadStore
	cache   *queriesmock.MockLegCache
	queries queries.FlightQueries
}

func (s *FlightQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockFlightReadStore(s.ctrl)
	s.cache = queriesmock.NewMockLegCache(s.ctrl)
	s.queries = queries.NewFlightQueries(s.store, s.cache)
}

func (s *FlightQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFlightQueriesSuite(t *testing.T) {
	suite.Run(t, new(FlightQueriesTestSuite))
}

var searchDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func mustLeg(t require.TestingT, origin, destination string, departure, arrival time.Time, priceCents int64, total, booked int) flight.Leg {
	l, err := flight.NewLeg(origin, destination, departure, arrival, priceCents, total, booked)
	require.NoError(t, err)
	return l
}

func (s *FlightQueriesTestSuite) TestSearch() {
	const cacheKey = "flight_search:2025-06-01"

	direct := mustLeg(s.T(), "NYC", "LAX",
		searchDate.Add(9*time.Hour), searchDate.Add(15*time.Hour), 40000, 100, 0)

	s.Run("error: passenger count below one", func() {
		_, err := s.queries.Search(context.Background(), "NYC", "LAX", searchDate, 0)

		assert.ErrorIs(s.T(), err, queries.ErrInvalidPassengerCount)
	})

	s.Run("cache miss: store queried over the candidate window, result cached", func() {
		wantFrom := searchDate.Add(-24 * time.Hour)
		wantTo := searchDate.Add(48 * time.Hour)

		s.cache.EXPECT().GetLegs(gomock.Any(), cacheKey).Return(nil, false)
		s.store.EXPECT().FindByDepartureWindow(gomock.Any(), wantFrom, wantTo, 1).
			Return([]flight.Leg{direct}, nil)
		s.cache.EXPECT().SetLegs(gomock.Any(), cacheKey, []flight.Leg{direct})

		got, err := s.queries.Search(context.Background(), "NYC", "LAX", searchDate, 1)

		require.NoError(s.T(), err)
		require.Len(s.T(), got, 1)
		assert.Equal(s.T(), int64(40000), got[0].CostCents)
	})

	s.Run("cache hit: store is not touched", func() {
		s.cache.EXPECT().GetLegs(gomock.Any(), cacheKey).Return([]flight.Leg{direct}, true)

		got, err := s.queries.Search(context.Background(), "NYC", "LAX", searchDate, 2)

		require.NoError(s.T(), err)
		require.Len(s.T(), got, 1)
		assert.Equal(s.T(), int64(80000), got[0].CostCents, "cost reflects the passenger count")
	})

	s.Run("legs short on seats are filtered per request", func() {
		tight := mustLeg(s.T(), "NYC", "LAX",
			searchDate.Add(10*time.Hour), searchDate.Add(16*time.Hour), 10000, 100, 99)
		s.cache.EXPECT().GetLegs(gomock.Any(), cacheKey).
			Return([]flight.Leg{direct, tight}, true)

		got, err := s.queries.Search(context.Background(), "NYC", "LAX", searchDate, 2)

		require.NoError(s.T(), err)
		require.Len(s.T(), got, 1, "the one-seat leg must not appear for two passengers")
		assert.Equal(s.T(), direct.ID, got[0].Segments[0].Leg.ID)
	})

	s.Run("no route yields empty slice, not an error", func() {
		s.cache.EXPECT().GetLegs(gomock.Any(), cacheKey).Return([]flight.Leg{}, true)

		got, err := s.queries.Search(context.Background(), "NYC", "LAX", searchDate, 1)

		require.NoError(s.T(), err)
		assert.NotNil(s.T(), got)
		assert.Empty(s.T(), got)
	})

	s.Run("error: store failure propagates", func() {
		s.cache.EXPECT().GetLegs(gomock.Any(), cacheKey).Return(nil, false)
		s.store.EXPECT().FindByDepartureWindow(gomock.Any(), gomock.Any(), gomock.Any(), 1).
			Return(nil, assert.AnError)

		_, err := s.queries.Search(context.Background(), "NYC", "LAX", searchDate, 1)

		assert.Error(s.T(), err)
	})
}
