//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tripstack/internal/domain/booking"
	"tripstack/internal/domain/hotel"
	"tripstack/internal/domain/user"
	"tripstack/internal/usecase/queries"
	queriesmock "tripstack/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomQueriesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	rooms    *queriesmock.MockRoomReadStore
	bookings *queriesmock.MockBookingReadStore
	hotels   *queriesmock.MockHotelReadStore
	queries  queries.RoomQueries
}

func (s *RoomQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.rooms = queriesmock.NewMockRoomReadStore(s.ctrl)
	s.bookings = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.hotels = queriesmock.NewMockHotelReadStore(s.ctrl)
	s.queries = queries.NewRoomQueries(s.rooms, s.bookings, s.hotels)
}

func (s *RoomQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRoomQueriesSuite(t *testing.T) {
	suite.Run(t, new(RoomQueriesTestSuite))
}

func stayDay(d int) time.Time {
	return time.Date(2025, 8, d, 0, 0, 0, 0, time.UTC)
}

func mustRoom(t require.TestingT, capacity int, priceCents int64) hotel.Room {
	r, err := hotel.NewRoom(uuid.New(), "101", hotel.RoomTypeStandard, capacity, 1, priceCents)
	require.NoError(t, err)
	return *r
}

func activeBookingFor(roomID uuid.UUID, checkIn, checkOut time.Time) *booking.Booking {
	stay, _ := booking.NewStayInterval(checkIn, checkOut)
	return booking.ReconstructBooking(
		uuid.New(), uuid.New(), roomID, stay, 30000, true, checkIn, checkIn)
}

func (s *RoomQueriesTestSuite) TestFindAvailable() {
	checkIn := stayDay(10)
	checkOut := stayDay(13)

	s.Run("error: check-out not after check-in", func() {
		_, err := s.queries.FindAvailable(context.Background(), checkOut, checkIn, 2, queries.RoomFilter{})

		assert.ErrorIs(s.T(), err, queries.ErrInvalidStayRange)
	})

	s.Run("free room is returned with hotel name and total stay price", func() {
		room := mustRoom(s.T(), 2, 20000)
		h := &hotel.Hotel{ID: room.HotelID, Name: "Grand Plaza", City: "Paris", Stars: 4}

		s.rooms.EXPECT().FindByFilters(gomock.Any(), queries.RoomFilter{}).
			Return([]hotel.Room{room}, nil)
		s.bookings.EXPECT().FindOverlapping(gomock.Any(), room.ID, gomock.Any()).
			Return(nil, nil)
		s.hotels.EXPECT().FindByID(gomock.Any(), room.HotelID).Return(h, nil)

		got, err := s.queries.FindAvailable(context.Background(), checkIn, checkOut, 2, queries.RoomFilter{})

		require.NoError(s.T(), err)
		require.Len(s.T(), got, 1)
		assert.Equal(s.T(), "Grand Plaza", got[0].HotelName)
		assert.Equal(s.T(), int64(60000), got[0].TotalPriceCents)
	})

	s.Run("room below the requested capacity is skipped without a booking lookup", func() {
		small := mustRoom(s.T(), 1, 15000)

		s.rooms.EXPECT().FindByFilters(gomock.Any(), queries.RoomFilter{}).
			Return([]hotel.Room{small}, nil)

		got, err := s.queries.FindAvailable(context.Background(), checkIn, checkOut, 2, queries.RoomFilter{})

		require.NoError(s.T(), err)
		assert.Empty(s.T(), got)
	})

	s.Run("room with an overlapping active booking is excluded", func() {
		room := mustRoom(s.T(), 2, 20000)

		s.rooms.EXPECT().FindByFilters(gomock.Any(), queries.RoomFilter{}).
			Return([]hotel.Room{room}, nil)
		s.bookings.EXPECT().FindOverlapping(gomock.Any(), room.ID, gomock.Any()).
			Return([]*booking.Booking{activeBookingFor(room.ID, stayDay(12), stayDay(15))}, nil)

		got, err := s.queries.FindAvailable(context.Background(), checkIn, checkOut, 2, queries.RoomFilter{})

		require.NoError(s.T(), err)
		assert.Empty(s.T(), got)
	})

	s.Run("hotel lookup failure leaves the name blank but keeps the room", func() {
		room := mustRoom(s.T(), 3, 25000)

		s.rooms.EXPECT().FindByFilters(gomock.Any(), queries.RoomFilter{}).
			Return([]hotel.Room{room}, nil)
		s.bookings.EXPECT().FindOverlapping(gomock.Any(), room.ID, gomock.Any()).
			Return(nil, nil)
		s.hotels.EXPECT().FindByID(gomock.Any(), room.HotelID).Return(nil, assert.AnError)

		got, err := s.queries.FindAvailable(context.Background(), checkIn, checkOut, 2, queries.RoomFilter{})

		require.NoError(s.T(), err)
		require.Len(s.T(), got, 1)
		assert.Empty(s.T(), got[0].HotelName)
	})

	s.Run("error: availability check against bookings fails", func() {
		room := mustRoom(s.T(), 2, 20000)

		s.rooms.EXPECT().FindByFilters(gomock.Any(), queries.RoomFilter{}).
			Return([]hotel.Room{room}, nil)
		s.bookings.EXPECT().FindOverlapping(gomock.Any(), room.ID, gomock.Any()).
			Return(nil, assert.AnError)

		_, err := s.queries.FindAvailable(context.Background(), checkIn, checkOut, 2, queries.RoomFilter{})

		assert.Error(s.T(), err)
	})
}

type BookingQueriesTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *queriesmock.MockBookingReadStore
	queries queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.queries = queries.NewBookingQueries(s.store)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) TestListForActor() {
	actorID := uuid.New()
	own := activeBookingFor(uuid.New(), stayDay(1), stayDay(3))

	s.Run("regular user sees only own bookings", func() {
		s.store.EXPECT().FindByUserID(gomock.Any(), actorID).
			Return([]*booking.Booking{own}, nil)

		got, err := s.queries.ListForActor(context.Background(), actorID, user.RoleUser)

		require.NoError(s.T(), err)
		assert.Len(s.T(), got, 1)
	})

	s.Run("admin sees every booking", func() {
		s.store.EXPECT().FindAll(gomock.Any()).
			Return([]*booking.Booking{own, activeBookingFor(uuid.New(), stayDay(5), stayDay(6))}, nil)

		got, err := s.queries.ListForActor(context.Background(), actorID, user.RoleAdmin)

		require.NoError(s.T(), err)
		assert.Len(s.T(), got, 2)
	})
}
