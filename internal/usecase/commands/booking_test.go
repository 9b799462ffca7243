//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"tripstack/internal/domain/booking"
	"tripstack/internal/domain/user"
	"tripstack/internal/infra"
	"tripstack/internal/usecase/commands"
	commandsmock "tripstack/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	rooms    *commandsmock.MockRoomReader
	bookings *commandsmock.MockBookingRepository
	users    *commandsmock.MockUserReader
	notifier *commandsmock.MockNotifier
	commands commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.rooms = commandsmock.NewMockRoomReader(s.ctrl)
	s.bookings = commandsmock.NewMockBookingRepository(s.ctrl)
	s.users = commandsmock.NewMockUserReader(s.ctrl)
	s.notifier = commandsmock.NewMockNotifier(s.ctrl)
	s.commands = commands.NewBookingCommands(s.rooms, s.bookings, s.users, s.notifier)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

var (
	checkIn  = time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	checkOut = time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC)
)

func (s *BookingCommandsTestSuite) roomSnapshot(roomID uuid.UUID) *commands.RoomSnapshot {
	return &commands.RoomSnapshot{
		ID:                 roomID,
		HotelID:            uuid.New(),
		Number:             "204",
		Capacity:           2,
		PricePerNightCents: 15000,
	}
}

func (s *BookingCommandsTestSuite) userSnapshot(userID uuid.UUID) *commands.UserSnapshot {
	return &commands.UserSnapshot{
		ID:    userID,
		Email: "guest@example.com",
		Role:  user.RoleUser,
	}
}

func (s *BookingCommandsTestSuite) TestBook() {
	actorID := uuid.New()
	roomID := uuid.New()

	s.Run("success: booking created, priced and confirmed", func() {
		s.rooms.EXPECT().FindByID(gomock.Any(), roomID).Return(s.roomSnapshot(roomID), nil)
		s.bookings.EXPECT().CreateExclusive(gomock.Any(), gomock.Any()).Return(nil)
		s.users.EXPECT().FindByID(gomock.Any(), actorID).Return(s.userSnapshot(actorID), nil)
		s.notifier.EXPECT().BookingConfirmed(gomock.Any(), "guest@example.com", gomock.Any())

		b, err := s.commands.Book(context.Background(), actorID, roomID, checkIn, checkOut)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), actorID, b.UserID())
		assert.Equal(s.T(), roomID, b.RoomID())
		assert.Equal(s.T(), int64(45000), b.TotalPriceCents())
		assert.True(s.T(), b.IsActive())
	})

	s.Run("error: invalid stay range never touches the repository", func() {
		_, err := s.commands.Book(context.Background(), actorID, roomID, checkOut, checkIn)

		assert.ErrorIs(s.T(), err, commands.ErrInvalidStayRange)
	})

	s.Run("error: unknown room", func() {
		s.rooms.EXPECT().FindByID(gomock.Any(), roomID).
			Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

		_, err := s.commands.Book(context.Background(), actorID, roomID, checkIn, checkOut)

		assert.ErrorIs(s.T(), err, commands.ErrRoomNotFound)
	})

	s.Run("error: overlapping stay surfaces conflict", func() {
		s.rooms.EXPECT().FindByID(gomock.Any(), roomID).Return(s.roomSnapshot(roomID), nil)
		s.bookings.EXPECT().CreateExclusive(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("room already booked", nil, infra.KindConflict))

		_, err := s.commands.Book(context.Background(), actorID, roomID, checkIn, checkOut)

		assert.ErrorIs(s.T(), err, commands.ErrBookingConflict)
	})

	s.Run("success: failed recipient lookup skips notification but keeps booking", func() {
		s.rooms.EXPECT().FindByID(gomock.Any(), roomID).Return(s.roomSnapshot(roomID), nil)
		s.bookings.EXPECT().CreateExclusive(gomock.Any(), gomock.Any()).Return(nil)
		s.users.EXPECT().FindByID(gomock.Any(), actorID).
			Return(nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		b, err := s.commands.Book(context.Background(), actorID, roomID, checkIn, checkOut)

		require.NoError(s.T(), err)
		assert.NotNil(s.T(), b)
	})
}

func (s *BookingCommandsTestSuite) TestCancel() {
	ownerID := uuid.New()
	bookingID := uuid.New()

	activeBooking := func() *booking.Booking {
		stay, err := booking.NewStayInterval(checkIn, checkOut)
		require.NoError(s.T(), err)
		return booking.ReconstructBooking(
			bookingID, ownerID, uuid.New(), stay, 45000, true,
			time.Now(), time.Now(),
		)
	}

	s.Run("success: owner cancels own booking", func() {
		s.bookings.EXPECT().FindByID(gomock.Any(), bookingID).Return(activeBooking(), nil)
		s.bookings.EXPECT().Deactivate(gomock.Any(), bookingID).Return(nil)
		s.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(s.userSnapshot(ownerID), nil)
		s.notifier.EXPECT().BookingCancelled(gomock.Any(), "guest@example.com", gomock.Any())

		err := s.commands.Cancel(context.Background(), ownerID, user.RoleUser, bookingID)

		assert.NoError(s.T(), err)
	})

	s.Run("success: admin cancels any booking", func() {
		adminID := uuid.New()
		s.bookings.EXPECT().FindByID(gomock.Any(), bookingID).Return(activeBooking(), nil)
		s.bookings.EXPECT().Deactivate(gomock.Any(), bookingID).Return(nil)
		s.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(s.userSnapshot(ownerID), nil)
		s.notifier.EXPECT().BookingCancelled(gomock.Any(), "guest@example.com", gomock.Any())

		err := s.commands.Cancel(context.Background(), adminID, user.RoleAdmin, bookingID)

		assert.NoError(s.T(), err)
	})

	s.Run("error: stranger cannot cancel", func() {
		s.bookings.EXPECT().FindByID(gomock.Any(), bookingID).Return(activeBooking(), nil)

		err := s.commands.Cancel(context.Background(), uuid.New(), user.RoleUser, bookingID)

		assert.ErrorIs(s.T(), err, commands.ErrPermissionDenied)
	})

	s.Run("error: unknown booking", func() {
		s.bookings.EXPECT().FindByID(gomock.Any(), bookingID).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		err := s.commands.Cancel(context.Background(), ownerID, user.RoleUser, bookingID)

		assert.ErrorIs(s.T(), err, commands.ErrBookingNotFound)
	})

	s.Run("success: cancelling an inactive booking stays a no-op", func() {
		stay, err := booking.NewStayInterval(checkIn, checkOut)
		require.NoError(s.T(), err)
		inactive := booking.ReconstructBooking(
			bookingID, ownerID, uuid.New(), stay, 45000, false,
			time.Now(), time.Now(),
		)
		s.bookings.EXPECT().FindByID(gomock.Any(), bookingID).Return(inactive, nil)
		s.bookings.EXPECT().Deactivate(gomock.Any(), bookingID).Return(nil)
		s.users.EXPECT().FindByID(gomock.Any(), ownerID).Return(s.userSnapshot(ownerID), nil)
		s.notifier.EXPECT().BookingCancelled(gomock.Any(), "guest@example.com", gomock.Any())

		err = s.commands.Cancel(context.Background(), ownerID, user.RoleUser, bookingID)

		assert.NoError(s.T(), err)
	})
}
