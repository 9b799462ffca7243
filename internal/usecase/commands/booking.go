package commands

import (
	"context"
	"log/slog"
	"time"

	"tripstack/internal/domain/booking"
	"tripstack/internal/domain/user"
	"tripstack/internal/infra"
	"tripstack/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayRange        = errs.New("invalid stay range")
	ErrRoomNotFound            = errs.New("room not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrPermissionDenied        = errs.New("permission denied")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type BookingCommands interface {
	Book(ctx context.Context, actorID uuid.UUID, roomID uuid.UUID, checkIn, checkOut time.Time) (*booking.Booking, error)
	Cancel(ctx context.Context, actorID uuid.UUID, actorRole user.Role, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	rooms    RoomReader
	bookings BookingRepository
	users    UserReader
	notifier Notifier
}

func NewBookingCommands(
	rooms RoomReader,
	bookings BookingRepository,
	users UserReader,
	notifier Notifier,
) BookingCommands {
	return &bookingCommandsImpl{
		rooms:    rooms,
		bookings: bookings,
		users:    users,
		notifier: notifier,
	}
}

func (c *bookingCommandsImpl) Book(
	ctx context.Context,
	actorID uuid.UUID,
	roomID uuid.UUID,
	checkIn, checkOut time.Time,
) (*booking.Booking, error) {
	stay, err := booking.NewStayInterval(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	room, err := c.rooms.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	b := booking.NewBooking(actorID, room.ID, stay, room.PricePerNightCents)

	if err := c.bookings.CreateExclusive(ctx, b); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return nil, ErrBookingConflict
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrRoomNotFound
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	c.notifyConfirmed(ctx, actorID, b)
	return b, nil
}

func (c *bookingCommandsImpl) Cancel(
	ctx context.Context,
	actorID uuid.UUID,
	actorRole user.Role,
	bookingID uuid.UUID,
) error {
	b, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !b.CancellableBy(actorID, actorRole) {
		return ErrPermissionDenied
	}

	// Cancelling an already-inactive booking stays a no-op success; the
	// UPDATE below touches zero rows in that case.
	b.Cancel()
	if err := c.bookings.Deactivate(ctx, b.ID()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.notifyCancelled(ctx, b.UserID(), b)
	return nil
}

func (c *bookingCommandsImpl) notifyConfirmed(ctx context.Context, recipientID uuid.UUID, b *booking.Booking) {
	email, ok := c.recipientEmail(ctx, recipientID)
	if !ok {
		return
	}
	c.notifier.BookingConfirmed(ctx, email, noticeFrom(b))
}

func (c *bookingCommandsImpl) notifyCancelled(ctx context.Context, recipientID uuid.UUID, b *booking.Booking) {
	email, ok := c.recipientEmail(ctx, recipientID)
	if !ok {
		return
	}
	c.notifier.BookingCancelled(ctx, email, noticeFrom(b))
}

func (c *bookingCommandsImpl) recipientEmail(ctx context.Context, userID uuid.UUID) (string, bool) {
	u, err := c.users.FindByID(ctx, userID)
	if err != nil {
		slog.Warn("skipping booking notification, recipient lookup failed",
			"user_id", userID, "error", err.Error())
		return "", false
	}
	return u.Email, true
}

func noticeFrom(b *booking.Booking) BookingNotice {
	return BookingNotice{
		BookingID:       b.ID(),
		RoomID:          b.RoomID(),
		CheckIn:         b.Stay().CheckIn(),
		CheckOut:        b.Stay().CheckOut(),
		TotalPriceCents: b.TotalPriceCents(),
	}
}
