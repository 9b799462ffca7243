package queries

import (
	"context"
	"time"

	"tripstack/internal/domain/booking"
	"tripstack/internal/domain/hotel"
	"tripstack/internal/domain/user"
	"tripstack/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidStayRange = errs.New("invalid stay range")

// RoomFilter mirrors the repository's attribute filters; dates never appear
// here, availability is decided against bookings afterwards.
type RoomFilter struct {
	HotelID       *uuid.UUID
	City          *string
	Type          *hotel.RoomType
	MaxPriceCents *int64
}

type AvailableRoomView struct {
	Room            hotel.Room `json:"room"`
	HotelName       string     `json:"hotel_name"`
	TotalPriceCents int64      `json:"total_price_cents"`
}

type RoomReadStore interface {
	// FindByFilters returns candidate rooms ordered by price ascending.
	FindByFilters(ctx context.Context, filter RoomFilter) ([]hotel.Room, error)
}

type BookingReadStore interface {
	// FindOverlapping returns active bookings for the room whose interval
	// intersects stay under the half-open rule.
	FindOverlapping(ctx context.Context, roomID uuid.UUID, stay booking.StayInterval) ([]*booking.Booking, error)
	FindAll(ctx context.Context) ([]*booking.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error)
}

type HotelReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	FindByCityAndStars(ctx context.Context, city *string, stars *int) ([]hotel.Hotel, error)
}

type RoomQueries interface {
	FindAvailable(ctx context.Context, checkIn, checkOut time.Time, minCapacity int, filter RoomFilter) ([]AvailableRoomView, error)
}

type BookingQueries interface {
	// ListForActor returns every booking for admins, own bookings otherwise.
	ListForActor(ctx context.Context, actorID uuid.UUID, actorRole user.Role) ([]*booking.Booking, error)
}

type roomQueriesImpl struct {
	rooms    RoomReadStore
	bookings BookingReadStore
	hotels   HotelReadStore
}

func NewRoomQueries(rooms RoomReadStore, bookings BookingReadStore, hotels HotelReadStore) RoomQueries {
	return &roomQueriesImpl{
		rooms:    rooms,
		bookings: bookings,
		hotels:   hotels,
	}
}

func (q *roomQueriesImpl) FindAvailable(
	ctx context.Context,
	checkIn, checkOut time.Time,
	minCapacity int,
	filter RoomFilter,
) ([]AvailableRoomView, error) {
	stay, err := booking.NewStayInterval(checkIn, checkOut)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	candidates, err := q.rooms.FindByFilters(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load candidate rooms")
	}

	available := make([]AvailableRoomView, 0, len(candidates))
	for _, room := range candidates {
		if room.Capacity < minCapacity {
			continue
		}

		overlapping, err := q.bookings.FindOverlapping(ctx, room.ID, stay)
		if err != nil {
			return nil, errs.Wrap(err, "failed to check room availability")
		}
		if len(overlapping) > 0 {
			continue
		}

		view := AvailableRoomView{
			Room:            room,
			TotalPriceCents: room.PricePerNightCents * int64(stay.Nights()),
		}
		if h, err := q.hotels.FindByID(ctx, room.HotelID); err == nil {
			view.HotelName = h.Name
		}
		available = append(available, view)
	}

	return available, nil
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
}

func NewBookingQueries(bookings BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings}
}

func (q *bookingQueriesImpl) ListForActor(ctx context.Context, actorID uuid.UUID, actorRole user.Role) ([]*booking.Booking, error) {
	if actorRole == user.RoleAdmin {
		return q.bookings.FindAll(ctx)
	}
	return q.bookings.FindByUserID(ctx, actorID)
}
