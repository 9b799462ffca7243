package commands

import (
	"context"
	"time"

	"tripstack/internal/domain/booking"
	"tripstack/internal/domain/flight"
	"tripstack/internal/domain/hotel"
	"tripstack/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands off the read-side query types.
type RoomSnapshot struct {
	ID                 uuid.UUID
	HotelID            uuid.UUID
	Number             string
	Capacity           int
	PricePerNightCents int64
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	Role         user.Role
	CreatedAt    time.Time
}

type RoomReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomSnapshot, error)
}

type UserReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	FindByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

type HotelReader interface {
	HotelByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	RoomByID(ctx context.Context, id uuid.UUID) (*hotel.Room, error)
}

type BookingRepository interface {
	// CreateExclusive must perform the overlap check and the insert as one
	// atomic unit per room: of two racing overlapping requests exactly one
	// may succeed, the loser surfaces KindConflict.
	CreateExclusive(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateUsername(ctx context.Context, id uuid.UUID, username string) error
}

type FlightRepository interface {
	Create(ctx context.Context, leg flight.Leg) error
	Delete(ctx context.Context, id uuid.UUID) error
	// CommitSeats must be atomic per flight under concurrent purchases.
	CommitSeats(ctx context.Context, flightID uuid.UUID, seats int) error
}

type HotelRepository interface {
	CreateHotel(ctx context.Context, h *hotel.Hotel) error
	UpdateHotel(ctx context.Context, h *hotel.Hotel) error
	DeleteHotel(ctx context.Context, id uuid.UUID) error
	CreateRoom(ctx context.Context, r *hotel.Room) error
	UpdateRoom(ctx context.Context, r *hotel.Room) error
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

type BookingNotice struct {
	BookingID       uuid.UUID
	RoomID          uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	TotalPriceCents int64
}

// Notifier is fire-and-forget: implementations report delivery failures via
// logging, never through an error, so a dropped mail cannot undo a booking.
type Notifier interface {
	BookingConfirmed(ctx context.Context, recipientEmail string, notice BookingNotice)
	BookingCancelled(ctx context.Context, recipientEmail string, notice BookingNotice)
}
