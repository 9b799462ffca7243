package booking

import (
	"time"

	"tripstack/internal/domain/user"

	"github.com/google/uuid"
)

// Booking is one room held by one user for a stay interval. Cancellation is
// a soft delete: the row stays, active flips to false and never back.
type Booking struct {
	id              uuid.UUID
	userID          uuid.UUID
	roomID          uuid.UUID
	stay            StayInterval
	totalPriceCents int64
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewBooking(userID, roomID uuid.UUID, stay StayInterval, pricePerNightCents int64) *Booking {
	return &Booking{
		id:              uuid.New(),
		userID:          userID,
		roomID:          roomID,
		stay:            stay,
		totalPriceCents: pricePerNightCents * int64(stay.Nights()),
		active:          true,
	}
}

func ReconstructBooking(
	id, userID, roomID uuid.UUID,
	stay StayInterval,
	totalPriceCents int64,
	active bool,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		userID:          userID,
		roomID:          roomID,
		stay:            stay,
		totalPriceCents: totalPriceCents,
		active:          active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Cancel deactivates the booking. Cancelling an already-inactive booking is
// a no-op: retries of a cancel request must not fail.
func (b *Booking) Cancel() {
	b.active = false
}

// CancellableBy allows the owning user and administrators.
func (b *Booking) CancellableBy(actorID uuid.UUID, actorRole user.Role) bool {
	return actorRole == user.RoleAdmin || actorID == b.userID
}

func (b *Booking) ConflictsWith(other *Booking) bool {
	return b.roomID == other.roomID && b.active && other.active && b.stay.Overlaps(other.stay)
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) UserID() uuid.UUID      { return b.userID }
func (b *Booking) RoomID() uuid.UUID      { return b.roomID }
func (b *Booking) Stay() StayInterval     { return b.stay }
func (b *Booking) TotalPriceCents() int64 { return b.totalPriceCents }
func (b *Booking) IsActive() bool         { return b.active }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }
