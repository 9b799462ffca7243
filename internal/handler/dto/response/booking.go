package response

import (
	"time"

	"tripstack/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	RoomID          uuid.UUID `json:"room_id"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	Nights          int       `json:"nights"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromBooking(b *booking.Booking) BookingResponse {
	stay := b.Stay()
	return BookingResponse{
		ID:              b.ID(),
		UserID:          b.UserID(),
		RoomID:          b.RoomID(),
		CheckIn:         stay.CheckIn().Format("2006-01-02"),
		CheckOut:        stay.CheckOut().Format("2006-01-02"),
		Nights:          stay.Nights(),
		TotalPriceCents: b.TotalPriceCents(),
		Active:          b.IsActive(),
		CreatedAt:       b.CreatedAt(),
	}
}

func FromBookings(bookings []*booking.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}
