package request

import (
	"time"

	"tripstack/internal/domain/hotel"
	"tripstack/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	RoomID   uuid.UUID `json:"room_id" binding:"required"`
	CheckIn  string    `json:"check_in" binding:"required"`
	CheckOut string    `json:"check_out" binding:"required"`
}

func (r CreateBookingRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return
	}
	checkOut, err = time.Parse(dateLayout, r.CheckOut)
	return
}

// AvailabilityQuery binds the room availability query string; all filters
// besides the stay dates are optional.
type AvailabilityQuery struct {
	CheckIn       string  `form:"check_in" binding:"required"`
	CheckOut      string  `form:"check_out" binding:"required"`
	Guests        int     `form:"guests,default=1"`
	HotelID       *string `form:"hotel_id"`
	City          *string `form:"city"`
	RoomType      *string `form:"room_type"`
	MaxPriceCents *int64  `form:"max_price_cents"`
}

func (q AvailabilityQuery) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(dateLayout, q.CheckIn)
	if err != nil {
		return
	}
	checkOut, err = time.Parse(dateLayout, q.CheckOut)
	return
}

func (q AvailabilityQuery) ToFilter() (queries.RoomFilter, error) {
	filter := queries.RoomFilter{
		City:          q.City,
		MaxPriceCents: q.MaxPriceCents,
	}
	if q.HotelID != nil {
		id, err := uuid.Parse(*q.HotelID)
		if err != nil {
			return queries.RoomFilter{}, err
		}
		filter.HotelID = &id
	}
	if q.RoomType != nil {
		t, err := hotel.NewRoomType(*q.RoomType)
		if err != nil {
			return queries.RoomFilter{}, err
		}
		filter.Type = &t
	}
	return filter, nil
}
