package response

import (
	"time"

	"tripstack/internal/domain/hotel"
	"tripstack/internal/usecase/queries"

	"github.com/google/uuid"
)

type HotelResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Stars       int       `json:"stars"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromHotel(h *hotel.Hotel) HotelResponse {
	return HotelResponse{
		ID:          h.ID,
		Name:        h.Name,
		City:        h.City,
		Stars:       h.Stars,
		Description: h.Description,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func FromHotels(hotels []hotel.Hotel) []HotelResponse {
	out := make([]HotelResponse, 0, len(hotels))
	for i := range hotels {
		out = append(out, FromHotel(&hotels[i]))
	}
	return out
}

type RoomResponse struct {
	ID                 uuid.UUID `json:"id"`
	HotelID            uuid.UUID `json:"hotel_id"`
	Number             string    `json:"number"`
	Type               string    `json:"type"`
	Capacity           int       `json:"capacity"`
	RoomsCount         int       `json:"rooms_count"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
}

func FromRoom(r *hotel.Room) RoomResponse {
	return RoomResponse{
		ID:                 r.ID,
		HotelID:            r.HotelID,
		Number:             r.Number,
		Type:               string(r.Type),
		Capacity:           r.Capacity,
		RoomsCount:         r.RoomsCount,
		PricePerNightCents: r.PricePerNightCents,
	}
}

func FromRooms(rooms []hotel.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for i := range rooms {
		out = append(out, FromRoom(&rooms[i]))
	}
	return out
}

type AvailableRoomResponse struct {
	Room            RoomResponse `json:"room"`
	HotelName       string       `json:"hotel_name,omitempty"`
	TotalPriceCents int64        `json:"total_price_cents"`
}

func FromAvailableRooms(views []queries.AvailableRoomView) []AvailableRoomResponse {
	out := make([]AvailableRoomResponse, 0, len(views))
	for i := range views {
		out = append(out, AvailableRoomResponse{
			Room:            FromRoom(&views[i].Room),
			HotelName:       views[i].HotelName,
			TotalPriceCents: views[i].TotalPriceCents,
		})
	}
	return out
}
