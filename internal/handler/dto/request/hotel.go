package request

import (
	"tripstack/internal/domain/hotel"
	"tripstack/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	Name        string `json:"name" binding:"required"`
	City        string `json:"city" binding:"required"`
	Stars       int    `json:"stars" binding:"required,min=1,max=5"`
	Description string `json:"description"`
}

func (r CreateHotelRequest) ToParams() commands.CreateHotelParams {
	return commands.CreateHotelParams{
		Name:        r.Name,
		City:        r.City,
		Stars:       r.Stars,
		Description: r.Description,
	}
}

type UpdateHotelRequest struct {
	Name        *string `json:"name,omitempty"`
	City        *string `json:"city,omitempty"`
	Stars       *int    `json:"stars,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r UpdateHotelRequest) ToPatch() hotel.HotelPatch {
	return hotel.HotelPatch{
		Name:        r.Name,
		City:        r.City,
		Stars:       r.Stars,
		Description: r.Description,
	}
}

type CreateRoomRequest struct {
	Number             string `json:"number" binding:"required"`
	Type               string `json:"type" binding:"required"`
	Capacity           int    `json:"capacity" binding:"required,min=1"`
	RoomsCount         int    `json:"rooms_count" binding:"required,min=1"`
	PricePerNightCents int64  `json:"price_per_night_cents" binding:"min=0"`
}

func (r CreateRoomRequest) ToParams(hotelID uuid.UUID) commands.CreateRoomParams {
	return commands.CreateRoomParams{
		HotelID:            hotelID,
		Number:             r.Number,
		Type:               hotel.RoomType(r.Type),
		Capacity:           r.Capacity,
		RoomsCount:         r.RoomsCount,
		PricePerNightCents: r.PricePerNightCents,
	}
}

type UpdateRoomRequest struct {
	Number             *string `json:"number,omitempty"`
	Type               *string `json:"type,omitempty"`
	Capacity           *int    `json:"capacity,omitempty"`
	RoomsCount         *int    `json:"rooms_count,omitempty"`
	PricePerNightCents *int64  `json:"price_per_night_cents,omitempty"`
}

func (r UpdateRoomRequest) ToPatch() hotel.RoomPatch {
	patch := hotel.RoomPatch{
		Number:             r.Number,
		Capacity:           r.Capacity,
		RoomsCount:         r.RoomsCount,
		PricePerNightCents: r.PricePerNightCents,
	}
	if r.Type != nil {
		t := hotel.RoomType(*r.Type)
		patch.Type = &t
	}
	return patch
}
