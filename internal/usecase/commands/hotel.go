package commands

import (
	"context"

	"tripstack/internal/domain/hotel"
	"tripstack/internal/infra"
	"tripstack/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrHotelNotFound  = errs.New("hotel not found")
	ErrInvalidHotel   = errs.New("invalid hotel data")
	ErrInvalidRoom    = errs.New("invalid room data")
	ErrRoomHotelUnset = errs.New("room must reference an existing hotel")
)

type CreateHotelParams struct {
	Name        string
	City        string
	Stars       int
	Description string
}

type CreateRoomParams struct {
	HotelID            uuid.UUID
	Number             string
	Type               hotel.RoomType
	Capacity           int
	RoomsCount         int
	PricePerNightCents int64
}

type HotelCommands interface {
	CreateHotel(ctx context.Context, params CreateHotelParams) (*hotel.Hotel, error)
	UpdateHotel(ctx context.Context, id uuid.UUID, patch hotel.HotelPatch) (*hotel.Hotel, error)
	DeleteHotel(ctx context.Context, id uuid.UUID) error
	CreateRoom(ctx context.Context, params CreateRoomParams) (*hotel.Room, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, patch hotel.RoomPatch) (*hotel.Room, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

type hotelCommandsImpl struct {
	hotels HotelRepository
	reads  HotelReader
}

func NewHotelCommands(hotels HotelRepository, reads HotelReader) HotelCommands {
	return &hotelCommandsImpl{hotels: hotels, reads: reads}
}

func (c *hotelCommandsImpl) CreateHotel(ctx context.Context, params CreateHotelParams) (*hotel.Hotel, error) {
	h, err := hotel.NewHotel(params.Name, params.City, params.Stars, params.Description)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidHotel)
	}
	if err := c.hotels.CreateHotel(ctx, h); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return h, nil
}

func (c *hotelCommandsImpl) UpdateHotel(ctx context.Context, id uuid.UUID, patch hotel.HotelPatch) (*hotel.Hotel, error) {
	h, err := c.reads.HotelByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := h.Apply(patch); err != nil {
		return nil, errs.Mark(err, ErrInvalidHotel)
	}
	if err := c.hotels.UpdateHotel(ctx, h); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return h, nil
}

func (c *hotelCommandsImpl) DeleteHotel(ctx context.Context, id uuid.UUID) error {
	if err := c.hotels.DeleteHotel(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrHotelNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *hotelCommandsImpl) CreateRoom(ctx context.Context, params CreateRoomParams) (*hotel.Room, error) {
	if _, err := c.reads.HotelByID(ctx, params.HotelID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomHotelUnset)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	r, err := hotel.NewRoom(params.HotelID, params.Number, params.Type, params.Capacity, params.RoomsCount, params.PricePerNightCents)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRoom)
	}
	if err := c.hotels.CreateRoom(ctx, r); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return r, nil
}

func (c *hotelCommandsImpl) UpdateRoom(ctx context.Context, id uuid.UUID, patch hotel.RoomPatch) (*hotel.Room, error) {
	r, err := c.reads.RoomByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := r.Apply(patch); err != nil {
		return nil, errs.Mark(err, ErrInvalidRoom)
	}
	if err := c.hotels.UpdateRoom(ctx, r); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return r, nil
}

func (c *hotelCommandsImpl) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	if err := c.hotels.DeleteRoom(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
