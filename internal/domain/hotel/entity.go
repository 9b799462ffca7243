package hotel

import (
	"errors"
	"strings"
	"time"

	"tripstack/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("hotel name cannot be empty")
	ErrInvalidStars     = errors.New("hotel stars must be between 1 and 5")
	ErrInvalidRoomType  = errors.New("invalid room type")
	ErrInvalidCapacity  = errors.New("room capacity must be at least 1")
	ErrInvalidRoomCount = errors.New("rooms count must be at least 1")
	ErrNegativePrice    = errors.New("price per night cannot be negative")
)

type RoomType string

const (
	RoomTypeStandard RoomType = "standard"
	RoomTypeLarge    RoomType = "large"
	RoomTypePremium  RoomType = "premium"
)

func (t RoomType) IsValid() bool {
	switch t {
	case RoomTypeStandard, RoomTypeLarge, RoomTypePremium:
		return true
	default:
		return false
	}
}

func NewRoomType(s string) (RoomType, error) {
	t := RoomType(s)
	if !t.IsValid() {
		return "", ErrInvalidRoomType
	}
	return t, nil
}

type Hotel struct {
	ID          uuid.UUID
	Name        string
	City        string
	Stars       int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewHotel(name, city string, stars int, description string) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if stars < 1 || stars > 5 {
		return nil, ErrInvalidStars
	}
	return &Hotel{
		ID:          uuid.New(),
		Name:        name,
		City:        city,
		Stars:       stars,
		Description: description,
	}, nil
}

type Room struct {
	ID                 uuid.UUID
	HotelID            uuid.UUID
	Number             string
	Type               RoomType
	Capacity           int
	RoomsCount         int
	PricePerNightCents int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewRoom(hotelID uuid.UUID, number string, roomType RoomType, capacity, roomsCount int, pricePerNightCents int64) (*Room, error) {
	if !roomType.IsValid() {
		return nil, ErrInvalidRoomType
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if roomsCount < 1 {
		return nil, ErrInvalidRoomCount
	}
	if pricePerNightCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Room{
		ID:                 uuid.New(),
		HotelID:            hotelID,
		Number:             number,
		Type:               roomType,
		Capacity:           capacity,
		RoomsCount:         roomsCount,
		PricePerNightCents: pricePerNightCents,
	}, nil
}

// HotelPatch carries optional fields for partial updates; nil means
// "leave unchanged". Explicit structs instead of key-checked maps.
type HotelPatch struct {
	Name        *string
	City        *string
	Stars       *int
	Description *string
}

func (h *Hotel) Apply(p HotelPatch) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return ErrEmptyName
		}
		h.Name = name
	}
	if p.Stars != nil {
		if *p.Stars < 1 || *p.Stars > 5 {
			return ErrInvalidStars
		}
		h.Stars = *p.Stars
	}
	h.City = patch.Coalesce(p.City, h.City)
	h.Description = patch.Coalesce(p.Description, h.Description)
	return nil
}

type RoomPatch struct {
	Number             *string
	Type               *RoomType
	Capacity           *int
	RoomsCount         *int
	PricePerNightCents *int64
}

func (r *Room) Apply(p RoomPatch) error {
	r.Number = patch.Coalesce(p.Number, r.Number)
	if p.Type != nil {
		if !p.Type.IsValid() {
			return ErrInvalidRoomType
		}
		r.Type = *p.Type
	}
	if p.Capacity != nil {
		if *p.Capacity < 1 {
			return ErrInvalidCapacity
		}
		r.Capacity = *p.Capacity
	}
	if p.RoomsCount != nil {
		if *p.RoomsCount < 1 {
			return ErrInvalidRoomCount
		}
		r.RoomsCount = *p.RoomsCount
	}
	if p.PricePerNightCents != nil {
		if *p.PricePerNightCents < 0 {
			return ErrNegativePrice
		}
		r.PricePerNightCents = *p.PricePerNightCents
	}
	return nil
}
