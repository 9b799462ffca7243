package queries

import (
	"context"

	"tripstack/internal/domain/hotel"
	"tripstack/internal/infra"
	"tripstack/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrHotelNotFound = errs.New("hotel not found")

type HotelQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	List(ctx context.Context, city *string, stars *int) ([]hotel.Hotel, error)
	ListRooms(ctx context.Context, filter RoomFilter) ([]hotel.Room, error)
}

type hotelQueriesImpl struct {
	hotels HotelReadStore
	rooms  RoomReadStore
}

func NewHotelQueries(hotels HotelReadStore, rooms RoomReadStore) HotelQueries {
	return &hotelQueriesImpl{hotels: hotels, rooms: rooms}
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	h, err := q.hotels.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, errs.Wrap(err, "failed to load hotel")
	}
	return h, nil
}

func (q *hotelQueriesImpl) List(ctx context.Context, city *string, stars *int) ([]hotel.Hotel, error) {
	return q.hotels.FindByCityAndStars(ctx, city, stars)
}

func (q *hotelQueriesImpl) ListRooms(ctx context.Context, filter RoomFilter) ([]hotel.Room, error) {
	return q.rooms.FindByFilters(ctx, filter)
}
