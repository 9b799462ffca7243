package repository

import (
	"context"
	"errors"
	"fmt"

	"tripstack/internal/domain/hotel"
	"tripstack/internal/infra"
	"tripstack/internal/usecase/commands"
	"tripstack/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HotelRepository struct {
	pool *pgxpool.Pool
}

func NewHotelRepository(pool *pgxpool.Pool) *HotelRepository {
	return &HotelRepository{pool: pool}
}

func (r *HotelRepository) CreateHotel(ctx context.Context, h *hotel.Hotel) error {
	query := `
		INSERT INTO hotels (id, name, city, stars, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
	`

	_, err := r.pool.Exec(ctx, query, h.ID, h.Name, h.City, h.Stars, h.Description)
	if err != nil {
		return infra.WrapRepoErr("failed to create hotel", err)
	}
	return nil
}

func (r *HotelRepository) UpdateHotel(ctx context.Context, h *hotel.Hotel) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE hotels SET name = $2, city = $3, stars = $4, description = $5, updated_at = now() WHERE id = $1`,
		h.ID, h.Name, h.City, h.Stars, h.Description,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HotelRepository) DeleteHotel(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM hotels WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HotelRepository) CreateRoom(ctx context.Context, room *hotel.Room) error {
	query := `
		INSERT INTO rooms (id, hotel_id, number, room_type, capacity, rooms_count,
		                   price_per_night_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
	`

	_, err := r.pool.Exec(ctx, query,
		room.ID, room.HotelID, room.Number, string(room.Type),
		room.Capacity, room.RoomsCount, room.PricePerNightCents,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

func (r *HotelRepository) UpdateRoom(ctx context.Context, room *hotel.Room) error {
	query := `
		UPDATE rooms
		SET number = $2, room_type = $3, capacity = $4, rooms_count = $5,
		    price_per_night_cents = $6, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		room.ID, room.Number, string(room.Type), room.Capacity, room.RoomsCount, room.PricePerNightCents,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HotelRepository) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HotelRepository) HotelByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	return r.FindByID(ctx, id)
}

func (r *HotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	query := `
		SELECT id, name, city, stars, description, created_at, updated_at
		FROM hotels
		WHERE id = $1
	`

	var h hotel.Hotel
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.Name, &h.City, &h.Stars, &h.Description, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel", err)
	}
	return &h, nil
}

func (r *HotelRepository) FindByCityAndStars(ctx context.Context, city *string, stars *int) ([]hotel.Hotel, error) {
	query := `
		SELECT id, name, city, stars, description, created_at, updated_at
		FROM hotels
		WHERE ($1::text IS NULL OR city = $1)
		  AND ($2::int IS NULL OR stars = $2)
		ORDER BY stars DESC, name ASC
	`

	rows, err := r.pool.Query(ctx, query, city, stars)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query hotels", err)
	}
	defer rows.Close()

	var hotels []hotel.Hotel
	for rows.Next() {
		var h hotel.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.City, &h.Stars, &h.Description, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel", err)
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hotels", err)
	}

	return hotels, nil
}

func (r *HotelRepository) RoomByID(ctx context.Context, id uuid.UUID) (*hotel.Room, error) {
	query := `
		SELECT id, hotel_id, number, room_type, capacity, rooms_count,
		       price_per_night_cents, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var (
		room     hotel.Room
		roomType string
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&room.ID, &room.HotelID, &room.Number, &roomType,
		&room.Capacity, &room.RoomsCount, &room.PricePerNightCents,
		&room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}

	room.Type = hotel.RoomType(roomType)
	return &room, nil
}

// RoomReaderRepository serves the write side's room lookups as snapshots,
// keeping commands decoupled from the read-side room type.
type RoomReaderRepository struct {
	pool *pgxpool.Pool
}

func NewRoomReaderRepository(pool *pgxpool.Pool) *RoomReaderRepository {
	return &RoomReaderRepository{pool: pool}
}

func (r *RoomReaderRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.RoomSnapshot, error) {
	query := `
		SELECT id, hotel_id, number, capacity, price_per_night_cents
		FROM rooms
		WHERE id = $1
	`

	var snap commands.RoomSnapshot
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.HotelID, &snap.Number, &snap.Capacity, &snap.PricePerNightCents,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return &snap, nil
}

func (r *HotelRepository) FindByFilters(ctx context.Context, filter queries.RoomFilter) ([]hotel.Room, error) {
	query := `
		SELECT r.id, r.hotel_id, r.number, r.room_type, r.capacity, r.rooms_count,
		       r.price_per_night_cents, r.created_at, r.updated_at
		FROM rooms r
		JOIN hotels h ON h.id = r.hotel_id
		WHERE 1=1
	`
	args := []any{}

	if filter.HotelID != nil {
		args = append(args, *filter.HotelID)
		query += fmt.Sprintf(" AND r.hotel_id = $%d", len(args))
	}
	if filter.City != nil {
		args = append(args, *filter.City)
		query += fmt.Sprintf(" AND h.city = $%d", len(args))
	}
	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		query += fmt.Sprintf(" AND r.room_type = $%d", len(args))
	}
	if filter.MaxPriceCents != nil {
		args = append(args, *filter.MaxPriceCents)
		query += fmt.Sprintf(" AND r.price_per_night_cents <= $%d", len(args))
	}

	query += " ORDER BY r.price_per_night_cents ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query rooms", err)
	}
	defer rows.Close()

	var rooms []hotel.Room
	for rows.Next() {
		var (
			room     hotel.Room
			roomType string
		)
		err := rows.Scan(
			&room.ID, &room.HotelID, &room.Number, &roomType,
			&room.Capacity, &room.RoomsCount, &room.PricePerNightCents,
			&room.CreatedAt, &room.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		room.Type = hotel.RoomType(roomType)
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}

	return rooms, nil
}
