package repository

import (
	"context"
	"errors"
	"time"

	"tripstack/internal/domain/booking"
	"tripstack/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// CreateExclusive admits a booking under a room-scoped lock. The room row is
// locked FOR UPDATE, so of two racing overlapping requests one waits until
// the other commits and then fails the overlap check with KindConflict.
func (r *BookingRepository) CreateExclusive(ctx context.Context, b *booking.Booking) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return infra.WrapRepoErr("failed to begin booking transaction", err)
	}
	defer tx.Rollback(ctx)

	var roomID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, b.RoomID()).Scan(&roomID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock room", err)
	}

	var overlapping int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM bookings
		WHERE room_id = $1
		  AND is_active
		  AND check_in < $2
		  AND check_out > $3
	`, b.RoomID(), b.Stay().CheckOut(), b.Stay().CheckIn()).Scan(&overlapping)
	if err != nil {
		return infra.WrapRepoErr("failed to check booking overlap", err)
	}
	if overlapping > 0 {
		return infra.WrapRepoErr("room already booked for the requested dates", nil, infra.KindConflict)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bookings (id, user_id, room_id, check_in, check_out,
		                      total_price_cents, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
	`, b.ID(), b.UserID(), b.RoomID(), b.Stay().CheckIn(), b.Stay().CheckOut(), b.TotalPriceCents(), b.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query := `
		SELECT id, user_id, room_id, check_in, check_out,
		       total_price_cents, is_active, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	b, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, roomID uuid.UUID, stay booking.StayInterval) ([]*booking.Booking, error) {
	query := `
		SELECT id, user_id, room_id, check_in, check_out,
		       total_price_cents, is_active, created_at, updated_at
		FROM bookings
		WHERE room_id = $1
		  AND is_active
		  AND check_in < $2
		  AND check_out > $3
		ORDER BY check_in ASC
	`

	rows, err := r.pool.Query(ctx, query, roomID, stay.CheckOut(), stay.CheckIn())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query overlapping bookings", err)
	}
	return collectBookings(rows)
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]*booking.Booking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, room_id, check_in, check_out,
		       total_price_cents, is_active, created_at, updated_at
		FROM bookings
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	return collectBookings(rows)
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, room_id, check_in, check_out,
		       total_price_cents, is_active, created_at, updated_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query user bookings", err)
	}
	return collectBookings(rows)
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, userID, roomID   uuid.UUID
		checkIn, checkOut    time.Time
		totalPriceCents      int64
		active               bool
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &userID, &roomID, &checkIn, &checkOut, &totalPriceCents, &active, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		id, userID, roomID,
		booking.ReconstructStayInterval(checkIn, checkOut),
		totalPriceCents, active,
		createdAt, updatedAt,
	), nil
}

func collectBookings(rows pgx.Rows) ([]*booking.Booking, error) {
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return bookings, nil
}
