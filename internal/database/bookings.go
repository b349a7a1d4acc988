package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shareit/internal/models"
)

const bookingDetailsColumns = `
        b.id, b.item_id, b.booker_id, b.start_date, b.end_date, b.status, b.created_at, b.updated_at,
        i.id, i.name, i.description, i.available, i.owner_id, i.request_id, i.created_at, i.updated_at,
        u.id, u.name, u.email, u.created_at, u.updated_at`

const bookingDetailsFrom = `
        FROM bookings AS b
        JOIN items AS i ON i.id = b.item_id
        JOIN users AS u ON u.id = b.booker_id`

func scanBookingDetails(row interface{ Scan(...any) error }) (*models.BookingDetails, error) {
	var bd models.BookingDetails
	err := row.Scan(
		&bd.ID, &bd.ItemID, &bd.BookerID, &bd.Start, &bd.End, &bd.Status, &bd.CreatedAt, &bd.UpdatedAt,
		&bd.Item.ID, &bd.Item.Name, &bd.Item.Description, &bd.Item.Available,
		&bd.Item.OwnerID, &bd.Item.RequestID, &bd.Item.CreatedAt, &bd.Item.UpdatedAt,
		&bd.Booker.ID, &bd.Booker.Name, &bd.Booker.Email, &bd.Booker.CreatedAt, &bd.Booker.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bd, nil
}

func (db *DB) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `INSERT INTO bookings (item_id, booker_id, start_date, end_date, status, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?, ?)`
	now := time.Now()
	result, err := db.db.ExecContext(ctx, query,
		booking.ItemID,
		booking.BookerID,
		booking.Start,
		booking.End,
		booking.Status,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	booking.ID = id
	booking.CreatedAt = now
	booking.UpdatedAt = now
	return nil
}

func (db *DB) GetBooking(ctx context.Context, id int64) (*models.BookingDetails, error) {
	query := `SELECT` + bookingDetailsColumns + bookingDetailsFrom + ` WHERE b.id = ?`
	bd, err := scanBookingDetails(db.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return bd, nil
}

func (db *DB) UpdateBookingStatus(ctx context.Context, id int64, status models.Status) error {
	query := `UPDATE bookings SET status = ?, updated_at = ? WHERE id = ?`
	_, err := db.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	return nil
}

// GetBookerBookings возвращает бронирования арендатора, отфильтрованные
// по состоянию, от новых к старым по дате начала.
func (db *DB) GetBookerBookings(ctx context.Context, bookerID int64, state models.State, limit, offset int) ([]*models.BookingDetails, error) {
	return db.queryBookingsByState(ctx, "b.booker_id = ?", bookerID, state, limit, offset)
}

// GetOwnerBookings возвращает бронирования вещей, принадлежащих владельцу.
func (db *DB) GetOwnerBookings(ctx context.Context, ownerID int64, state models.State, limit, offset int) ([]*models.BookingDetails, error) {
	return db.queryBookingsByState(ctx, "i.owner_id = ?", ownerID, state, limit, offset)
}

func (db *DB) queryBookingsByState(ctx context.Context, who string, id int64, state models.State, limit, offset int) ([]*models.BookingDetails, error) {
	now := time.Now()
	args := []any{id}

	var condition string
	switch state {
	case models.StateAll:
		condition = ""
	case models.StateCurrent:
		condition = " AND b.start_date <= ? AND b.end_date >= ?"
		args = append(args, now, now)
	case models.StatePast:
		condition = " AND b.end_date <= ?"
		args = append(args, now)
	case models.StateFuture:
		condition = " AND b.start_date > ?"
		args = append(args, now)
	case models.StateWaiting, models.StateRejected:
		condition = " AND b.status = ?"
		args = append(args, models.Status(state))
	default:
		return nil, fmt.Errorf("unsupported booking state filter: %s", state)
	}

	query := `SELECT` + bookingDetailsColumns + bookingDetailsFrom +
		` WHERE ` + who + condition +
		` ORDER BY b.start_date DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := db.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.BookingDetails
	for rows.Next() {
		bd, err := scanBookingDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, bd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}
	return bookings, nil
}

// GetLastBooking возвращает бронирование вещи с самым поздним началом
// в прошлом, либо nil, если такого нет.
func (db *DB) GetLastBooking(ctx context.Context, itemID int64) (*models.Booking, error) {
	query := `SELECT id, item_id, booker_id, start_date, end_date, status, created_at, updated_at
              FROM bookings WHERE item_id = ? AND start_date < ?
              ORDER BY start_date DESC LIMIT 1`
	return db.queryOptionalBooking(ctx, query, itemID, time.Now())
}

// GetNextBooking возвращает ближайшее будущее подтвержденное бронирование
// вещи, либо nil, если такого нет.
func (db *DB) GetNextBooking(ctx context.Context, itemID int64) (*models.Booking, error) {
	query := `SELECT id, item_id, booker_id, start_date, end_date, status, created_at, updated_at
              FROM bookings WHERE item_id = ? AND start_date > ? AND status = ?
              ORDER BY start_date ASC LIMIT 1`
	return db.queryOptionalBooking(ctx, query, itemID, time.Now(), models.StatusApproved)
}

// HasPastBooking сообщает, завершал ли пользователь аренду вещи.
func (db *DB) HasPastBooking(ctx context.Context, itemID, bookerID int64) (bool, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE item_id = ? AND booker_id = ? AND end_date < ?`
	var count int
	err := db.db.QueryRowContext(ctx, query, itemID, bookerID, time.Now()).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check past bookings: %w", err)
	}
	return count > 0, nil
}

func (db *DB) queryOptionalBooking(ctx context.Context, query string, args ...any) (*models.Booking, error) {
	var b models.Booking
	err := db.db.QueryRowContext(ctx, query, args...).Scan(
		&b.ID, &b.ItemID, &b.BookerID, &b.Start, &b.End, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query booking: %w", err)
	}
	return &b, nil
}
