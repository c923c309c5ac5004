package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/hostel-room-booking/internal/model"
)

// BookingRepo provides CRUD operations for bookings.  A booking belongs to
// the guest email embedded in the session token; update and delete are scoped
// to that owner.  Inserting a booking does not adjust the room's seat count —
// the client issues a separate room mutation, so the two writes are not
// atomic with each other.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Create inserts a booking as-is and populates its generated ID.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	b.GuestEmail = strings.ToLower(strings.TrimSpace(b.GuestEmail))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO bookings (room_id, guest_email, booking_date, seats_count) VALUES (?,?,?,?)",
		b.RoomID, b.GuestEmail, b.BookingDate, b.SeatsCount)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// BookingFilter restricts the booking listing.  Zero values mean "no filter";
// the handler has already checked that GuestEmail, when present, equals the
// authenticated identity.
type BookingFilter struct {
	BookingDate string
	RoomID      uint64
	GuestEmail  string
}

// List returns bookings matching the filter, newest first.
func (r *BookingRepo) List(ctx context.Context, f BookingFilter) ([]model.Booking, error) {
	where := []string{}
	args := []interface{}{}
	if f.BookingDate != "" {
		where = append(where, "booking_date = ?")
		args = append(args, f.BookingDate)
	}
	if f.RoomID != 0 {
		where = append(where, "room_id = ?")
		args = append(args, f.RoomID)
	}
	if f.GuestEmail != "" {
		where = append(where, "guest_email = ?")
		args = append(args, strings.ToLower(strings.TrimSpace(f.GuestEmail)))
	}

	q := "SELECT id,room_id,guest_email,booking_date,seats_count,created_at FROM bookings"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id DESC"

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.RoomID, &b.GuestEmail, &b.BookingDate,
			&b.SeatsCount, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateDate overwrites the booking date for a booking owned by guestEmail.
// Returns ErrBookingNotFound when no owned row matches the id.
func (r *BookingRepo) UpdateDate(ctx context.Context, id uint64, guestEmail, newDate string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE bookings SET booking_date=? WHERE id=? AND guest_email=?",
		newDate, id, strings.ToLower(strings.TrimSpace(guestEmail)))
	if err != nil {
		return err
	}
	return requireRow(ctx, r.DB, res, id, guestEmail)
}

// Delete removes a booking owned by guestEmail.  Returns ErrBookingNotFound
// when no owned row matches the id.
func (r *BookingRepo) Delete(ctx context.Context, id uint64, guestEmail string) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM bookings WHERE id=? AND guest_email=?",
		id, strings.ToLower(strings.TrimSpace(guestEmail)))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// requireRow maps a zero-row UPDATE to ErrBookingNotFound, tolerating the
// no-op case where the new value equals the stored one.
func requireRow(ctx context.Context, db *sql.DB, res sql.Result, id uint64, guestEmail string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	var one int
	err = db.QueryRowContext(ctx,
		"SELECT 1 FROM bookings WHERE id=? AND guest_email=? LIMIT 1",
		id, strings.ToLower(strings.TrimSpace(guestEmail))).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrBookingNotFound
	}
	return err
}
