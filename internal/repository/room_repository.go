package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/hostel-room-booking/internal/model"
)

// PageSize is the fixed number of rooms per listing page.  The frontend
// computes its page count from the total returned alongside each page.
const PageSize = 4

// PageOffset converts a zero-based page number into a row offset.  Negative
// pages (including the fallback for a non-numeric query value) clamp to 0.
func PageOffset(page int) int {
	if page < 0 {
		return 0
	}
	return page * PageSize
}

// RoomFilter restricts and orders the room listing.  MaxPriceCents of 0 means
// no price cap.  SortDir follows the wire encoding: +1 ascending by price,
// -1 descending, 0 unsorted.
type RoomFilter struct {
	MaxPriceCents uint32
	SortDir       int
	Page          int
}

// RoomSummary is the listing projection: only the fields the room grid needs.
type RoomSummary struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	PriceCents     uint32 `json:"price"`
	ThumbnailURL   string `json:"thumbnail"`
	SpecialOffer   bool   `json:"specialOffer"`
	SeatsAvailable int32  `json:"seatsAvailable"`
	ReviewCount    uint32 `json:"reviewCount"`
}

// RoomRepo provides read and mutation access to the rooms table.
type RoomRepo struct{ DB *sql.DB }

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{DB: db} }

// List returns one page of projected rooms plus the total number of rooms
// matching the filter with pagination ignored.
func (r *RoomRepo) List(ctx context.Context, f RoomFilter) ([]RoomSummary, int, error) {
	where := ""
	args := []interface{}{}
	if f.MaxPriceCents > 0 {
		where = " WHERE price_cents <= ?"
		args = append(args, f.MaxPriceCents)
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM rooms"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	order := ""
	switch {
	case f.SortDir > 0:
		order = " ORDER BY price_cents ASC"
	case f.SortDir < 0:
		order = " ORDER BY price_cents DESC"
	}

	q := "SELECT id,name,price_cents,thumbnail_url,special_offer,seats_available,review_count FROM rooms" +
		where + order + " LIMIT ? OFFSET ?"
	args = append(args, PageSize, PageOffset(f.Page))

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]RoomSummary, 0, PageSize)
	for rows.Next() {
		var s RoomSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.PriceCents, &s.ThumbnailURL,
			&s.SpecialOffer, &s.SeatsAvailable, &s.ReviewCount); err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

// GetByID fetches a full room record.  Returns ErrRoomNotFound when the id
// resolves to no row.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	var m model.Room
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,price_cents,thumbnail_url,special_offer,seats_available,review_count,description FROM rooms WHERE id=? LIMIT 1",
		id).Scan(&m.ID, &m.Name, &m.PriceCents, &m.ThumbnailURL, &m.SpecialOffer,
		&m.SeatsAvailable, &m.ReviewCount, &m.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Room{}, ErrRoomNotFound
	}
	return m, err
}

// RoomMutation carries the two independent room updates.  SeatsBooked, when
// set, is subtracted from seats_available in a single UPDATE; there is no
// floor check and no lock, so a concurrent pair of bookings can drive the
// count negative.  ReviewCount, when set, overwrites review_count with the
// client-computed total.
type RoomMutation struct {
	SeatsBooked *int32
	ReviewCount *uint32
}

// ApplyMutation applies whichever fields of m are present.  Returns
// ErrRoomNotFound when the id matches no row.  Calling it with an empty
// mutation is a caller bug rejected at the handler layer.
func (r *RoomRepo) ApplyMutation(ctx context.Context, id uint64, m RoomMutation) error {
	sets := []string{}
	args := []interface{}{}
	if m.SeatsBooked != nil {
		sets = append(sets, "seats_available = seats_available - ?")
		args = append(args, *m.SeatsBooked)
	}
	if m.ReviewCount != nil {
		sets = append(sets, "review_count = ?")
		args = append(args, *m.ReviewCount)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	res, err := r.DB.ExecContext(ctx, "UPDATE rooms SET "+strings.Join(sets, ", ")+" WHERE id=?", args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Either the row does not exist or the values were already equal;
		// confirm existence so a vanished room still reports 404.
		var one int
		if err := r.DB.QueryRowContext(ctx, "SELECT 1 FROM rooms WHERE id=? LIMIT 1", id).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrRoomNotFound
			}
			return err
		}
	}
	return nil
}
