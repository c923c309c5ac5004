package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/hostel-room-booking/internal/model"
)

// ReviewRepo provides append-only access to reviews.  Rows are never mutated
// or deleted.
type ReviewRepo struct{ DB *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{DB: db} }

// Create stamps the review with the current UTC time, inserts it and
// increments the room's review_count in the same transaction.  Whatever
// TimeStamp the caller set is overwritten before insert.
func (r *ReviewRepo) Create(ctx context.Context, rev *model.Review) error {
	rev.AuthorEmail = strings.ToLower(strings.TrimSpace(rev.AuthorEmail))
	rev.TimeStamp = time.Now().UTC()

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO reviews (room_id, author_email, author_name, rating, body, time_stamp) VALUES (?,?,?,?,?,?)",
		rev.RoomID, rev.AuthorEmail, rev.AuthorName, rev.Rating, rev.Body, rev.TimeStamp)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rev.ID = uint64(id)

	upd, err := tx.ExecContext(ctx,
		"UPDATE rooms SET review_count = review_count + 1 WHERE id=?", rev.RoomID)
	if err != nil {
		return err
	}
	if n, err := upd.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrRoomNotFound
	}

	return tx.Commit()
}

// List returns reviews, newest first, optionally restricted to one room.
// A limit <= 0 means unbounded.
func (r *ReviewRepo) List(ctx context.Context, roomID uint64, limit int) ([]model.Review, error) {
	q := "SELECT id,room_id,author_email,author_name,rating,body,time_stamp FROM reviews"
	args := []interface{}{}
	if roomID != 0 {
		q += " WHERE room_id = ?"
		args = append(args, roomID)
	}
	q += " ORDER BY time_stamp DESC, id DESC"
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Review{}
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(&rev.ID, &rev.RoomID, &rev.AuthorEmail, &rev.AuthorName,
			&rev.Rating, &rev.Body, &rev.TimeStamp); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}
