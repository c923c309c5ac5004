package model

import "time"

// Review represents a row in the append-only `reviews` table.  Reviews are
// never mutated or deleted.  TimeStamp is always assigned by the server at
// insert time; any client-supplied value is discarded.
//
// Fields:
//  ID          – primary key identifier.
//  RoomID      – the reviewed room.
//  AuthorEmail – identity of the author (the session token claim).
//  AuthorName  – display name captured at insert time.
//  Rating      – 1..5 star rating.
//  Body        – review text.
//  TimeStamp   – server-assigned UTC insertion time.
type Review struct {
    ID          uint64    // reviews.id
    RoomID      uint64    // reviews.room_id
    AuthorEmail string    // reviews.author_email
    AuthorName  string    // reviews.author_name
    Rating      uint8     // reviews.rating
    Body        string    // reviews.body
    TimeStamp   time.Time // reviews.time_stamp
}
