package model

import "time"

// Booking represents a row in the `bookings` table.  A booking reserves a
// number of seats in one room for one date.  Inserting a booking does not
// itself touch the room's seat count; the client issues a separate room
// mutation, so the two writes are not atomic with each other.
//
// Fields:
//  ID          – primary key identifier.
//  RoomID      – the booked room.
//  GuestEmail  – identity of the booking owner (the session token claim).
//  BookingDate – the reserved date (date precision, stored UTC).
//  SeatsCount  – seats consumed by this booking.
//  CreatedAt   – timestamp of insertion.
type Booking struct {
    ID          uint64    // bookings.id
    RoomID      uint64    // bookings.room_id
    GuestEmail  string    // bookings.guest_email
    BookingDate string    // bookings.booking_date (YYYY-MM-DD)
    SeatsCount  uint32    // bookings.seats_count
    CreatedAt   time.Time // bookings.created_at
}
