// Package queue defines message payloads exchanged over the message broker
// and the background consumer that drains them.
package queue

// BookingCreatedEvent is published after a booking row is inserted.  It
// carries enough for downstream consumers to log or notify without querying
// the primary database.  Note the seat decrement is a separate client call,
// so at publish time the room's seat count may not yet reflect this booking.
type BookingCreatedEvent struct {
    BookingID   uint64 `json:"booking_id"`
    RoomID      uint64 `json:"room_id"`
    GuestEmail  string `json:"guest_email"`
    BookingDate string `json:"booking_date"`
    SeatsCount  uint32 `json:"seats_count"`
    CreatedAt   string `json:"created_at"`
}
