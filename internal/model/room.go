package model

// Room represents a bookable room as stored in the `rooms` table.
//
// Fields:
//  ID             – primary key identifier of the room.
//  Name           – display name of the room.
//  PriceCents     – nightly price in cents.
//  ThumbnailURL   – listing image.
//  SpecialOffer   – whether the room is flagged as a special offer.
//  SeatsAvailable – remaining capacity; decremented when bookings are made.
//                   Nothing enforces a floor of zero: two concurrent bookings
//                   of the last seats can both decrement (see Booking).
//  ReviewCount    – number of reviews; incremented on review insert but also
//                   overwritable through the room mutation endpoint.
//  Description    – long-form description shown on the detail page.
type Room struct {
    ID             uint64 // rooms.id
    Name           string // rooms.name
    PriceCents     uint32 // rooms.price_cents
    ThumbnailURL   string // rooms.thumbnail_url
    SpecialOffer   bool   // rooms.special_offer
    SeatsAvailable int32  // rooms.seats_available
    ReviewCount    uint32 // rooms.review_count
    Description    string // rooms.description
}
