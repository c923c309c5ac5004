package model

import "time"

// User represents an application user record as stored in the `users` table.
// Accounts are created on first registration and are never updated or deleted
// through this API.  The json tags are omitted because these structs are used
// by the repository layer; handlers define separate response types.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address; doubles as the session token claim.
//  Name         – display name shown alongside bookings and reviews.
//  PhotoURL     – optional avatar URL supplied by the frontend at sign-up.
//  PasswordHash – bcrypt hash; empty when the account was created without a
//                 password (federated sign-in verified out of band).
//  CreatedAt    – timestamp of registration.
type User struct {
    ID           uint64    // users.id
    Email        string    // users.email
    Name         string    // users.name
    PhotoURL     string    // users.photo_url
    PasswordHash string    // users.password_hash (may be empty)
    CreatedAt    time.Time // users.created_at
}
