// Package repository defines error types that are reused across multiple
// repositories.  These sentinel values let handlers distinguish failure
// scenarios without inspecting driver errors: ErrEmailExists maps to 409,
// the *NotFound values to 404.
package repository

import "errors"

// ErrEmailExists is returned when registration hits the unique email index.
var ErrEmailExists = errors.New("email already exists")

// ErrRoomNotFound is returned when a room id resolves to no row.
var ErrRoomNotFound = errors.New("room not found")

// ErrBookingNotFound is returned when a booking id resolves to no row owned
// by the calling identity.  A foreign id and someone else's booking are
// deliberately indistinguishable.
var ErrBookingNotFound = errors.New("booking not found")

// ErrUserNotFound is returned when an email resolves to no user row.
var ErrUserNotFound = errors.New("user not found")
