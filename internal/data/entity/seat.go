package entity

import "github.com/google/uuid"

// Seat label is row letter + column number ("A1"). (room_id, label) is unique.
type Seat struct {
	Base
	RoomID     uuid.UUID `db:"room_id"`
	Label      string    `db:"label"`
	SeatRow    string    `db:"seat_row"`
	SeatColumn int       `db:"seat_column"`
	Price      float64   `db:"price"`
}
