package entity

import (
	"time"

	"github.com/google/uuid"
)

// Showtime is one scheduled screening. ShowDate is the UTC midnight of the
// calendar day; ShowTime is the full UTC timestamp of the slot on that day.
// (room_id, show_date, show_time) is unique among non-deleted rows; the
// database index idx_showtimes_room_slot enforces it.
type Showtime struct {
	Base
	MovieID  uuid.UUID `db:"movie_id"`
	RoomID   uuid.UUID `db:"room_id"`
	CinemaID uuid.UUID `db:"cinema_id"` // denormalized from the room
	ShowDate time.Time `db:"show_date"`
	ShowTime time.Time `db:"show_time"`
	Price    float64   `db:"price"`
}

// SlotKey identifies the slot a showtime occupies. Two showtimes conflict
// exactly when their slot keys match, regardless of movie.
func (s *Showtime) SlotKey() string {
	return SlotKey(s.RoomID, s.ShowDate, s.ShowTime)
}

// SlotKey builds the room/date/time identity string used for conflict
// detection. Date and time are normalized to UTC before formatting.
func SlotKey(roomID uuid.UUID, date, t time.Time) string {
	return roomID.String() + "|" + date.UTC().Format("2006-01-02") + "|" + t.UTC().Format("15:04")
}
