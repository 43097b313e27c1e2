package entity

import "github.com/google/uuid"

type RoomStatus string

const (
	RoomStatusActive      RoomStatus = "active"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusInactive    RoomStatus = "inactive"
)

// Room belongs to exactly one cinema. (cinema_id, name) is unique among
// non-deleted rows.
type Room struct {
	Base
	CinemaID uuid.UUID  `db:"cinema_id"`
	Name     string     `db:"name"`
	Status   RoomStatus `db:"status"`
}
