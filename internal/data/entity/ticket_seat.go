package entity

import "github.com/google/uuid"

type TicketSeat struct {
	BaseSimple
	TicketID uuid.UUID `db:"ticket_id"`
	SeatID   uuid.UUID `db:"seat_id"`
}
