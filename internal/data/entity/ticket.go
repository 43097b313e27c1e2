package entity

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	// TicketStatusPending is a ticket awaiting payment.
	TicketStatusPending TicketStatus = "pending"
	// TicketStatusReserved is a temporary hold, not yet committed to payment.
	TicketStatusReserved TicketStatus = "reserved"
	// TicketStatusConfirmed is a paid ticket.
	TicketStatusConfirmed TicketStatus = "confirmed"
	TicketStatusCancelled TicketStatus = "cancelled"
	TicketStatusExpired   TicketStatus = "expired"
)

// Active reports whether the ticket still claims its seats. Cancelled and
// expired tickets release them.
func (s TicketStatus) Active() bool {
	return s == TicketStatusPending || s == TicketStatusReserved || s == TicketStatusConfirmed
}

type Ticket struct {
	Base
	OrderID    string       `db:"order_id"`
	CustomerID uuid.UUID    `db:"customer_id"`
	ShowtimeID uuid.UUID    `db:"showtime_id"`
	TotalSeats int          `db:"total_seats"`
	TotalPrice float64      `db:"total_price"`
	Status     TicketStatus `db:"status"`
}

// TicketSeatDetail is one joined row of ticket + customer + seat, produced
// by the seat-status query. One ticket with three seats yields three rows.
type TicketSeatDetail struct {
	TicketID      uuid.UUID    `db:"ticket_id"`
	OrderID       string       `db:"order_id"`
	Status        TicketStatus `db:"status"`
	BookedAt      time.Time    `db:"booked_at"`
	CustomerName  string       `db:"customer_name"`
	CustomerPhone *string      `db:"customer_phone"`
	CustomerEmail string       `db:"customer_email"`
	SeatID        uuid.UUID    `db:"seat_id"`
}
