package response

// Seat states in precedence order. A seat referenced by several tickets keeps
// the highest state: booked > reserved > pending > available.
const (
	SeatStateBooked    = "booked"
	SeatStateReserved  = "reserved"
	SeatStatePending   = "pending"
	SeatStateAvailable = "available"
)

// SeatBookingInfo carries the booking behind a non-available seat. Empty for
// available seats.
type SeatBookingInfo struct {
	Status        string  `json:"status"`
	TicketID      string  `json:"ticket_id,omitempty"`
	OrderID       string  `json:"order_id,omitempty"`
	CustomerName  string  `json:"customer_name,omitempty"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	CustomerEmail string  `json:"customer_email,omitempty"`
	BookedAt      string  `json:"booked_at,omitempty"`
}

type SeatStatusStatistics struct {
	TotalSeats        int `json:"total_seats"`
	TotalBooked       int `json:"total_booked"`
	ConfirmedBookings int `json:"confirmed_bookings"`
	PendingBookings   int `json:"pending_bookings"`
	ReservedBookings  int `json:"reserved_bookings"`
}

// SeatStatusViewResponse is the reconciliation view for one showtime: every
// seat of the room appears exactly once in SeatStatus, keyed by seat id.
type SeatStatusViewResponse struct {
	ShowtimeID string                     `json:"showtime_id"`
	RoomID     string                     `json:"room_id"`
	ShowDate   string                     `json:"show_date"`
	ShowTime   string                     `json:"show_time"`
	Seats      []SeatResponse             `json:"seats"`
	SeatStatus map[string]SeatBookingInfo `json:"seat_status"`
	Statistics SeatStatusStatistics       `json:"statistics"`
}
