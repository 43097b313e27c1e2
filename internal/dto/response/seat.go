package response

import "cinema-admin/internal/data/entity"

type SeatResponse struct {
	ID         string  `json:"id"`
	RoomID     string  `json:"room_id"`
	Label      string  `json:"label"`
	SeatRow    string  `json:"seat_row"`
	SeatColumn int     `json:"seat_column"`
	Price      float64 `json:"price"`
}

// Helper converters
func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{
		ID:         seat.ID.String(),
		RoomID:     seat.RoomID.String(),
		Label:      seat.Label,
		SeatRow:    seat.SeatRow,
		SeatColumn: seat.SeatColumn,
		Price:      seat.Price,
	}
}
