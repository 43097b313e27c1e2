package response

import (
	"time"

	"cinema-admin/internal/data/entity"
)

type CinemaResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CinemaDetailResponse struct {
	CinemaResponse
	Rooms []RoomResponse `json:"rooms,omitempty"`
}

type RoomResponse struct {
	ID        string            `json:"id"`
	CinemaID  string            `json:"cinema_id"`
	Name      string            `json:"name"`
	Status    entity.RoomStatus `json:"status"`
	SeatCount int               `json:"seat_count"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Helper converters
func CinemaToResponse(cinema *entity.Cinema) CinemaResponse {
	return CinemaResponse{
		ID:        cinema.ID.String(),
		Name:      cinema.Name,
		Address:   cinema.Address,
		City:      cinema.City,
		Phone:     cinema.Phone,
		CreatedAt: cinema.CreatedAt,
		UpdatedAt: cinema.UpdatedAt,
	}
}

func RoomToResponse(room *entity.Room, seatCount int) RoomResponse {
	return RoomResponse{
		ID:        room.ID.String(),
		CinemaID:  room.CinemaID.String(),
		Name:      room.Name,
		Status:    room.Status,
		SeatCount: seatCount,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}
