package response

import (
	"time"

	"cinema-admin/internal/data/entity"
)

type TicketResponse struct {
	ID         string              `json:"id"`
	OrderID    string              `json:"order_id"`
	CustomerID string              `json:"customer_id"`
	ShowtimeID string              `json:"showtime_id"`
	TotalSeats int                 `json:"total_seats"`
	TotalPrice float64             `json:"total_price"`
	Status     entity.TicketStatus `json:"status"`
	SeatLabels []string            `json:"seat_labels,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Helper converters
func TicketToResponse(ticket *entity.Ticket, seatLabels []string) TicketResponse {
	return TicketResponse{
		ID:         ticket.ID.String(),
		OrderID:    ticket.OrderID,
		CustomerID: ticket.CustomerID.String(),
		ShowtimeID: ticket.ShowtimeID.String(),
		TotalSeats: ticket.TotalSeats,
		TotalPrice: ticket.TotalPrice,
		Status:     ticket.Status,
		SeatLabels: seatLabels,
		CreatedAt:  ticket.CreatedAt,
		UpdatedAt:  ticket.UpdatedAt,
	}
}

func CustomerToResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID.String(),
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}
