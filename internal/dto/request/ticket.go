package request

type CreateTicketRequest struct {
	CustomerID string   `json:"customer" validate:"required,uuid4"`
	ShowtimeID string   `json:"showtime" validate:"required,uuid4"`
	SeatIDs    []string `json:"seat_ids" validate:"required,min=1,dive,uuid4"`
	// Status defaults to pending when omitted.
	Status       *string `json:"status,omitempty" validate:"omitempty,oneof=pending reserved confirmed"`
	DiscountCode *string `json:"discount_code,omitempty"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reserved confirmed cancelled expired"`
}

type CustomerRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=100"`
	Email string  `json:"email" validate:"required,email"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,min=6,max=20"`
}

type CustomerUpdateRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,min=6,max=20"`
}
