package request

type SeatRequest struct {
	RoomID     string  `json:"room" validate:"required,uuid4"`
	SeatRow    string  `json:"seat_row" validate:"required,len=1,alpha"`
	SeatColumn int     `json:"seat_column" validate:"required,min=1,max=99"`
	Price      float64 `json:"price" validate:"required,min=0"`
}

// SeatGridRequest generates a full seat layout for a room: rows A..(A+Rows-1)
// each with columns 1..Columns.
type SeatGridRequest struct {
	RoomID  string  `json:"room" validate:"required,uuid4"`
	Rows    int     `json:"rows" validate:"required,min=1,max=26"`
	Columns int     `json:"columns" validate:"required,min=1,max=99"`
	Price   float64 `json:"price" validate:"required,min=0"`
}

type SeatUpdateRequest struct {
	SeatRow    *string  `json:"seat_row,omitempty" validate:"omitempty,len=1,alpha"`
	SeatColumn *int     `json:"seat_column,omitempty" validate:"omitempty,min=1,max=99"`
	Price      *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
}
