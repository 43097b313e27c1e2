package request

// CreateShowtimesRequest schedules one or more screenings in a room on a
// single calendar day, one per entry in Times.
type CreateShowtimesRequest struct {
	MovieID  string   `json:"movie" validate:"required,uuid4"`
	CinemaID string   `json:"cinema" validate:"required,uuid4"`
	RoomID   string   `json:"room" validate:"required,uuid4"`
	Date     string   `json:"date" validate:"required,datetime=2006-01-02"`
	Times    []string `json:"times" validate:"required,min=1,dive,datetime=15:04"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
}

// GenerateShowtimesRequest bulk-schedules the cross product of every day in
// [StartDate, EndDate] with every entry in Times.
type GenerateShowtimesRequest struct {
	MovieID   string   `json:"movie" validate:"required,uuid4"`
	CinemaID  string   `json:"cinema" validate:"required,uuid4"`
	RoomID    string   `json:"room" validate:"required,uuid4"`
	StartDate string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string   `json:"endDate" validate:"required,datetime=2006-01-02"`
	Times     []string `json:"times" validate:"required,min=1,dive,datetime=15:04"`
	Price     *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
}

type UpdateShowtimeRequest struct {
	MovieID  *string  `json:"movie,omitempty" validate:"omitempty,uuid4"`
	CinemaID *string  `json:"cinema,omitempty" validate:"omitempty,uuid4"`
	RoomID   *string  `json:"room,omitempty" validate:"omitempty,uuid4"`
	Date     *string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time     *string  `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
}
