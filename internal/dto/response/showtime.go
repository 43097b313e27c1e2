package response

import (
	"time"

	"cinema-admin/internal/data/entity"
)

type ShowtimeResponse struct {
	ID         string    `json:"id"`
	MovieID    string    `json:"movie_id"`
	MovieTitle string    `json:"movie_title,omitempty"`
	CinemaID   string    `json:"cinema_id"`
	CinemaName string    `json:"cinema_name,omitempty"`
	RoomID     string    `json:"room_id"`
	RoomName   string    `json:"room_name,omitempty"`
	ShowDate   string    `json:"show_date"`
	ShowTime   string    `json:"show_time"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SkippedSlot is one candidate the scheduler declined, with the reason
// ("duplicate" or "past").
type SkippedSlot struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Reason string `json:"reason"`
}

type ScheduleSummary struct {
	Created           int `json:"created"`
	DuplicatesSkipped int `json:"duplicates_skipped"`
}

// ScheduleResult reports a whole create/generate batch. A batch where every
// candidate was skipped is still a success with Created empty.
type ScheduleResult struct {
	Created []ShowtimeResponse `json:"created"`
	Skipped []SkippedSlot      `json:"skipped"`
	Summary ScheduleSummary    `json:"summary"`
}

// Helper converters
func ShowtimeToResponse(showtime *entity.Showtime) ShowtimeResponse {
	return ShowtimeResponse{
		ID:        showtime.ID.String(),
		MovieID:   showtime.MovieID.String(),
		CinemaID:  showtime.CinemaID.String(),
		RoomID:    showtime.RoomID.String(),
		ShowDate:  showtime.ShowDate.UTC().Format("2006-01-02"),
		ShowTime:  showtime.ShowTime.UTC().Format("15:04"),
		Price:     showtime.Price,
		CreatedAt: showtime.CreatedAt,
		UpdatedAt: showtime.UpdatedAt,
	}
}

func ShowtimeToDetailResponse(showtime *entity.Showtime, movieTitle, cinemaName, roomName string) ShowtimeResponse {
	resp := ShowtimeToResponse(showtime)
	resp.MovieTitle = movieTitle
	resp.CinemaName = cinemaName
	resp.RoomName = roomName
	return resp
}
