package entity

import (
	"time"
)

type MovieStatus string

const (
	MovieStatusComingSoon MovieStatus = "coming_soon"
	MovieStatusNowShowing MovieStatus = "now_showing"
	MovieStatusEnded      MovieStatus = "ended"
)

type Movie struct {
	Base
	Title             string      `db:"title"`
	Description       *string     `db:"description"`
	PosterURL         *string     `db:"poster_url"`
	ReleaseDate       time.Time   `db:"release_date"`
	DurationInMinutes int         `db:"duration_in_minutes"`
	Status            MovieStatus `db:"status"`
}
