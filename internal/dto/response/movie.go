package response

import (
	"time"

	"cinema-admin/internal/data/entity"
)

type MovieResponse struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Description       *string            `json:"description,omitempty"`
	PosterURL         *string            `json:"poster_url,omitempty"`
	ReleaseDate       string             `json:"release_date"`
	DurationInMinutes int                `json:"duration_in_minutes"`
	Status            entity.MovieStatus `json:"status"`
	Genres            []string           `json:"genres"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

type GenreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie, genres []string) MovieResponse {
	if genres == nil {
		genres = []string{}
	}

	return MovieResponse{
		ID:                movie.ID.String(),
		Title:             movie.Title,
		Description:       movie.Description,
		PosterURL:         movie.PosterURL,
		ReleaseDate:       movie.ReleaseDate.Format("2006-01-02"),
		DurationInMinutes: movie.DurationInMinutes,
		Status:            movie.Status,
		Genres:            genres,
		CreatedAt:         movie.CreatedAt,
		UpdatedAt:         movie.UpdatedAt,
	}
}

func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID.String(),
		Name: genre.Name,
	}
}
