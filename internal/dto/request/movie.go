package request

type MovieRequest struct {
	Title             string   `json:"title" validate:"required,min=1,max=200"`
	Description       *string  `json:"description,omitempty"`
	PosterURL         *string  `json:"poster_url,omitempty"`
	ReleaseDate       string   `json:"release_date" validate:"required,datetime=2006-01-02"`
	DurationInMinutes int      `json:"duration_in_minutes" validate:"required,min=1,max=999"`
	Status            string   `json:"status" validate:"required,oneof=coming_soon now_showing ended"`
	GenreIDs          []string `json:"genre_ids,omitempty" validate:"dive,uuid4"`
}

type MovieUpdateRequest struct {
	Title             *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description       *string  `json:"description,omitempty"`
	PosterURL         *string  `json:"poster_url,omitempty"`
	ReleaseDate       *string  `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DurationInMinutes *int     `json:"duration_in_minutes,omitempty" validate:"omitempty,min=1,max=999"`
	Status            *string  `json:"status,omitempty" validate:"omitempty,oneof=coming_soon now_showing ended"`
	GenreIDs          []string `json:"genre_ids,omitempty" validate:"dive,uuid4"`
}

type GenreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}
