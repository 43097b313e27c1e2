package wire

import (
	"cinema-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)
		r.Post("/", movieHandler.CreateMovie)
		r.Get("/{id}", movieHandler.GetMovieByID)
		r.Put("/{id}", movieHandler.UpdateMovie)
		r.Delete("/{id}", movieHandler.DeleteMovie)
	})

	r.Route("/api/genres", func(r chi.Router) {
		r.Get("/", movieHandler.GetGenres)
		r.Post("/", movieHandler.CreateGenre)
		r.Delete("/{id}", movieHandler.DeleteGenre)
	})
}
