package wire

import (
	"cinema-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCinema(r chi.Router, cinemaHandler *adaptor.CinemaHandler) {
	r.Route("/api/cinemas", func(r chi.Router) {
		r.Get("/", cinemaHandler.GetCinemas)
		r.Post("/", cinemaHandler.CreateCinema)
		r.Get("/{id}", cinemaHandler.GetCinemaByID)
		r.Put("/{id}", cinemaHandler.UpdateCinema)
		r.Delete("/{id}", cinemaHandler.DeleteCinema)
	})

	r.Route("/api/rooms", func(r chi.Router) {
		r.Post("/", cinemaHandler.CreateRoom)
		r.Get("/cinema/{cinemaId}", cinemaHandler.GetRoomsByCinema)
		r.Put("/{id}", cinemaHandler.UpdateRoom)
		r.Delete("/{id}", cinemaHandler.DeleteRoom)
	})
}
