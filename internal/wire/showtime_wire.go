package wire

import (
	"cinema-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler) {
	r.Route("/api/showtimes", func(r chi.Router) {
		r.Get("/", showtimeHandler.GetShowtimes)
		r.Post("/", showtimeHandler.CreateShowtimes)
		r.Post("/generate", showtimeHandler.GenerateShowtimes)
		r.Get("/room/{roomId}", showtimeHandler.GetShowtimesByRoom)
		r.Get("/{id}", showtimeHandler.GetShowtimeByID)
		r.Put("/{id}", showtimeHandler.UpdateShowtime)
		r.Delete("/{id}", showtimeHandler.DeleteShowtime)
		r.Get("/{id}/seat-status", showtimeHandler.GetSeatStatus)
	})
}
