package wire

import (
	"cinema-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeat(r chi.Router, seatHandler *adaptor.SeatHandler) {
	r.Route("/api/seats", func(r chi.Router) {
		r.Post("/", seatHandler.CreateSeat)
		r.Post("/generate", seatHandler.GenerateSeatGrid)
		r.Get("/room/{roomId}", seatHandler.GetSeatsByRoom)
		r.Put("/{id}", seatHandler.UpdateSeat)
		r.Delete("/{id}", seatHandler.DeleteSeat)
	})
}
