package wire

import (
	"cinema-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler) {
	r.Route("/api/tickets", func(r chi.Router) {
		r.Get("/", ticketHandler.GetTickets)
		r.Post("/", ticketHandler.CreateTicket)
		r.Get("/{id}", ticketHandler.GetTicketByID)
		r.Put("/{id}/status", ticketHandler.UpdateTicketStatus)
	})
}
