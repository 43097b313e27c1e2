package wire

import (
	"cinema-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCustomer(r chi.Router, customerHandler *adaptor.CustomerHandler) {
	r.Route("/api/customers", func(r chi.Router) {
		r.Get("/", customerHandler.GetCustomers)
		r.Post("/", customerHandler.CreateCustomer)
		r.Get("/{id}", customerHandler.GetCustomerByID)
		r.Put("/{id}", customerHandler.UpdateCustomer)
		r.Delete("/{id}", customerHandler.DeleteCustomer)
	})
}
