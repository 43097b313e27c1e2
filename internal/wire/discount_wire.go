package wire

import (
	"cinema-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDiscount(r chi.Router, discountHandler *adaptor.DiscountHandler) {
	r.Route("/api/discounts", func(r chi.Router) {
		r.Get("/", discountHandler.GetDiscounts)
		r.Post("/", discountHandler.CreateDiscount)
		r.Get("/code/{code}", discountHandler.GetDiscountByCode)
		r.Put("/{id}", discountHandler.UpdateDiscount)
		r.Delete("/{id}", discountHandler.DeleteDiscount)
	})
}
