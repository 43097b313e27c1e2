package wire

import (
	"cinema-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFood(r chi.Router, foodHandler *adaptor.FoodHandler) {
	r.Route("/api/foods", func(r chi.Router) {
		r.Get("/", foodHandler.GetFoods)
		r.Post("/", foodHandler.CreateFood)
		r.Get("/{id}", foodHandler.GetFoodByID)
		r.Put("/{id}", foodHandler.UpdateFood)
		r.Delete("/{id}", foodHandler.DeleteFood)
	})
}
