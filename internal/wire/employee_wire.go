package wire

import (
	"cinema-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireEmployee(r chi.Router, employeeHandler *adaptor.EmployeeHandler) {
	r.Route("/api/employees", func(r chi.Router) {
		r.Get("/", employeeHandler.GetEmployees)
		r.Post("/", employeeHandler.CreateEmployee)
		r.Get("/{id}", employeeHandler.GetEmployeeByID)
		r.Put("/{id}", employeeHandler.UpdateEmployee)
		r.Delete("/{id}", employeeHandler.DeleteEmployee)
	})
}
