package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-admin/internal/dto/request"
	"cinema-admin/internal/usecase"
	"cinema-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EmployeeHandler struct {
	service usecase.EmployeeService
	log     *zap.Logger
}

func NewEmployeeHandler(service usecase.EmployeeService, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		service: service,
		log:     log.With(zap.String("handler", "employee")),
	}
}

// GetEmployees handles GET /api/employees
func (h *EmployeeHandler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	var search *string
	if q := query.Get("search"); q != "" {
		search = &q
	}

	employees, err := h.service.GetEmployees(r.Context(), req, search)
	if err != nil {
		handleServiceError(h.log, w, err, "get employees")
		return
	}

	utils.ResponseSuccess(w, "success", employees)
}

// GetEmployeeByID handles GET /api/employees/{id}
func (h *EmployeeHandler) GetEmployeeByID(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		utils.ResponseBadRequest(w, "Employee ID is required", nil)
		return
	}

	employee, err := h.service.GetEmployeeByID(r.Context(), employeeID)
	if err != nil {
		handleServiceError(h.log, w, err, "get employee by ID")
		return
	}

	utils.ResponseSuccess(w, "success", employee)
}

// CreateEmployee handles POST /api/employees
func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req request.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	employee, err := h.service.CreateEmployee(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create employee")
		return
	}

	utils.ResponseCreated(w, "success", employee)
}

// UpdateEmployee handles PUT /api/employees/{id}
func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		utils.ResponseBadRequest(w, "Employee ID is required", nil)
		return
	}

	var req request.EmployeeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	employee, err := h.service.UpdateEmployee(r.Context(), employeeID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update employee")
		return
	}

	utils.ResponseSuccess(w, "success", employee)
}

// DeleteEmployee handles DELETE /api/employees/{id}
func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		utils.ResponseBadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := h.service.DeleteEmployee(r.Context(), employeeID); err != nil {
		handleServiceError(h.log, w, err, "delete employee")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
