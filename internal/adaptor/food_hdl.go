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

type FoodHandler struct {
	service usecase.FoodService
	log     *zap.Logger
}

func NewFoodHandler(service usecase.FoodService, log *zap.Logger) *FoodHandler {
	return &FoodHandler{
		service: service,
		log:     log.With(zap.String("handler", "food")),
	}
}

// GetFoods handles GET /api/foods
func (h *FoodHandler) GetFoods(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	var category *string
	if c := query.Get("category"); c != "" {
		category = &c
	}

	foods, err := h.service.GetFoods(r.Context(), req, category)
	if err != nil {
		handleServiceError(h.log, w, err, "get foods")
		return
	}

	utils.ResponseSuccess(w, "success", foods)
}

// GetFoodByID handles GET /api/foods/{id}
func (h *FoodHandler) GetFoodByID(w http.ResponseWriter, r *http.Request) {
	foodID := chi.URLParam(r, "id")
	if foodID == "" {
		utils.ResponseBadRequest(w, "Food ID is required", nil)
		return
	}

	food, err := h.service.GetFoodByID(r.Context(), foodID)
	if err != nil {
		handleServiceError(h.log, w, err, "get food by ID")
		return
	}

	utils.ResponseSuccess(w, "success", food)
}

// CreateFood handles POST /api/foods
func (h *FoodHandler) CreateFood(w http.ResponseWriter, r *http.Request) {
	var req request.FoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	food, err := h.service.CreateFood(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create food")
		return
	}

	utils.ResponseCreated(w, "success", food)
}

// UpdateFood handles PUT /api/foods/{id}
func (h *FoodHandler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	foodID := chi.URLParam(r, "id")
	if foodID == "" {
		utils.ResponseBadRequest(w, "Food ID is required", nil)
		return
	}

	var req request.FoodUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	food, err := h.service.UpdateFood(r.Context(), foodID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update food")
		return
	}

	utils.ResponseSuccess(w, "success", food)
}

// DeleteFood handles DELETE /api/foods/{id}
func (h *FoodHandler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	foodID := chi.URLParam(r, "id")
	if foodID == "" {
		utils.ResponseBadRequest(w, "Food ID is required", nil)
		return
	}

	if err := h.service.DeleteFood(r.Context(), foodID); err != nil {
		handleServiceError(h.log, w, err, "delete food")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
