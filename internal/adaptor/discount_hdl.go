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

type DiscountHandler struct {
	service usecase.DiscountService
	log     *zap.Logger
}

func NewDiscountHandler(service usecase.DiscountService, log *zap.Logger) *DiscountHandler {
	return &DiscountHandler{
		service: service,
		log:     log.With(zap.String("handler", "discount")),
	}
}

// GetDiscounts handles GET /api/discounts
func (h *DiscountHandler) GetDiscounts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
	activeOnly := query.Get("active") == "true"

	discounts, err := h.service.GetDiscounts(r.Context(), req, activeOnly)
	if err != nil {
		handleServiceError(h.log, w, err, "get discounts")
		return
	}

	utils.ResponseSuccess(w, "success", discounts)
}

// GetDiscountByCode handles GET /api/discounts/code/{code}
func (h *DiscountHandler) GetDiscountByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ResponseBadRequest(w, "Discount code is required", nil)
		return
	}

	discount, err := h.service.GetDiscountByCode(r.Context(), code)
	if err != nil {
		handleServiceError(h.log, w, err, "get discount by code")
		return
	}

	utils.ResponseSuccess(w, "success", discount)
}

// CreateDiscount handles POST /api/discounts
func (h *DiscountHandler) CreateDiscount(w http.ResponseWriter, r *http.Request) {
	var req request.DiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	discount, err := h.service.CreateDiscount(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create discount")
		return
	}

	utils.ResponseCreated(w, "success", discount)
}

// UpdateDiscount handles PUT /api/discounts/{id}
func (h *DiscountHandler) UpdateDiscount(w http.ResponseWriter, r *http.Request) {
	discountID := chi.URLParam(r, "id")
	if discountID == "" {
		utils.ResponseBadRequest(w, "Discount ID is required", nil)
		return
	}

	var req request.DiscountUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	discount, err := h.service.UpdateDiscount(r.Context(), discountID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update discount")
		return
	}

	utils.ResponseSuccess(w, "success", discount)
}

// DeleteDiscount handles DELETE /api/discounts/{id}
func (h *DiscountHandler) DeleteDiscount(w http.ResponseWriter, r *http.Request) {
	discountID := chi.URLParam(r, "id")
	if discountID == "" {
		utils.ResponseBadRequest(w, "Discount ID is required", nil)
		return
	}

	if err := h.service.DeleteDiscount(r.Context(), discountID); err != nil {
		handleServiceError(h.log, w, err, "delete discount")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
