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

type SeatHandler struct {
	service usecase.SeatService
	log     *zap.Logger
}

func NewSeatHandler(service usecase.SeatService, log *zap.Logger) *SeatHandler {
	return &SeatHandler{
		service: service,
		log:     log.With(zap.String("handler", "seat")),
	}
}

// GetSeatsByRoom handles GET /api/seats/room/{roomId}
func (h *SeatHandler) GetSeatsByRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomId")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	seats, err := h.service.GetSeatsByRoom(r.Context(), roomID)
	if err != nil {
		handleServiceError(h.log, w, err, "get seats by room")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

// CreateSeat handles POST /api/seats
func (h *SeatHandler) CreateSeat(w http.ResponseWriter, r *http.Request) {
	var req request.SeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	seat, err := h.service.CreateSeat(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create seat")
		return
	}

	utils.ResponseCreated(w, "success", seat)
}

// GenerateSeatGrid handles POST /api/seats/generate
func (h *SeatHandler) GenerateSeatGrid(w http.ResponseWriter, r *http.Request) {
	var req request.SeatGridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	seats, err := h.service.GenerateSeatGrid(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "generate seat grid")
		return
	}

	utils.ResponseCreated(w, "success", seats)
}

// UpdateSeat handles PUT /api/seats/{id}
func (h *SeatHandler) UpdateSeat(w http.ResponseWriter, r *http.Request) {
	seatID := chi.URLParam(r, "id")
	if seatID == "" {
		utils.ResponseBadRequest(w, "Seat ID is required", nil)
		return
	}

	var req request.SeatUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	seat, err := h.service.UpdateSeat(r.Context(), seatID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update seat")
		return
	}

	utils.ResponseSuccess(w, "success", seat)
}

// DeleteSeat handles DELETE /api/seats/{id}
func (h *SeatHandler) DeleteSeat(w http.ResponseWriter, r *http.Request) {
	seatID := chi.URLParam(r, "id")
	if seatID == "" {
		utils.ResponseBadRequest(w, "Seat ID is required", nil)
		return
	}

	if err := h.service.DeleteSeat(r.Context(), seatID); err != nil {
		handleServiceError(h.log, w, err, "delete seat")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
