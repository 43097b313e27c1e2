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

type ShowtimeHandler struct {
	service    usecase.ShowtimeService
	seatStatus usecase.SeatStatusService
	log        *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, seatStatus usecase.SeatStatusService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service:    service,
		seatStatus: seatStatus,
		log:        log.With(zap.String("handler", "showtime")),
	}
}

// GetShowtimes handles GET /api/showtimes
func (h *ShowtimeHandler) GetShowtimes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	var movieID, cinemaID *string
	if movie := query.Get("movie"); movie != "" {
		movieID = &movie
	}
	if cinema := query.Get("cinema"); cinema != "" {
		cinemaID = &cinema
	}

	showtimes, err := h.service.GetShowtimes(r.Context(), req, movieID, cinemaID)
	if err != nil {
		handleServiceError(h.log, w, err, "get showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// GetShowtimeByID handles GET /api/showtimes/{id}
func (h *ShowtimeHandler) GetShowtimeByID(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")
	if showtimeID == "" {
		utils.ResponseBadRequest(w, "Showtime ID is required", nil)
		return
	}

	showtime, err := h.service.GetShowtimeByID(r.Context(), showtimeID)
	if err != nil {
		handleServiceError(h.log, w, err, "get showtime by ID")
		return
	}

	utils.ResponseSuccess(w, "success", showtime)
}

// GetShowtimesByRoom handles GET /api/showtimes/room/{roomId}
func (h *ShowtimeHandler) GetShowtimesByRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomId")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	showtimes, err := h.service.GetShowtimesByRoom(r.Context(), roomID)
	if err != nil {
		handleServiceError(h.log, w, err, "get showtimes by room")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// CreateShowtimes handles POST /api/showtimes
func (h *ShowtimeHandler) CreateShowtimes(w http.ResponseWriter, r *http.Request) {
	var req request.CreateShowtimesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.CreateShowtimes(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create showtimes")
		return
	}

	utils.ResponseCreated(w, "success", result)
}

// GenerateShowtimes handles POST /api/showtimes/generate
func (h *ShowtimeHandler) GenerateShowtimes(w http.ResponseWriter, r *http.Request) {
	var req request.GenerateShowtimesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.GenerateShowtimes(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "generate showtimes")
		return
	}

	utils.ResponseCreated(w, "success", result)
}

// UpdateShowtime handles PUT /api/showtimes/{id}
func (h *ShowtimeHandler) UpdateShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")
	if showtimeID == "" {
		utils.ResponseBadRequest(w, "Showtime ID is required", nil)
		return
	}

	var req request.UpdateShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	showtime, err := h.service.UpdateShowtime(r.Context(), showtimeID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update showtime")
		return
	}

	utils.ResponseSuccess(w, "success", showtime)
}

// DeleteShowtime handles DELETE /api/showtimes/{id}
func (h *ShowtimeHandler) DeleteShowtime(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")
	if showtimeID == "" {
		utils.ResponseBadRequest(w, "Showtime ID is required", nil)
		return
	}

	if err := h.service.DeleteShowtime(r.Context(), showtimeID); err != nil {
		handleServiceError(h.log, w, err, "delete showtime")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetSeatStatus handles GET /api/showtimes/{id}/seat-status
func (h *ShowtimeHandler) GetSeatStatus(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")
	if showtimeID == "" {
		utils.ResponseBadRequest(w, "Showtime ID is required", nil)
		return
	}

	view, err := h.seatStatus.GetSeatStatus(r.Context(), showtimeID)
	if err != nil {
		handleServiceError(h.log, w, err, "get seat status")
		return
	}

	utils.ResponseSuccess(w, "success", view)
}
