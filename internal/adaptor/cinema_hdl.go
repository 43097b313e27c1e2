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

type CinemaHandler struct {
	service usecase.CinemaService
	log     *zap.Logger
}

func NewCinemaHandler(service usecase.CinemaService, log *zap.Logger) *CinemaHandler {
	return &CinemaHandler{
		service: service,
		log:     log.With(zap.String("handler", "cinema")),
	}
}

// GetCinemas handles GET /api/cinemas
func (h *CinemaHandler) GetCinemas(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	var search *string
	if q := query.Get("search"); q != "" {
		search = &q
	}

	cinemas, err := h.service.GetCinemas(r.Context(), req, search)
	if err != nil {
		handleServiceError(h.log, w, err, "get cinemas")
		return
	}

	utils.ResponseSuccess(w, "success", cinemas)
}

// GetCinemaByID handles GET /api/cinemas/{id}
func (h *CinemaHandler) GetCinemaByID(w http.ResponseWriter, r *http.Request) {
	cinemaID := chi.URLParam(r, "id")
	if cinemaID == "" {
		utils.ResponseBadRequest(w, "Cinema ID is required", nil)
		return
	}

	cinema, err := h.service.GetCinemaByID(r.Context(), cinemaID)
	if err != nil {
		handleServiceError(h.log, w, err, "get cinema by ID")
		return
	}

	utils.ResponseSuccess(w, "success", cinema)
}

// CreateCinema handles POST /api/cinemas
func (h *CinemaHandler) CreateCinema(w http.ResponseWriter, r *http.Request) {
	var req request.CinemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	cinema, err := h.service.CreateCinema(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create cinema")
		return
	}

	utils.ResponseCreated(w, "success", cinema)
}

// UpdateCinema handles PUT /api/cinemas/{id}
func (h *CinemaHandler) UpdateCinema(w http.ResponseWriter, r *http.Request) {
	cinemaID := chi.URLParam(r, "id")
	if cinemaID == "" {
		utils.ResponseBadRequest(w, "Cinema ID is required", nil)
		return
	}

	var req request.CinemaUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	cinema, err := h.service.UpdateCinema(r.Context(), cinemaID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update cinema")
		return
	}

	utils.ResponseSuccess(w, "success", cinema)
}

// DeleteCinema handles DELETE /api/cinemas/{id}
func (h *CinemaHandler) DeleteCinema(w http.ResponseWriter, r *http.Request) {
	cinemaID := chi.URLParam(r, "id")
	if cinemaID == "" {
		utils.ResponseBadRequest(w, "Cinema ID is required", nil)
		return
	}

	if err := h.service.DeleteCinema(r.Context(), cinemaID); err != nil {
		handleServiceError(h.log, w, err, "delete cinema")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetRoomsByCinema handles GET /api/rooms/cinema/{cinemaId}
func (h *CinemaHandler) GetRoomsByCinema(w http.ResponseWriter, r *http.Request) {
	cinemaID := chi.URLParam(r, "cinemaId")
	if cinemaID == "" {
		utils.ResponseBadRequest(w, "Cinema ID is required", nil)
		return
	}

	rooms, err := h.service.GetRoomsByCinema(r.Context(), cinemaID)
	if err != nil {
		handleServiceError(h.log, w, err, "get rooms by cinema")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// CreateRoom handles POST /api/rooms
func (h *CinemaHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.RoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// UpdateRoom handles PUT /api/rooms/{id}
func (h *CinemaHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	var req request.RoomUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), roomID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// DeleteRoom handles DELETE /api/rooms/{id}
func (h *CinemaHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	if err := h.service.DeleteRoom(r.Context(), roomID); err != nil {
		handleServiceError(h.log, w, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
