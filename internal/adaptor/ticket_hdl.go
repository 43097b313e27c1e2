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

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// GetTickets handles GET /api/tickets
func (h *TicketHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	var customerID, showtimeID, status *string
	if c := query.Get("customer"); c != "" {
		customerID = &c
	}
	if s := query.Get("showtime"); s != "" {
		showtimeID = &s
	}
	if st := query.Get("status"); st != "" {
		status = &st
	}

	tickets, err := h.service.GetTickets(r.Context(), req, customerID, showtimeID, status)
	if err != nil {
		handleServiceError(h.log, w, err, "get tickets")
		return
	}

	utils.ResponseSuccess(w, "success", tickets)
}

// GetTicketByID handles GET /api/tickets/{id}
func (h *TicketHandler) GetTicketByID(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")
	if ticketID == "" {
		utils.ResponseBadRequest(w, "Ticket ID is required", nil)
		return
	}

	ticket, err := h.service.GetTicketByID(r.Context(), ticketID)
	if err != nil {
		handleServiceError(h.log, w, err, "get ticket by ID")
		return
	}

	utils.ResponseSuccess(w, "success", ticket)
}

// CreateTicket handles POST /api/tickets
func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ticket, err := h.service.CreateTicket(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create ticket")
		return
	}

	utils.ResponseCreated(w, "success", ticket)
}

// UpdateTicketStatus handles PUT /api/tickets/{id}/status
func (h *TicketHandler) UpdateTicketStatus(w http.ResponseWriter, r *http.Request) {
	ticketID := chi.URLParam(r, "id")
	if ticketID == "" {
		utils.ResponseBadRequest(w, "Ticket ID is required", nil)
		return
	}

	var req request.UpdateTicketStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ticket, err := h.service.UpdateTicketStatus(r.Context(), ticketID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update ticket status")
		return
	}

	utils.ResponseSuccess(w, "success", ticket)
}
