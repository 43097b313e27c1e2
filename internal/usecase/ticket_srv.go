package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-admin/internal/data/entity"
	"cinema-admin/internal/data/repository"
	"cinema-admin/internal/dto/request"
	"cinema-admin/internal/dto/response"
	"cinema-admin/pkg/apperr"
	"cinema-admin/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TicketService interface {
	GetTickets(ctx context.Context, req *request.PaginatedRequest, customerID, showtimeID, status *string) (*response.PaginatedResponse[response.TicketResponse], error)
	GetTicketByID(ctx context.Context, ticketID string) (*response.TicketResponse, error)
	CreateTicket(ctx context.Context, req *request.CreateTicketRequest) (*response.TicketResponse, error)
	UpdateTicketStatus(ctx context.Context, ticketID string, req *request.UpdateTicketStatusRequest) (*response.TicketResponse, error)
}

type ticketService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewTicketService(repo *repository.Repository, log *zap.Logger) TicketService {
	return &ticketService{
		repo: repo,
		log:  log.With(zap.String("service", "ticket")),
		now:  time.Now,
	}
}

func (s *ticketService) GetTickets(ctx context.Context, req *request.PaginatedRequest, customerID, showtimeID, status *string) (*response.PaginatedResponse[response.TicketResponse], error) {
	customerUUID, err := parseOptionalID(customerID, "customer")
	if err != nil {
		return nil, err
	}
	showtimeUUID, err := parseOptionalID(showtimeID, "showtime")
	if err != nil {
		return nil, err
	}

	var statusFilter *entity.TicketStatus
	if status != nil && *status != "" {
		st := entity.TicketStatus(*status)
		statusFilter = &st
	}

	tickets, err := s.repo.Ticket.FindAll(ctx, req.Limit(), req.Offset(), customerUUID, showtimeUUID, statusFilter)
	if err != nil {
		s.log.Error("Failed to get tickets from repository", zap.Error(err))
		return nil, fmt.Errorf("get tickets: %w", err)
	}

	total, err := s.repo.Ticket.CountAll(ctx, customerUUID, showtimeUUID, statusFilter)
	if err != nil {
		s.log.Error("Failed to count tickets", zap.Error(err))
		return nil, fmt.Errorf("count tickets: %w", err)
	}

	ticketResponses := make([]response.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		ticketResponses[i] = response.TicketToResponse(ticket, s.seatLabels(ctx, ticket.ID))
	}

	return response.NewPaginatedResponse(ticketResponses, req.Page, req.PerPage, total), nil
}

func (s *ticketService) GetTicketByID(ctx context.Context, ticketID string) (*response.TicketResponse, error) {
	id, err := uuid.Parse(ticketID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid ticket ID format %s", ticketID)
	}

	ticket, err := s.repo.Ticket.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get ticket by ID", zap.Error(err), zap.String("ticket_id", ticketID))
		return nil, fmt.Errorf("get ticket %s: %w", ticketID, err)
	}
	if ticket == nil {
		return nil, apperr.New(apperr.KindNotFound, "ticket %s not found", ticketID)
	}

	resp := response.TicketToResponse(ticket, s.seatLabels(ctx, ticket.ID))
	return &resp, nil
}

func (s *ticketService) CreateTicket(ctx context.Context, req *request.CreateTicketRequest) (*response.TicketResponse, error) {
	customerUUID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid customer ID format %s", req.CustomerID)
	}
	showtimeUUID, err := uuid.Parse(req.ShowtimeID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid showtime ID format %s", req.ShowtimeID)
	}

	customer, err := s.repo.Customer.FindByID(ctx, customerUUID)
	if err != nil {
		return nil, fmt.Errorf("get customer %s: %w", req.CustomerID, err)
	}
	if customer == nil {
		return nil, apperr.New(apperr.KindNotFound, "customer %s not found", req.CustomerID)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeUUID)
	if err != nil {
		return nil, fmt.Errorf("get showtime %s: %w", req.ShowtimeID, err)
	}
	if showtime == nil {
		return nil, apperr.New(apperr.KindNotFound, "showtime %s not found", req.ShowtimeID)
	}
	if showtime.ShowTime.Before(s.now().UTC()) {
		return nil, apperr.New(apperr.KindPastShowtime, "showtime %s has already played", req.ShowtimeID)
	}

	// Requested seats must belong to the showtime's room and be free.
	bookedIDs, err := s.repo.TicketSeat.FindBookedSeatIDsByShowtime(ctx, showtimeUUID)
	if err != nil {
		return nil, fmt.Errorf("get booked seats for showtime %s: %w", req.ShowtimeID, err)
	}
	booked := make(map[uuid.UUID]struct{}, len(bookedIDs))
	for _, seatID := range bookedIDs {
		booked[seatID] = struct{}{}
	}

	var totalPrice float64
	seats := make([]*entity.Seat, 0, len(req.SeatIDs))
	for _, raw := range req.SeatIDs {
		seatUUID, err := uuid.Parse(raw)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, err, "invalid seat ID format %s", raw)
		}
		seat, err := s.repo.Seat.FindByID(ctx, seatUUID)
		if err != nil {
			return nil, fmt.Errorf("get seat %s: %w", raw, err)
		}
		if seat == nil {
			return nil, apperr.New(apperr.KindNotFound, "seat %s not found", raw)
		}
		if seat.RoomID != showtime.RoomID {
			return nil, apperr.New(apperr.KindValidation, "seat %s is not in the showtime's room", seat.Label)
		}
		if _, taken := booked[seat.ID]; taken {
			return nil, apperr.New(apperr.KindConflict, "seat %s is already booked", seat.Label)
		}
		seats = append(seats, seat)
		totalPrice += seat.Price
	}

	if req.DiscountCode != nil && *req.DiscountCode != "" {
		discount, err := s.repo.Discount.FindByCode(ctx, *req.DiscountCode)
		if err != nil {
			return nil, fmt.Errorf("get discount %s: %w", *req.DiscountCode, err)
		}
		if discount == nil || !discount.IsActive {
			return nil, apperr.New(apperr.KindNotFound, "discount code %s not found", *req.DiscountCode)
		}
		now := s.now().UTC()
		if now.Before(discount.ValidFrom) || now.After(discount.ValidTo) {
			return nil, apperr.New(apperr.KindValidation, "discount code %s is not valid today", *req.DiscountCode)
		}
		totalPrice = totalPrice * float64(100-discount.Percent) / 100
	}

	status := entity.TicketStatusPending
	if req.Status != nil {
		status = entity.TicketStatus(*req.Status)
	}

	now := s.now().UTC()
	ticket := &entity.Ticket{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:    utils.GenerateOrderID(),
		CustomerID: customer.ID,
		ShowtimeID: showtime.ID,
		TotalSeats: len(seats),
		TotalPrice: totalPrice,
		Status:     status,
	}

	if err := s.repo.Ticket.Create(ctx, ticket); err != nil {
		s.log.Error("Failed to create ticket", zap.Error(err), zap.String("order_id", ticket.OrderID))
		return nil, fmt.Errorf("create ticket %s: %w", ticket.OrderID, err)
	}

	ticketSeats := make([]*entity.TicketSeat, len(seats))
	for i, seat := range seats {
		ticketSeats[i] = &entity.TicketSeat{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			TicketID: ticket.ID,
			SeatID:   seat.ID,
		}
	}
	if err := s.repo.TicketSeat.CreateBatch(ctx, ticketSeats); err != nil {
		s.log.Error("Failed to attach seats to ticket", zap.Error(err), zap.String("ticket_id", ticket.ID.String()))
		return nil, fmt.Errorf("attach seats to ticket %s: %w", ticket.ID.String(), err)
	}

	s.log.Info("Ticket created",
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("order_id", ticket.OrderID),
		zap.Int("seats", len(seats)),
	)

	labels := make([]string, len(seats))
	for i, seat := range seats {
		labels[i] = seat.Label
	}

	resp := response.TicketToResponse(ticket, labels)
	return &resp, nil
}

func (s *ticketService) UpdateTicketStatus(ctx context.Context, ticketID string, req *request.UpdateTicketStatusRequest) (*response.TicketResponse, error) {
	id, err := uuid.Parse(ticketID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid ticket ID format %s", ticketID)
	}

	ticket, err := s.repo.Ticket.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ticket %s: %w", ticketID, err)
	}
	if ticket == nil {
		return nil, apperr.New(apperr.KindNotFound, "ticket %s not found", ticketID)
	}

	newStatus := entity.TicketStatus(req.Status)

	// Cancelled and expired are terminal.
	if !ticket.Status.Active() && newStatus != ticket.Status {
		return nil, apperr.New(apperr.KindConflict, "ticket %s is already %s", ticketID, ticket.Status)
	}

	if err := s.repo.Ticket.UpdateStatus(ctx, id, newStatus); err != nil {
		s.log.Error("Failed to update ticket status", zap.Error(err), zap.String("ticket_id", ticketID))
		return nil, fmt.Errorf("update ticket %s status: %w", ticketID, err)
	}

	ticket.Status = newStatus
	ticket.UpdatedAt = s.now().UTC()

	s.log.Info("Ticket status updated",
		zap.String("ticket_id", ticketID),
		zap.String("status", string(newStatus)),
	)

	resp := response.TicketToResponse(ticket, s.seatLabels(ctx, ticket.ID))
	return &resp, nil
}

func (s *ticketService) seatLabels(ctx context.Context, ticketID uuid.UUID) []string {
	ticketSeats, err := s.repo.TicketSeat.FindByTicketID(ctx, ticketID)
	if err != nil {
		s.log.Warn("Failed to get seats for ticket", zap.Error(err), zap.String("ticket_id", ticketID.String()))
		return nil
	}

	labels := make([]string, 0, len(ticketSeats))
	for _, ts := range ticketSeats {
		seat, err := s.repo.Seat.FindByID(ctx, ts.SeatID)
		if err != nil || seat == nil {
			continue
		}
		labels = append(labels, seat.Label)
	}
	return labels
}
