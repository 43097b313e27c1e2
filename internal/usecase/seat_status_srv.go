package usecase

import (
	"context"
	"fmt"

	"cinema-admin/internal/data/entity"
	"cinema-admin/internal/data/repository"
	"cinema-admin/internal/dto/response"
	"cinema-admin/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatStatusService interface {
	GetSeatStatus(ctx context.Context, showtimeID string) (*response.SeatStatusViewResponse, error)
}

type seatStatusService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSeatStatusService(repo *repository.Repository, log *zap.Logger) SeatStatusService {
	return &seatStatusService{
		repo: repo,
		log:  log.With(zap.String("service", "seat_status")),
	}
}

// seatStateRank orders seat states for conflict resolution. When two tickets
// reference the same seat, the higher-ranked state wins.
var seatStateRank = map[string]int{
	response.SeatStateAvailable: 0,
	response.SeatStatePending:   1,
	response.SeatStateReserved:  2,
	response.SeatStateBooked:    3,
}

func ticketStatusToSeatState(status entity.TicketStatus) string {
	switch status {
	case entity.TicketStatusConfirmed:
		return response.SeatStateBooked
	case entity.TicketStatusReserved:
		return response.SeatStateReserved
	case entity.TicketStatusPending:
		return response.SeatStatePending
	default:
		return response.SeatStateAvailable
	}
}

func (s *seatStatusService) GetSeatStatus(ctx context.Context, showtimeID string) (*response.SeatStatusViewResponse, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid showtime ID format %s", showtimeID)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get showtime", zap.Error(err), zap.String("showtime_id", showtimeID))
		return nil, fmt.Errorf("get showtime %s: %w", showtimeID, err)
	}
	if showtime == nil {
		return nil, apperr.New(apperr.KindNotFound, "showtime %s not found", showtimeID)
	}

	seats, err := s.repo.Seat.FindByRoomID(ctx, showtime.RoomID)
	if err != nil {
		s.log.Error("Failed to get seats for room", zap.Error(err), zap.String("room_id", showtime.RoomID.String()))
		return nil, fmt.Errorf("get seats for room %s: %w", showtime.RoomID.String(), err)
	}

	// An empty roster means the room was never laid out. That is a data
	// problem, not a showtime where every seat happens to be free.
	if len(seats) == 0 {
		return nil, apperr.New(apperr.KindNoSeatData, "room %s has no seats configured", showtime.RoomID.String())
	}

	details, err := s.repo.Ticket.FindActiveSeatDetailsByShowtime(ctx, id)
	if err != nil {
		s.log.Error("Failed to get ticket details for showtime", zap.Error(err), zap.String("showtime_id", showtimeID))
		return nil, fmt.Errorf("get ticket details for showtime %s: %w", showtimeID, err)
	}

	// Every seat of the room appears exactly once, available by default.
	seatStatus := make(map[string]response.SeatBookingInfo, len(seats))
	seatResponses := make([]response.SeatResponse, len(seats))
	for i, seat := range seats {
		seatResponses[i] = response.SeatToResponse(seat)
		seatStatus[seat.ID.String()] = response.SeatBookingInfo{Status: response.SeatStateAvailable}
	}

	ticketStatuses := make(map[uuid.UUID]entity.TicketStatus, len(details))
	for _, detail := range details {
		ticketStatuses[detail.TicketID] = detail.Status

		key := detail.SeatID.String()
		current, known := seatStatus[key]
		if !known {
			// Ticket rows referencing seats outside the roster (deleted
			// seats) do not appear in the view.
			continue
		}

		state := ticketStatusToSeatState(detail.Status)
		if seatStateRank[state] <= seatStateRank[current.Status] {
			continue
		}

		seatStatus[key] = response.SeatBookingInfo{
			Status:        state,
			TicketID:      detail.TicketID.String(),
			OrderID:       detail.OrderID,
			CustomerName:  detail.CustomerName,
			CustomerPhone: detail.CustomerPhone,
			CustomerEmail: detail.CustomerEmail,
			BookedAt:      detail.BookedAt.UTC().Format("2006-01-02 15:04:05"),
		}
	}

	stats := response.SeatStatusStatistics{TotalSeats: len(seats)}
	for _, info := range seatStatus {
		if info.Status != response.SeatStateAvailable {
			stats.TotalBooked++
		}
	}
	for _, status := range ticketStatuses {
		switch status {
		case entity.TicketStatusConfirmed:
			stats.ConfirmedBookings++
		case entity.TicketStatusPending:
			stats.PendingBookings++
		case entity.TicketStatusReserved:
			stats.ReservedBookings++
		}
	}

	s.log.Info("Seat status resolved",
		zap.String("showtime_id", showtimeID),
		zap.Int("total_seats", stats.TotalSeats),
		zap.Int("total_booked", stats.TotalBooked),
	)

	return &response.SeatStatusViewResponse{
		ShowtimeID: showtime.ID.String(),
		RoomID:     showtime.RoomID.String(),
		ShowDate:   showtime.ShowDate.UTC().Format("2006-01-02"),
		ShowTime:   showtime.ShowTime.UTC().Format("15:04"),
		Seats:      seatResponses,
		SeatStatus: seatStatus,
		Statistics: stats,
	}, nil
}
