package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cinema-admin/internal/data/entity"
	"cinema-admin/internal/data/repository"
	"cinema-admin/internal/dto/request"
	"cinema-admin/internal/dto/response"
	"cinema-admin/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatService interface {
	GetSeatsByRoom(ctx context.Context, roomID string) ([]response.SeatResponse, error)
	CreateSeat(ctx context.Context, req *request.SeatRequest) (*response.SeatResponse, error)
	GenerateSeatGrid(ctx context.Context, req *request.SeatGridRequest) ([]response.SeatResponse, error)
	UpdateSeat(ctx context.Context, seatID string, req *request.SeatUpdateRequest) (*response.SeatResponse, error)
	DeleteSeat(ctx context.Context, seatID string) error
}

type seatService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSeatService(repo *repository.Repository, log *zap.Logger) SeatService {
	return &seatService{
		repo: repo,
		log:  log.With(zap.String("service", "seat")),
	}
}

func seatLabel(row string, column int) string {
	return row + strconv.Itoa(column)
}

func (s *seatService) GetSeatsByRoom(ctx context.Context, roomID string) ([]response.SeatResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid room ID format %s", roomID)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", roomID, err)
	}
	if room == nil {
		return nil, apperr.New(apperr.KindNotFound, "room %s not found", roomID)
	}

	seats, err := s.repo.Seat.FindByRoomID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get seats for room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("get seats for room %s: %w", roomID, err)
	}

	seatResponses := make([]response.SeatResponse, len(seats))
	for i, seat := range seats {
		seatResponses[i] = response.SeatToResponse(seat)
	}

	return seatResponses, nil
}

func (s *seatService) CreateSeat(ctx context.Context, req *request.SeatRequest) (*response.SeatResponse, error) {
	roomUUID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid room ID format %s", req.RoomID)
	}

	room, err := s.repo.Room.FindByID(ctx, roomUUID)
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", req.RoomID, err)
	}
	if room == nil {
		return nil, apperr.New(apperr.KindNotFound, "room %s not found", req.RoomID)
	}

	label := seatLabel(req.SeatRow, req.SeatColumn)
	taken, err := s.repo.Seat.ExistsLabel(ctx, roomUUID, label, nil)
	if err != nil {
		return nil, fmt.Errorf("check seat label %s: %w", label, err)
	}
	if taken {
		return nil, apperr.New(apperr.KindConflict, "seat %s already exists in room %s", label, req.RoomID)
	}

	now := time.Now().UTC()
	seat := &entity.Seat{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomID:     roomUUID,
		Label:      label,
		SeatRow:    req.SeatRow,
		SeatColumn: req.SeatColumn,
		Price:      req.Price,
	}

	if err := s.repo.Seat.Create(ctx, seat); err != nil {
		s.log.Error("Failed to create seat", zap.Error(err), zap.String("label", label))
		return nil, fmt.Errorf("create seat %s: %w", label, err)
	}

	s.log.Info("Seat created", zap.String("seat_id", seat.ID.String()), zap.String("label", label))

	resp := response.SeatToResponse(seat)
	return &resp, nil
}

// GenerateSeatGrid lays out a full room in one call: rows A..(A+Rows-1),
// columns 1..Columns. The room must be empty so a rerun cannot produce a
// half-overlapping layout.
func (s *seatService) GenerateSeatGrid(ctx context.Context, req *request.SeatGridRequest) ([]response.SeatResponse, error) {
	roomUUID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid room ID format %s", req.RoomID)
	}

	room, err := s.repo.Room.FindByID(ctx, roomUUID)
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", req.RoomID, err)
	}
	if room == nil {
		return nil, apperr.New(apperr.KindNotFound, "room %s not found", req.RoomID)
	}

	existing, err := s.repo.Seat.CountByRoomID(ctx, roomUUID)
	if err != nil {
		return nil, fmt.Errorf("count seats for room %s: %w", req.RoomID, err)
	}
	if existing > 0 {
		return nil, apperr.New(apperr.KindConflict, "room %s already has %d seats", req.RoomID, existing)
	}

	now := time.Now().UTC()
	seats := make([]*entity.Seat, 0, req.Rows*req.Columns)
	for r := 0; r < req.Rows; r++ {
		row := string(rune('A' + r))
		for c := 1; c <= req.Columns; c++ {
			seats = append(seats, &entity.Seat{
				Base: entity.Base{
					ID:        uuid.New(),
					CreatedAt: now,
					UpdatedAt: now,
				},
				RoomID:     roomUUID,
				Label:      seatLabel(row, c),
				SeatRow:    row,
				SeatColumn: c,
				Price:      req.Price,
			})
		}
	}

	if err := s.repo.Seat.CreateBatch(ctx, seats); err != nil {
		s.log.Error("Failed to create seat grid", zap.Error(err), zap.String("room_id", req.RoomID))
		return nil, fmt.Errorf("create seat grid for room %s: %w", req.RoomID, err)
	}

	s.log.Info("Seat grid generated",
		zap.String("room_id", req.RoomID),
		zap.Int("rows", req.Rows),
		zap.Int("columns", req.Columns),
	)

	seatResponses := make([]response.SeatResponse, len(seats))
	for i, seat := range seats {
		seatResponses[i] = response.SeatToResponse(seat)
	}

	return seatResponses, nil
}

func (s *seatService) UpdateSeat(ctx context.Context, seatID string, req *request.SeatUpdateRequest) (*response.SeatResponse, error) {
	id, err := uuid.Parse(seatID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid seat ID format %s", seatID)
	}

	seat, err := s.repo.Seat.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get seat %s: %w", seatID, err)
	}
	if seat == nil {
		return nil, apperr.New(apperr.KindNotFound, "seat %s not found", seatID)
	}

	if req.SeatRow != nil {
		seat.SeatRow = *req.SeatRow
	}
	if req.SeatColumn != nil {
		seat.SeatColumn = *req.SeatColumn
	}
	if req.Price != nil {
		seat.Price = *req.Price
	}

	newLabel := seatLabel(seat.SeatRow, seat.SeatColumn)
	if newLabel != seat.Label {
		taken, err := s.repo.Seat.ExistsLabel(ctx, seat.RoomID, newLabel, &seat.ID)
		if err != nil {
			return nil, fmt.Errorf("check seat label %s: %w", newLabel, err)
		}
		if taken {
			return nil, apperr.New(apperr.KindConflict, "seat %s already exists in room %s", newLabel, seat.RoomID.String())
		}
		seat.Label = newLabel
	}

	seat.UpdatedAt = time.Now().UTC()
	if err := s.repo.Seat.Update(ctx, seat); err != nil {
		s.log.Error("Failed to update seat", zap.Error(err), zap.String("seat_id", seatID))
		return nil, fmt.Errorf("update seat %s: %w", seatID, err)
	}

	resp := response.SeatToResponse(seat)
	return &resp, nil
}

func (s *seatService) DeleteSeat(ctx context.Context, seatID string) error {
	id, err := uuid.Parse(seatID)
	if err != nil {
		return apperr.Wrap(apperr.KindValidation, err, "invalid seat ID format %s", seatID)
	}

	seat, err := s.repo.Seat.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get seat %s: %w", seatID, err)
	}
	if seat == nil {
		return apperr.New(apperr.KindNotFound, "seat %s not found", seatID)
	}

	if err := s.repo.Seat.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete seat", zap.Error(err), zap.String("seat_id", seatID))
		return fmt.Errorf("delete seat %s: %w", seatID, err)
	}

	s.log.Info("Seat deleted", zap.String("seat_id", seatID))
	return nil
}
