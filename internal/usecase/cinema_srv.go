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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CinemaService interface {
	GetCinemas(ctx context.Context, req *request.PaginatedRequest, search *string) (*response.PaginatedResponse[response.CinemaResponse], error)
	GetCinemaByID(ctx context.Context, cinemaID string) (*response.CinemaDetailResponse, error)
	CreateCinema(ctx context.Context, req *request.CinemaRequest) (*response.CinemaResponse, error)
	UpdateCinema(ctx context.Context, cinemaID string, req *request.CinemaUpdateRequest) (*response.CinemaResponse, error)
	DeleteCinema(ctx context.Context, cinemaID string) error

	GetRoomsByCinema(ctx context.Context, cinemaID string) ([]response.RoomResponse, error)
	CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.RoomUpdateRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type cinemaService struct {
	repo *repository.Repository // cinema plus room and seat lookups
	log  *zap.Logger
}

func NewCinemaService(repo *repository.Repository, log *zap.Logger) CinemaService {
	return &cinemaService{
		repo: repo,
		log:  log.With(zap.String("service", "cinema")),
	}
}

func (s *cinemaService) GetCinemas(ctx context.Context, req *request.PaginatedRequest, search *string) (*response.PaginatedResponse[response.CinemaResponse], error) {
	cinemas, err := s.repo.Cinema.FindAll(ctx, req.Limit(), req.Offset(), search)
	if err != nil {
		s.log.Error("Failed to get cinemas from repository", zap.Error(err))
		return nil, fmt.Errorf("get cinemas: %w", err)
	}

	total, err := s.repo.Cinema.CountAll(ctx, search)
	if err != nil {
		s.log.Error("Failed to count cinemas", zap.Error(err))
		return nil, fmt.Errorf("count cinemas: %w", err)
	}

	cinemaResponses := make([]response.CinemaResponse, len(cinemas))
	for i, cinema := range cinemas {
		cinemaResponses[i] = response.CinemaToResponse(cinema)
	}

	return response.NewPaginatedResponse(cinemaResponses, req.Page, req.PerPage, total), nil
}

func (s *cinemaService) GetCinemaByID(ctx context.Context, cinemaID string) (*response.CinemaDetailResponse, error) {
	id, err := uuid.Parse(cinemaID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid cinema ID format %s", cinemaID)
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get cinema by ID", zap.Error(err), zap.String("cinema_id", cinemaID))
		return nil, fmt.Errorf("get cinema %s: %w", cinemaID, err)
	}
	if cinema == nil {
		return nil, apperr.New(apperr.KindNotFound, "cinema %s not found", cinemaID)
	}

	rooms, err := s.repo.Room.FindByCinemaID(ctx, cinema.ID)
	if err != nil {
		s.log.Warn("Failed to get rooms for cinema", zap.Error(err), zap.String("cinema_id", cinemaID))
		// Continue with empty rooms
	}

	roomResponses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = s.roomToResponse(ctx, room)
	}

	return &response.CinemaDetailResponse{
		CinemaResponse: response.CinemaToResponse(cinema),
		Rooms:          roomResponses,
	}, nil
}

func (s *cinemaService) CreateCinema(ctx context.Context, req *request.CinemaRequest) (*response.CinemaResponse, error) {
	now := time.Now().UTC()
	cinema := &entity.Cinema{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Phone:   req.Phone,
	}

	if err := s.repo.Cinema.Create(ctx, cinema); err != nil {
		s.log.Error("Failed to create cinema", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create cinema: %w", err)
	}

	s.log.Info("Cinema created", zap.String("cinema_id", cinema.ID.String()), zap.String("name", cinema.Name))

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) UpdateCinema(ctx context.Context, cinemaID string, req *request.CinemaUpdateRequest) (*response.CinemaResponse, error) {
	id, err := uuid.Parse(cinemaID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid cinema ID format %s", cinemaID)
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get cinema %s: %w", cinemaID, err)
	}
	if cinema == nil {
		return nil, apperr.New(apperr.KindNotFound, "cinema %s not found", cinemaID)
	}

	if req.Name != nil {
		cinema.Name = *req.Name
	}
	if req.Address != nil {
		cinema.Address = *req.Address
	}
	if req.City != nil {
		cinema.City = *req.City
	}
	if req.Phone != nil {
		cinema.Phone = req.Phone
	}

	cinema.UpdatedAt = time.Now().UTC()
	if err := s.repo.Cinema.Update(ctx, cinema); err != nil {
		s.log.Error("Failed to update cinema", zap.Error(err), zap.String("cinema_id", cinemaID))
		return nil, fmt.Errorf("update cinema %s: %w", cinemaID, err)
	}

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) DeleteCinema(ctx context.Context, cinemaID string) error {
	id, err := uuid.Parse(cinemaID)
	if err != nil {
		return apperr.Wrap(apperr.KindValidation, err, "invalid cinema ID format %s", cinemaID)
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get cinema %s: %w", cinemaID, err)
	}
	if cinema == nil {
		return apperr.New(apperr.KindNotFound, "cinema %s not found", cinemaID)
	}

	rooms, err := s.repo.Room.FindByCinemaID(ctx, id)
	if err != nil {
		return fmt.Errorf("get rooms for cinema %s: %w", cinemaID, err)
	}
	if len(rooms) > 0 {
		return apperr.New(apperr.KindConflict, "cinema %s still has %d rooms", cinemaID, len(rooms))
	}

	if err := s.repo.Cinema.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete cinema", zap.Error(err), zap.String("cinema_id", cinemaID))
		return fmt.Errorf("delete cinema %s: %w", cinemaID, err)
	}

	s.log.Info("Cinema deleted", zap.String("cinema_id", cinemaID))
	return nil
}

func (s *cinemaService) GetRoomsByCinema(ctx context.Context, cinemaID string) ([]response.RoomResponse, error) {
	id, err := uuid.Parse(cinemaID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid cinema ID format %s", cinemaID)
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get cinema %s: %w", cinemaID, err)
	}
	if cinema == nil {
		return nil, apperr.New(apperr.KindNotFound, "cinema %s not found", cinemaID)
	}

	rooms, err := s.repo.Room.FindByCinemaID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get rooms for cinema", zap.Error(err), zap.String("cinema_id", cinemaID))
		return nil, fmt.Errorf("get rooms for cinema %s: %w", cinemaID, err)
	}

	roomResponses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = s.roomToResponse(ctx, room)
	}

	return roomResponses, nil
}

func (s *cinemaService) CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
	cinemaUUID, err := uuid.Parse(req.CinemaID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid cinema ID format %s", req.CinemaID)
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, cinemaUUID)
	if err != nil {
		return nil, fmt.Errorf("get cinema %s: %w", req.CinemaID, err)
	}
	if cinema == nil {
		return nil, apperr.New(apperr.KindNotFound, "cinema %s not found", req.CinemaID)
	}

	taken, err := s.repo.Room.ExistsName(ctx, cinemaUUID, req.Name, nil)
	if err != nil {
		return nil, fmt.Errorf("check room name %s: %w", req.Name, err)
	}
	if taken {
		return nil, apperr.New(apperr.KindConflict, "room %s already exists in cinema %s", req.Name, req.CinemaID)
	}

	now := time.Now().UTC()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CinemaID: cinemaUUID,
		Name:     req.Name,
		Status:   entity.RoomStatus(req.Status),
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created", zap.String("room_id", room.ID.String()), zap.String("cinema_id", req.CinemaID))

	resp := response.RoomToResponse(room, 0)
	return &resp, nil
}

func (s *cinemaService) UpdateRoom(ctx context.Context, roomID string, req *request.RoomUpdateRequest) (*response.RoomResponse, error) {
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

	if req.Name != nil && *req.Name != room.Name {
		taken, err := s.repo.Room.ExistsName(ctx, room.CinemaID, *req.Name, &room.ID)
		if err != nil {
			return nil, fmt.Errorf("check room name %s: %w", *req.Name, err)
		}
		if taken {
			return nil, apperr.New(apperr.KindConflict, "room %s already exists in cinema %s", *req.Name, room.CinemaID.String())
		}
		room.Name = *req.Name
	}
	if req.Status != nil {
		room.Status = entity.RoomStatus(*req.Status)
	}

	room.UpdatedAt = time.Now().UTC()
	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("update room %s: %w", roomID, err)
	}

	resp := s.roomToResponse(ctx, room)
	return &resp, nil
}

func (s *cinemaService) DeleteRoom(ctx context.Context, roomID string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return apperr.Wrap(apperr.KindValidation, err, "invalid room ID format %s", roomID)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get room %s: %w", roomID, err)
	}
	if room == nil {
		return apperr.New(apperr.KindNotFound, "room %s not found", roomID)
	}

	showtimes, err := s.repo.Showtime.FindByRoomID(ctx, id)
	if err != nil {
		return fmt.Errorf("get showtimes for room %s: %w", roomID, err)
	}
	if len(showtimes) > 0 {
		return apperr.New(apperr.KindConflict, "room %s still has %d showtimes", roomID, len(showtimes))
	}

	if err := s.repo.Room.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete room", zap.Error(err), zap.String("room_id", roomID))
		return fmt.Errorf("delete room %s: %w", roomID, err)
	}

	s.log.Info("Room deleted", zap.String("room_id", roomID))
	return nil
}

func (s *cinemaService) roomToResponse(ctx context.Context, room *entity.Room) response.RoomResponse {
	seatCount, err := s.repo.Seat.CountByRoomID(ctx, room.ID)
	if err != nil {
		s.log.Warn("Failed to count seats for room", zap.Error(err), zap.String("room_id", room.ID.String()))
	}
	return response.RoomToResponse(room, int(seatCount))
}
