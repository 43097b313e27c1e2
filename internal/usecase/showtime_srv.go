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

// Skip reasons reported per declined candidate slot.
const (
	SkipReasonDuplicate = "duplicate"
	SkipReasonPast      = "past"
)

// maxGenerateDays caps a bulk generation range. A full year of daily slots is
// far beyond what the console ever submits in one request.
const maxGenerateDays = 366

type ShowtimeService interface {
	GetShowtimes(ctx context.Context, req *request.PaginatedRequest, movieID, cinemaID *string) (*response.PaginatedResponse[response.ShowtimeResponse], error)
	GetShowtimeByID(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error)
	GetShowtimesByRoom(ctx context.Context, roomID string) ([]response.ShowtimeResponse, error)

	CreateShowtimes(ctx context.Context, req *request.CreateShowtimesRequest) (*response.ScheduleResult, error)
	GenerateShowtimes(ctx context.Context, req *request.GenerateShowtimesRequest) (*response.ScheduleResult, error)
	UpdateShowtime(ctx context.Context, showtimeID string, req *request.UpdateShowtimeRequest) (*response.ShowtimeResponse, error)
	DeleteShowtime(ctx context.Context, showtimeID string) error
}

type showtimeService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time // swapped out in tests
}

func NewShowtimeService(repo *repository.Repository, config *utils.Config, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "showtime")),
		now:    time.Now,
	}
}

func (s *showtimeService) GetShowtimes(ctx context.Context, req *request.PaginatedRequest, movieID, cinemaID *string) (*response.PaginatedResponse[response.ShowtimeResponse], error) {
	movieUUID, err := parseOptionalID(movieID, "movie")
	if err != nil {
		return nil, err
	}
	cinemaUUID, err := parseOptionalID(cinemaID, "cinema")
	if err != nil {
		return nil, err
	}

	showtimes, err := s.repo.Showtime.FindAll(ctx, req.Limit(), req.Offset(), movieUUID, cinemaUUID)
	if err != nil {
		s.log.Error("Failed to get showtimes from repository", zap.Error(err))
		return nil, fmt.Errorf("get showtimes: %w", err)
	}

	total, err := s.repo.Showtime.CountAll(ctx, movieUUID, cinemaUUID)
	if err != nil {
		s.log.Error("Failed to count showtimes", zap.Error(err))
		return nil, fmt.Errorf("count showtimes: %w", err)
	}

	showtimeResponses := make([]response.ShowtimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		showtimeResponses[i] = response.ShowtimeToResponse(showtime)
	}

	return response.NewPaginatedResponse(showtimeResponses, req.Page, req.PerPage, total), nil
}

func (s *showtimeService) GetShowtimeByID(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid showtime ID format %s", showtimeID)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get showtime by ID", zap.Error(err), zap.String("showtime_id", showtimeID))
		return nil, fmt.Errorf("get showtime %s: %w", showtimeID, err)
	}
	if showtime == nil {
		return nil, apperr.New(apperr.KindNotFound, "showtime %s not found", showtimeID)
	}

	resp := s.enrichShowtime(ctx, showtime)
	return &resp, nil
}

func (s *showtimeService) GetShowtimesByRoom(ctx context.Context, roomID string) ([]response.ShowtimeResponse, error) {
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

	showtimes, err := s.repo.Showtime.FindByRoomID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get showtimes by room", zap.Error(err), zap.String("room_id", roomID))
		return nil, fmt.Errorf("get showtimes for room %s: %w", roomID, err)
	}

	showtimeResponses := make([]response.ShowtimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		showtimeResponses[i] = response.ShowtimeToResponse(showtime)
	}

	return showtimeResponses, nil
}

func (s *showtimeService) CreateShowtimes(ctx context.Context, req *request.CreateShowtimesRequest) (*response.ScheduleResult, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	times, err := parseTimes(req.Times)
	if err != nil {
		return nil, err
	}

	return s.schedule(ctx, req.MovieID, req.CinemaID, req.RoomID, []time.Time{date}, times, req.Price)
}

func (s *showtimeService) GenerateShowtimes(ctx context.Context, req *request.GenerateShowtimesRequest) (*response.ScheduleResult, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	if endDate.Before(startDate) {
		return nil, apperr.New(apperr.KindValidation, "startDate %s is after endDate %s", req.StartDate, req.EndDate)
	}

	days := make([]time.Time, 0, 8)
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
		if len(days) > maxGenerateDays {
			return nil, apperr.New(apperr.KindValidation, "date range exceeds %d days", maxGenerateDays)
		}
	}

	times, err := parseTimes(req.Times)
	if err != nil {
		return nil, err
	}

	return s.schedule(ctx, req.MovieID, req.CinemaID, req.RoomID, days, times, req.Price)
}

// schedule creates one showtime per (day, time) candidate, skipping the ones
// whose slot is already occupied or already in the past. Skips never abort
// the batch; re-running an identical request creates nothing and reports
// every candidate as a duplicate skip.
func (s *showtimeService) schedule(ctx context.Context, movieID, cinemaID, roomID string, days, times []time.Time, price *float64) (*response.ScheduleResult, error) {
	movie, cinema, room, err := s.resolveSchedulingRefs(ctx, movieID, cinemaID, roomID)
	if err != nil {
		return nil, err
	}

	// Conflicts are decided against a single snapshot of the room's
	// existing showtimes; the unique index backstops concurrent writers.
	existing, err := s.repo.Showtime.FindByRoomAndDateRange(ctx, room.ID, days[0], days[len(days)-1])
	if err != nil {
		s.log.Error("Failed to load existing showtimes", zap.Error(err), zap.String("room_id", room.ID.String()))
		return nil, fmt.Errorf("load existing showtimes for room %s: %w", room.ID.String(), err)
	}

	occupied := make(map[string]struct{}, len(existing))
	for _, st := range existing {
		occupied[st.SlotKey()] = struct{}{}
	}

	slotPrice := s.config.Booking.DefaultTicketPrice
	if price != nil {
		slotPrice = *price
	}

	now := s.now().UTC()
	result := &response.ScheduleResult{
		Created: []response.ShowtimeResponse{},
		Skipped: []response.SkippedSlot{},
	}

	for _, day := range days {
		for _, t := range times {
			slot := time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)

			if slot.Before(now) {
				result.Skipped = append(result.Skipped, response.SkippedSlot{
					Date:   day.Format("2006-01-02"),
					Time:   t.Format("15:04"),
					Reason: SkipReasonPast,
				})
				continue
			}

			key := entity.SlotKey(room.ID, day, slot)
			if _, taken := occupied[key]; taken {
				result.Skipped = append(result.Skipped, response.SkippedSlot{
					Date:   day.Format("2006-01-02"),
					Time:   t.Format("15:04"),
					Reason: SkipReasonDuplicate,
				})
				continue
			}

			showtime := &entity.Showtime{
				Base: entity.Base{
					ID:        uuid.New(),
					CreatedAt: now,
					UpdatedAt: now,
				},
				MovieID:  movie.ID,
				CinemaID: cinema.ID,
				RoomID:   room.ID,
				ShowDate: day,
				ShowTime: slot,
				Price:    slotPrice,
			}

			if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
				// A concurrent generator can win the slot between the
				// snapshot and the insert. That is a skip, not a failure.
				if apperr.Is(err, apperr.KindDuplicateShowtime) {
					result.Skipped = append(result.Skipped, response.SkippedSlot{
						Date:   day.Format("2006-01-02"),
						Time:   t.Format("15:04"),
						Reason: SkipReasonDuplicate,
					})
					occupied[key] = struct{}{}
					continue
				}
				s.log.Error("Failed to create showtime",
					zap.Error(err),
					zap.String("room_id", room.ID.String()),
					zap.String("slot", key),
				)
				return nil, fmt.Errorf("create showtime %s: %w", key, err)
			}

			occupied[key] = struct{}{}
			result.Created = append(result.Created, response.ShowtimeToResponse(showtime))
		}
	}

	duplicates := 0
	for _, skip := range result.Skipped {
		if skip.Reason == SkipReasonDuplicate {
			duplicates++
		}
	}
	result.Summary = response.ScheduleSummary{
		Created:           len(result.Created),
		DuplicatesSkipped: duplicates,
	}

	s.log.Info("Showtime batch scheduled",
		zap.String("room_id", room.ID.String()),
		zap.Int("created", result.Summary.Created),
		zap.Int("skipped", result.Summary.DuplicatesSkipped),
	)

	return result, nil
}

func (s *showtimeService) UpdateShowtime(ctx context.Context, showtimeID string, req *request.UpdateShowtimeRequest) (*response.ShowtimeResponse, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid showtime ID format %s", showtimeID)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get showtime %s: %w", showtimeID, err)
	}
	if showtime == nil {
		return nil, apperr.New(apperr.KindNotFound, "showtime %s not found", showtimeID)
	}

	now := s.now().UTC()

	// Played showtimes are history and stay untouched.
	if showtime.ShowTime.Before(now) {
		return nil, apperr.New(apperr.KindPastShowtime, "showtime %s has already played", showtimeID)
	}

	if req.MovieID != nil {
		movieUUID, err := uuid.Parse(*req.MovieID)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, err, "invalid movie ID format %s", *req.MovieID)
		}
		movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
		if err != nil {
			return nil, fmt.Errorf("get movie %s: %w", *req.MovieID, err)
		}
		if movie == nil {
			return nil, apperr.New(apperr.KindNotFound, "movie %s not found", *req.MovieID)
		}
		showtime.MovieID = movie.ID
	}

	if req.RoomID != nil {
		roomUUID, err := uuid.Parse(*req.RoomID)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, err, "invalid room ID format %s", *req.RoomID)
		}
		room, err := s.repo.Room.FindByID(ctx, roomUUID)
		if err != nil {
			return nil, fmt.Errorf("get room %s: %w", *req.RoomID, err)
		}
		if room == nil {
			return nil, apperr.New(apperr.KindNotFound, "room %s not found", *req.RoomID)
		}
		showtime.RoomID = room.ID
		showtime.CinemaID = room.CinemaID
	}

	if req.CinemaID != nil {
		cinemaUUID, err := uuid.Parse(*req.CinemaID)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, err, "invalid cinema ID format %s", *req.CinemaID)
		}
		if showtime.CinemaID != cinemaUUID {
			return nil, apperr.New(apperr.KindValidation, "room does not belong to cinema %s", *req.CinemaID)
		}
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		showtime.ShowDate = date
		showtime.ShowTime = time.Date(date.Year(), date.Month(), date.Day(),
			showtime.ShowTime.UTC().Hour(), showtime.ShowTime.UTC().Minute(), 0, 0, time.UTC)
	}

	if req.Time != nil {
		t, err := time.Parse("15:04", *req.Time)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, err, "invalid time format %s", *req.Time)
		}
		d := showtime.ShowDate.UTC()
		showtime.ShowTime = time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
	}

	if req.Price != nil {
		showtime.Price = *req.Price
	}

	if showtime.ShowTime.Before(now) {
		return nil, apperr.New(apperr.KindPastShowtime, "cannot move showtime %s into the past", showtimeID)
	}

	// Uniqueness is checked against every showtime except this one, so a
	// no-op edit that keeps the slot never conflicts with itself.
	taken, err := s.repo.Showtime.ExistsSlot(ctx, showtime.RoomID, showtime.ShowDate, showtime.ShowTime, &showtime.ID)
	if err != nil {
		return nil, fmt.Errorf("check slot for showtime %s: %w", showtimeID, err)
	}
	if taken {
		return nil, apperr.New(apperr.KindDuplicateShowtime, "slot %s is already occupied", showtime.SlotKey())
	}

	showtime.UpdatedAt = now
	if err := s.repo.Showtime.Update(ctx, showtime); err != nil {
		s.log.Error("Failed to update showtime", zap.Error(err), zap.String("showtime_id", showtimeID))
		return nil, fmt.Errorf("update showtime %s: %w", showtimeID, err)
	}

	s.log.Info("Showtime updated", zap.String("showtime_id", showtimeID), zap.String("slot", showtime.SlotKey()))

	resp := response.ShowtimeToResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) DeleteShowtime(ctx context.Context, showtimeID string) error {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return apperr.Wrap(apperr.KindValidation, err, "invalid showtime ID format %s", showtimeID)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get showtime %s: %w", showtimeID, err)
	}
	if showtime == nil {
		return apperr.New(apperr.KindNotFound, "showtime %s not found", showtimeID)
	}

	activeTickets, err := s.repo.Ticket.CountActiveByShowtimeID(ctx, id)
	if err != nil {
		return fmt.Errorf("count tickets for showtime %s: %w", showtimeID, err)
	}
	if activeTickets > 0 {
		return apperr.New(apperr.KindConflict, "showtime %s has %d active tickets", showtimeID, activeTickets)
	}

	if err := s.repo.Showtime.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete showtime", zap.Error(err), zap.String("showtime_id", showtimeID))
		return fmt.Errorf("delete showtime %s: %w", showtimeID, err)
	}

	s.log.Info("Showtime deleted", zap.String("showtime_id", showtimeID))
	return nil
}

// resolveSchedulingRefs loads and cross-checks the three entities a batch
// references. Errors name the entity that failed to resolve.
func (s *showtimeService) resolveSchedulingRefs(ctx context.Context, movieID, cinemaID, roomID string) (*entity.Movie, *entity.Cinema, *entity.Room, error) {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, nil, nil, apperr.Wrap(apperr.KindValidation, err, "invalid movie ID format %s", movieID)
	}
	cinemaUUID, err := uuid.Parse(cinemaID)
	if err != nil {
		return nil, nil, nil, apperr.Wrap(apperr.KindValidation, err, "invalid cinema ID format %s", cinemaID)
	}
	roomUUID, err := uuid.Parse(roomID)
	if err != nil {
		return nil, nil, nil, apperr.Wrap(apperr.KindValidation, err, "invalid room ID format %s", roomID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieUUID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get movie %s: %w", movieID, err)
	}
	if movie == nil {
		return nil, nil, nil, apperr.New(apperr.KindNotFound, "movie %s not found", movieID)
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, cinemaUUID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get cinema %s: %w", cinemaID, err)
	}
	if cinema == nil {
		return nil, nil, nil, apperr.New(apperr.KindNotFound, "cinema %s not found", cinemaID)
	}

	room, err := s.repo.Room.FindByID(ctx, roomUUID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get room %s: %w", roomID, err)
	}
	if room == nil {
		return nil, nil, nil, apperr.New(apperr.KindNotFound, "room %s not found", roomID)
	}
	if room.CinemaID != cinema.ID {
		return nil, nil, nil, apperr.New(apperr.KindValidation, "room %s does not belong to cinema %s", roomID, cinemaID)
	}

	return movie, cinema, room, nil
}

// enrichShowtime resolves the display names of the referenced movie, cinema
// and room. Lookups that fail leave the name empty rather than failing the
// whole read.
func (s *showtimeService) enrichShowtime(ctx context.Context, showtime *entity.Showtime) response.ShowtimeResponse {
	var movieTitle, cinemaName, roomName string

	if movie, err := s.repo.Movie.FindByID(ctx, showtime.MovieID); err == nil && movie != nil {
		movieTitle = movie.Title
	}
	if cinema, err := s.repo.Cinema.FindByID(ctx, showtime.CinemaID); err == nil && cinema != nil {
		cinemaName = cinema.Name
	}
	if room, err := s.repo.Room.FindByID(ctx, showtime.RoomID); err == nil && room != nil {
		roomName = room.Name
	}

	return response.ShowtimeToDetailResponse(showtime, movieTitle, cinemaName, roomName)
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apperr.Wrap(apperr.KindValidation, err, "invalid date format %s", value)
	}
	return date.UTC(), nil
}

func parseTimes(values []string) ([]time.Time, error) {
	if len(values) == 0 {
		return nil, apperr.New(apperr.KindValidation, "times must not be empty")
	}

	times := make([]time.Time, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		t, err := time.Parse("15:04", value)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, err, "invalid time format %s", value)
		}
		// A duplicated entry within one request is collapsed, not skipped.
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		times = append(times, t)
	}

	return times, nil
}

func parseOptionalID(value *string, field string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid %s ID format %s", field, *value)
	}
	return &id, nil
}
