package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-admin/internal/data/entity"
	"cinema-admin/internal/data/repository"
	"cinema-admin/internal/dto/request"
	"cinema-admin/pkg/apperr"
	"cinema-admin/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestShowtimeService(repo *repository.Repository) *showtimeService {
	config := &utils.Config{
		Booking: utils.BookingConfig{DefaultTicketPrice: 45000},
	}
	svc := NewShowtimeService(repo, config, nopLogger()).(*showtimeService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

type scheduleFixture struct {
	repo   *repository.Repository
	svc    *showtimeService
	movie  *entity.Movie
	cinema *entity.Cinema
	room   *entity.Room
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	t.Helper()

	repo := newTestRepository()
	movie := seedMovie(repo, "Inception")
	cinema := seedCinema(repo, "Grand Cinema")
	room := seedRoom(repo, cinema.ID, "Studio 1")

	return &scheduleFixture{
		repo:   repo,
		svc:    newTestShowtimeService(repo),
		movie:  movie,
		cinema: cinema,
		room:   room,
	}
}

func TestCreateShowtimes_CreatesOnePerTime(t *testing.T) {
	f := newScheduleFixture(t)

	result, err := f.svc.CreateShowtimes(context.Background(), &request.CreateShowtimesRequest{
		MovieID:  f.movie.ID.String(),
		CinemaID: f.cinema.ID.String(),
		RoomID:   f.room.ID.String(),
		Date:     "2025-03-15",
		Times:    []string{"10:00", "13:00", "16:00"},
	})

	require.NoError(t, err)
	assert.Len(t, result.Created, 3)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, 3, result.Summary.Created)
	assert.Equal(t, 0, result.Summary.DuplicatesSkipped)

	assert.Equal(t, "2025-03-15", result.Created[0].ShowDate)
	assert.Equal(t, "10:00", result.Created[0].ShowTime)
}

func TestCreateShowtimes_DefaultPriceApplied(t *testing.T) {
	f := newScheduleFixture(t)

	result, err := f.svc.CreateShowtimes(context.Background(), &request.CreateShowtimesRequest{
		MovieID:  f.movie.ID.String(),
		CinemaID: f.cinema.ID.String(),
		RoomID:   f.room.ID.String(),
		Date:     "2025-03-15",
		Times:    []string{"10:00"},
	})

	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	assert.Equal(t, 45000.0, result.Created[0].Price)
}

func TestCreateShowtimes_SkipsOccupiedSlot(t *testing.T) {
	f := newScheduleFixture(t)

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	seedShowtime(f.repo, f.movie.ID, f.cinema.ID, f.room.ID,
		date, time.Date(2025, 3, 15, 13, 0, 0, 0, time.UTC))

	result, err := f.svc.CreateShowtimes(context.Background(), &request.CreateShowtimesRequest{
		MovieID:  f.movie.ID.String(),
		CinemaID: f.cinema.ID.String(),
		RoomID:   f.room.ID.String(),
		Date:     "2025-03-15",
		Times:    []string{"10:00", "13:00", "16:00", "19:00"},
	})

	require.NoError(t, err)
	assert.Len(t, result.Created, 3)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "2025-03-15", result.Skipped[0].Date)
	assert.Equal(t, "13:00", result.Skipped[0].Time)
	assert.Equal(t, SkipReasonDuplicate, result.Skipped[0].Reason)
	assert.Equal(t, 1, result.Summary.DuplicatesSkipped)
}

func TestCreateShowtimes_ConflictIgnoresMovie(t *testing.T) {
	f := newScheduleFixture(t)
	otherMovie := seedMovie(f.repo, "Interstellar")

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	seedShowtime(f.repo, otherMovie.ID, f.cinema.ID, f.room.ID,
		date, time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC))

	// Same room, same slot, different movie still conflicts.
	result, err := f.svc.CreateShowtimes(context.Background(), &request.CreateShowtimesRequest{
		MovieID:  f.movie.ID.String(),
		CinemaID: f.cinema.ID.String(),
		RoomID:   f.room.ID.String(),
		Date:     "2025-03-15",
		Times:    []string{"10:00"},
	})

	require.NoError(t, err)
	assert.Empty(t, result.Created)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, SkipReasonDuplicate, result.Skipped[0].Reason)
}

func TestCreateShowtimes_UnknownMovie(t *testing.T) {
	f := newScheduleFixture(t)
	missing := uuid.New()

	_, err := f.svc.CreateShowtimes(context.Background(), &request.CreateShowtimesRequest{
		MovieID:  missing.String(),
		CinemaID: f.cinema.ID.String(),
		RoomID:   f.room.ID.String(),
		Date:     "2025-03-15",
		Times:    []string{"10:00"},
	})

	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "movie")
}

func TestCreateShowtimes_RoomCinemaMismatch(t *testing.T) {
	f := newScheduleFixture(t)
	otherCinema := seedCinema(f.repo, "Other Cinema")

	_, err := f.svc.CreateShowtimes(context.Background(), &request.CreateShowtimesRequest{
		MovieID:  f.movie.ID.String(),
		CinemaID: otherCinema.ID.String(),
		RoomID:   f.room.ID.String(),
		Date:     "2025-03-15",
		Times:    []string{"10:00"},
	})

	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCreateShowtimes_EmptyTimes(t *testing.T) {
	f := newScheduleFixture(t)

	_, err := f.svc.CreateShowtimes(context.Background(), &request.CreateShowtimesRequest{
		MovieID:  f.movie.ID.String(),
		CinemaID: f.cinema.ID.String(),
		RoomID:   f.room.ID.String(),
		Date:     "2025-03-15",
		Times:    []string{},
	})

	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestGenerateShowtimes_CartesianProduct(t *testing.T) {
	f := newScheduleFixture(t)

	result, err := f.svc.GenerateShowtimes(context.Background(), &request.GenerateShowtimesRequest{
		MovieID:   f.movie.ID.String(),
		CinemaID:  f.cinema.ID.String(),
		RoomID:    f.room.ID.String(),
		StartDate: "2025-03-15",
		EndDate:   "2025-03-17",
		Times:     []string{"10:00", "19:30"},
	})

	require.NoError(t, err)
	assert.Len(t, result.Created, 6) // 3 days x 2 times
	assert.Empty(t, result.Skipped)

	// Every (day, time) pair appears exactly once.
	slots := make(map[string]struct{})
	for _, created := range result.Created {
		slots[created.ShowDate+" "+created.ShowTime] = struct{}{}
	}
	assert.Len(t, slots, 6)
	assert.Contains(t, slots, "2025-03-16 19:30")
}

func TestGenerateShowtimes_Idempotent(t *testing.T) {
	f := newScheduleFixture(t)

	req := &request.GenerateShowtimesRequest{
		MovieID:   f.movie.ID.String(),
		CinemaID:  f.cinema.ID.String(),
		RoomID:    f.room.ID.String(),
		StartDate: "2025-03-15",
		EndDate:   "2025-03-16",
		Times:     []string{"10:00", "13:00"},
	}

	first, err := f.svc.GenerateShowtimes(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 4, first.Summary.Created)

	second, err := f.svc.GenerateShowtimes(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, second.Created)
	assert.Len(t, second.Skipped, 4)
	assert.Equal(t, 4, second.Summary.DuplicatesSkipped)
	for _, skip := range second.Skipped {
		assert.Equal(t, SkipReasonDuplicate, skip.Reason)
	}
}

func TestGenerateShowtimes_PastCandidatesSkipped(t *testing.T) {
	f := newScheduleFixture(t)

	// fixedNow is 2025-03-10 12:00 UTC. The 10:00 candidates on the 9th
	// and 10th are in the past, the rest survive.
	result, err := f.svc.GenerateShowtimes(context.Background(), &request.GenerateShowtimesRequest{
		MovieID:   f.movie.ID.String(),
		CinemaID:  f.cinema.ID.String(),
		RoomID:    f.room.ID.String(),
		StartDate: "2025-03-09",
		EndDate:   "2025-03-11",
		Times:     []string{"10:00", "15:00"},
	})

	require.NoError(t, err)
	assert.Len(t, result.Created, 3)

	pastSlots := make(map[string]string)
	for _, skip := range result.Skipped {
		pastSlots[skip.Date+" "+skip.Time] = skip.Reason
	}
	assert.Equal(t, map[string]string{
		"2025-03-09 10:00": SkipReasonPast,
		"2025-03-09 15:00": SkipReasonPast,
		"2025-03-10 10:00": SkipReasonPast,
	}, pastSlots)

	// Past skips are never persisted and are not counted as duplicates.
	assert.Equal(t, 0, result.Summary.DuplicatesSkipped)
}

func TestGenerateShowtimes_InvertedRange(t *testing.T) {
	f := newScheduleFixture(t)

	_, err := f.svc.GenerateShowtimes(context.Background(), &request.GenerateShowtimesRequest{
		MovieID:   f.movie.ID.String(),
		CinemaID:  f.cinema.ID.String(),
		RoomID:    f.room.ID.String(),
		StartDate: "2025-03-17",
		EndDate:   "2025-03-15",
		Times:     []string{"10:00"},
	})

	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestGenerateShowtimes_AllSkippedIsSuccess(t *testing.T) {
	f := newScheduleFixture(t)

	req := &request.GenerateShowtimesRequest{
		MovieID:   f.movie.ID.String(),
		CinemaID:  f.cinema.ID.String(),
		RoomID:    f.room.ID.String(),
		StartDate: "2025-03-15",
		EndDate:   "2025-03-15",
		Times:     []string{"10:00"},
	}

	_, err := f.svc.GenerateShowtimes(context.Background(), req)
	require.NoError(t, err)

	result, err := f.svc.GenerateShowtimes(context.Background(), req)
	require.NoError(t, err)
	assert.NotNil(t, result.Created)
	assert.Empty(t, result.Created)
	assert.Equal(t, 1, result.Summary.DuplicatesSkipped)
}

func TestUpdateShowtime_KeepingSlotDoesNotConflictWithItself(t *testing.T) {
	f := newScheduleFixture(t)

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	showtime := seedShowtime(f.repo, f.movie.ID, f.cinema.ID, f.room.ID,
		date, time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC))

	newPrice := 60000.0
	updated, err := f.svc.UpdateShowtime(context.Background(), showtime.ID.String(), &request.UpdateShowtimeRequest{
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, 60000.0, updated.Price)
	assert.Equal(t, "10:00", updated.ShowTime)
}

func TestUpdateShowtime_RejectsOccupiedSlot(t *testing.T) {
	f := newScheduleFixture(t)

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	seedShowtime(f.repo, f.movie.ID, f.cinema.ID, f.room.ID,
		date, time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC))
	victim := seedShowtime(f.repo, f.movie.ID, f.cinema.ID, f.room.ID,
		date, time.Date(2025, 3, 15, 13, 0, 0, 0, time.UTC))

	newTime := "10:00"
	_, err := f.svc.UpdateShowtime(context.Background(), victim.ID.String(), &request.UpdateShowtimeRequest{
		Time: &newTime,
	})

	require.Error(t, err)
	assert.Equal(t, apperr.KindDuplicateShowtime, apperr.KindOf(err))
}

func TestUpdateShowtime_PastShowtimeLocked(t *testing.T) {
	f := newScheduleFixture(t)

	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	played := seedShowtime(f.repo, f.movie.ID, f.cinema.ID, f.room.ID,
		date, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))

	newPrice := 60000.0
	_, err := f.svc.UpdateShowtime(context.Background(), played.ID.String(), &request.UpdateShowtimeRequest{
		Price: &newPrice,
	})

	require.Error(t, err)
	assert.Equal(t, apperr.KindPastShowtime, apperr.KindOf(err))
}

func TestUpdateShowtime_CannotMoveIntoPast(t *testing.T) {
	f := newScheduleFixture(t)

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	showtime := seedShowtime(f.repo, f.movie.ID, f.cinema.ID, f.room.ID,
		date, time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC))

	pastDate := "2025-03-01"
	_, err := f.svc.UpdateShowtime(context.Background(), showtime.ID.String(), &request.UpdateShowtimeRequest{
		Date: &pastDate,
	})

	require.Error(t, err)
	assert.Equal(t, apperr.KindPastShowtime, apperr.KindOf(err))
}

func TestDeleteShowtime_BlockedByActiveTickets(t *testing.T) {
	f := newScheduleFixture(t)

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	showtime := seedShowtime(f.repo, f.movie.ID, f.cinema.ID, f.room.ID,
		date, time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC))

	f.repo.Ticket.(*fakeTicketRepo).activeCount[showtime.ID] = 2

	err := f.svc.DeleteShowtime(context.Background(), showtime.ID.String())
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// Still present.
	remaining, findErr := f.repo.Showtime.FindByID(context.Background(), showtime.ID)
	require.NoError(t, findErr)
	assert.NotNil(t, remaining)
}

func TestDeleteShowtime_Succeeds(t *testing.T) {
	f := newScheduleFixture(t)

	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	showtime := seedShowtime(f.repo, f.movie.ID, f.cinema.ID, f.room.ID,
		date, time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC))

	err := f.svc.DeleteShowtime(context.Background(), showtime.ID.String())
	require.NoError(t, err)

	remaining, findErr := f.repo.Showtime.FindByID(context.Background(), showtime.ID)
	require.NoError(t, findErr)
	assert.Nil(t, remaining)
}
