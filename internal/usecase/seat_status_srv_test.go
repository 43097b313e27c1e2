package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-admin/internal/data/entity"
	"cinema-admin/internal/data/repository"
	"cinema-admin/internal/dto/response"
	"cinema-admin/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seatStatusFixture struct {
	repo     *repository.Repository
	svc      SeatStatusService
	showtime *entity.Showtime
	seats    []*entity.Seat
}

func newSeatStatusFixture(t *testing.T, seatCount int) *seatStatusFixture {
	t.Helper()

	repo := newTestRepository()
	movie := seedMovie(repo, "Inception")
	cinema := seedCinema(repo, "Grand Cinema")
	room := seedRoom(repo, cinema.ID, "Studio 1")

	seats := make([]*entity.Seat, 0, seatCount)
	for i := 0; i < seatCount; i++ {
		seats = append(seats, seedSeat(repo, room.ID, "A", i+1))
	}

	showtime := seedShowtime(repo, movie.ID, cinema.ID, room.ID,
		time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 15, 19, 0, 0, 0, time.UTC))

	return &seatStatusFixture{
		repo:     repo,
		svc:      NewSeatStatusService(repo, nopLogger()),
		showtime: showtime,
		seats:    seats,
	}
}

func (f *seatStatusFixture) addSeatDetail(seatID, ticketID uuid.UUID, status entity.TicketStatus) {
	ticketRepo := f.repo.Ticket.(*fakeTicketRepo)
	ticketRepo.seatDetails[f.showtime.ID] = append(ticketRepo.seatDetails[f.showtime.ID], &entity.TicketSeatDetail{
		TicketID:      ticketID,
		OrderID:       "TKT-20250310-0001",
		Status:        status,
		BookedAt:      time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
		CustomerName:  "Budi Santoso",
		CustomerEmail: "budi@example.com",
		SeatID:        seatID,
	})
}

func TestGetSeatStatus_EverySeatPresent(t *testing.T) {
	f := newSeatStatusFixture(t, 4)
	f.addSeatDetail(f.seats[0].ID, uuid.New(), entity.TicketStatusConfirmed)

	view, err := f.svc.GetSeatStatus(context.Background(), f.showtime.ID.String())
	require.NoError(t, err)

	assert.Len(t, view.Seats, 4)
	assert.Len(t, view.SeatStatus, 4)
	for _, seat := range f.seats {
		assert.Contains(t, view.SeatStatus, seat.ID.String())
	}

	assert.Equal(t, response.SeatStateBooked, view.SeatStatus[f.seats[0].ID.String()].Status)
	assert.Equal(t, response.SeatStateAvailable, view.SeatStatus[f.seats[1].ID.String()].Status)
	assert.Equal(t, "2025-03-15", view.ShowDate)
	assert.Equal(t, "19:00", view.ShowTime)
}

func TestGetSeatStatus_BookingInfoAttached(t *testing.T) {
	f := newSeatStatusFixture(t, 2)
	ticketID := uuid.New()
	f.addSeatDetail(f.seats[0].ID, ticketID, entity.TicketStatusConfirmed)

	view, err := f.svc.GetSeatStatus(context.Background(), f.showtime.ID.String())
	require.NoError(t, err)

	info := view.SeatStatus[f.seats[0].ID.String()]
	assert.Equal(t, ticketID.String(), info.TicketID)
	assert.Equal(t, "TKT-20250310-0001", info.OrderID)
	assert.Equal(t, "Budi Santoso", info.CustomerName)
	assert.Equal(t, "2025-03-10 09:30:00", info.BookedAt)

	// Free seats carry no booking details.
	free := view.SeatStatus[f.seats[1].ID.String()]
	assert.Empty(t, free.TicketID)
	assert.Empty(t, free.OrderID)
}

func TestGetSeatStatus_PrecedenceIsOrderIndependent(t *testing.T) {
	orders := map[string][]entity.TicketStatus{
		"pending last":   {entity.TicketStatusConfirmed, entity.TicketStatusPending},
		"pending first":  {entity.TicketStatusPending, entity.TicketStatusConfirmed},
		"reserved mixed": {entity.TicketStatusReserved, entity.TicketStatusPending},
	}
	wants := map[string]string{
		"pending last":   response.SeatStateBooked,
		"pending first":  response.SeatStateBooked,
		"reserved mixed": response.SeatStateReserved,
	}

	for name, statuses := range orders {
		t.Run(name, func(t *testing.T) {
			f := newSeatStatusFixture(t, 1)
			for _, status := range statuses {
				f.addSeatDetail(f.seats[0].ID, uuid.New(), status)
			}

			view, err := f.svc.GetSeatStatus(context.Background(), f.showtime.ID.String())
			require.NoError(t, err)
			assert.Equal(t, wants[name], view.SeatStatus[f.seats[0].ID.String()].Status)
		})
	}
}

func TestGetSeatStatus_EmptyRoster(t *testing.T) {
	f := newSeatStatusFixture(t, 0)

	_, err := f.svc.GetSeatStatus(context.Background(), f.showtime.ID.String())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNoSeatData, apperr.KindOf(err))
}

func TestGetSeatStatus_ShowtimeNotFound(t *testing.T) {
	f := newSeatStatusFixture(t, 2)

	_, err := f.svc.GetSeatStatus(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetSeatStatus_InvalidID(t *testing.T) {
	f := newSeatStatusFixture(t, 2)

	_, err := f.svc.GetSeatStatus(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestGetSeatStatus_UnknownSeatRowsIgnored(t *testing.T) {
	f := newSeatStatusFixture(t, 2)
	f.addSeatDetail(uuid.New(), uuid.New(), entity.TicketStatusConfirmed) // seat deleted after booking

	view, err := f.svc.GetSeatStatus(context.Background(), f.showtime.ID.String())
	require.NoError(t, err)

	assert.Len(t, view.SeatStatus, 2)
	assert.Equal(t, 0, view.Statistics.TotalBooked)
}

func TestGetSeatStatus_Statistics(t *testing.T) {
	f := newSeatStatusFixture(t, 5)

	// One confirmed ticket covering two seats, one pending ticket with one
	// seat, one reserved ticket with one seat. Two seats stay free.
	confirmed := uuid.New()
	f.addSeatDetail(f.seats[0].ID, confirmed, entity.TicketStatusConfirmed)
	f.addSeatDetail(f.seats[1].ID, confirmed, entity.TicketStatusConfirmed)
	f.addSeatDetail(f.seats[2].ID, uuid.New(), entity.TicketStatusPending)
	f.addSeatDetail(f.seats[3].ID, uuid.New(), entity.TicketStatusReserved)

	view, err := f.svc.GetSeatStatus(context.Background(), f.showtime.ID.String())
	require.NoError(t, err)

	stats := view.Statistics
	assert.Equal(t, 5, stats.TotalSeats)
	assert.Equal(t, 4, stats.TotalBooked)
	assert.Equal(t, 1, stats.ConfirmedBookings, "tickets are counted once regardless of seat count")
	assert.Equal(t, 1, stats.PendingBookings)
	assert.Equal(t, 1, stats.ReservedBookings)
}
