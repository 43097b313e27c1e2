package usecase

import (
	"context"
	"time"

	"cinema-admin/internal/data/entity"
	"cinema-admin/internal/data/repository"
	"cinema-admin/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory fakes of the repository interfaces. Only the methods the
// services under test reach are meaningfully implemented; the rest return
// zero values.

type fakeMovieRepo struct {
	movies map[uuid.UUID]*entity.Movie
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[uuid.UUID]*entity.Movie)}
}

func (f *fakeMovieRepo) Create(_ context.Context, movie *entity.Movie) error {
	f.movies[movie.ID] = movie
	return nil
}

func (f *fakeMovieRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	return f.movies[id], nil
}

func (f *fakeMovieRepo) FindAll(_ context.Context, _, _ int, _ *string, _ *entity.MovieStatus) ([]*entity.Movie, error) {
	return nil, nil
}

func (f *fakeMovieRepo) CountAll(_ context.Context, _ *string, _ *entity.MovieStatus) (int64, error) {
	return 0, nil
}

func (f *fakeMovieRepo) Update(_ context.Context, movie *entity.Movie) error {
	f.movies[movie.ID] = movie
	return nil
}

func (f *fakeMovieRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.movies, id)
	return nil
}

type fakeCinemaRepo struct {
	cinemas map[uuid.UUID]*entity.Cinema
}

func newFakeCinemaRepo() *fakeCinemaRepo {
	return &fakeCinemaRepo{cinemas: make(map[uuid.UUID]*entity.Cinema)}
}

func (f *fakeCinemaRepo) Create(_ context.Context, cinema *entity.Cinema) error {
	f.cinemas[cinema.ID] = cinema
	return nil
}

func (f *fakeCinemaRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Cinema, error) {
	return f.cinemas[id], nil
}

func (f *fakeCinemaRepo) FindAll(_ context.Context, _, _ int, _ *string) ([]*entity.Cinema, error) {
	return nil, nil
}

func (f *fakeCinemaRepo) CountAll(_ context.Context, _ *string) (int64, error) {
	return 0, nil
}

func (f *fakeCinemaRepo) Update(_ context.Context, cinema *entity.Cinema) error {
	f.cinemas[cinema.ID] = cinema
	return nil
}

func (f *fakeCinemaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.cinemas, id)
	return nil
}

type fakeRoomRepo struct {
	rooms map[uuid.UUID]*entity.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[uuid.UUID]*entity.Room)}
}

func (f *fakeRoomRepo) Create(_ context.Context, room *entity.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	return f.rooms[id], nil
}

func (f *fakeRoomRepo) FindByCinemaID(_ context.Context, cinemaID uuid.UUID) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, room := range f.rooms {
		if room.CinemaID == cinemaID {
			out = append(out, room)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) ExistsName(_ context.Context, cinemaID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	for _, room := range f.rooms {
		if excludeID != nil && room.ID == *excludeID {
			continue
		}
		if room.CinemaID == cinemaID && room.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, room *entity.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rooms, id)
	return nil
}

type fakeSeatRepo struct {
	seats []*entity.Seat
}

func newFakeSeatRepo() *fakeSeatRepo {
	return &fakeSeatRepo{}
}

func (f *fakeSeatRepo) Create(_ context.Context, seat *entity.Seat) error {
	f.seats = append(f.seats, seat)
	return nil
}

func (f *fakeSeatRepo) CreateBatch(_ context.Context, seats []*entity.Seat) error {
	f.seats = append(f.seats, seats...)
	return nil
}

func (f *fakeSeatRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Seat, error) {
	for _, seat := range f.seats {
		if seat.ID == id {
			return seat, nil
		}
	}
	return nil, nil
}

func (f *fakeSeatRepo) FindByRoomID(_ context.Context, roomID uuid.UUID) ([]*entity.Seat, error) {
	var out []*entity.Seat
	for _, seat := range f.seats {
		if seat.RoomID == roomID {
			out = append(out, seat)
		}
	}
	return out, nil
}

func (f *fakeSeatRepo) CountByRoomID(_ context.Context, roomID uuid.UUID) (int64, error) {
	var n int64
	for _, seat := range f.seats {
		if seat.RoomID == roomID {
			n++
		}
	}
	return n, nil
}

func (f *fakeSeatRepo) ExistsLabel(_ context.Context, roomID uuid.UUID, label string, excludeID *uuid.UUID) (bool, error) {
	for _, seat := range f.seats {
		if excludeID != nil && seat.ID == *excludeID {
			continue
		}
		if seat.RoomID == roomID && seat.Label == label {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSeatRepo) Update(_ context.Context, seat *entity.Seat) error {
	for i, s := range f.seats {
		if s.ID == seat.ID {
			f.seats[i] = seat
		}
	}
	return nil
}

func (f *fakeSeatRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, seat := range f.seats {
		if seat.ID == id {
			f.seats = append(f.seats[:i], f.seats[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeShowtimeRepo enforces slot uniqueness on insert the way the database
// unique index does, so concurrency races can be simulated.
type fakeShowtimeRepo struct {
	showtimes []*entity.Showtime
}

func newFakeShowtimeRepo() *fakeShowtimeRepo {
	return &fakeShowtimeRepo{}
}

func (f *fakeShowtimeRepo) Create(_ context.Context, showtime *entity.Showtime) error {
	for _, st := range f.showtimes {
		if st.SlotKey() == showtime.SlotKey() {
			return apperr.New(apperr.KindDuplicateShowtime, "slot %s is already occupied", showtime.SlotKey())
		}
	}
	f.showtimes = append(f.showtimes, showtime)
	return nil
}

func (f *fakeShowtimeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Showtime, error) {
	for _, st := range f.showtimes {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, nil
}

func (f *fakeShowtimeRepo) FindAll(_ context.Context, _, _ int, _, _ *uuid.UUID) ([]*entity.Showtime, error) {
	return f.showtimes, nil
}

func (f *fakeShowtimeRepo) CountAll(_ context.Context, _, _ *uuid.UUID) (int64, error) {
	return int64(len(f.showtimes)), nil
}

func (f *fakeShowtimeRepo) FindByRoomID(_ context.Context, roomID uuid.UUID) ([]*entity.Showtime, error) {
	var out []*entity.Showtime
	for _, st := range f.showtimes {
		if st.RoomID == roomID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (f *fakeShowtimeRepo) FindByRoomAndDateRange(_ context.Context, roomID uuid.UUID, from, to time.Time) ([]*entity.Showtime, error) {
	var out []*entity.Showtime
	for _, st := range f.showtimes {
		if st.RoomID != roomID {
			continue
		}
		if st.ShowDate.Before(from) || st.ShowDate.After(to) {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}

func (f *fakeShowtimeRepo) ExistsSlot(_ context.Context, roomID uuid.UUID, date, showTime time.Time, excludeID *uuid.UUID) (bool, error) {
	key := entity.SlotKey(roomID, date, showTime)
	for _, st := range f.showtimes {
		if excludeID != nil && st.ID == *excludeID {
			continue
		}
		if st.SlotKey() == key {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeShowtimeRepo) Update(_ context.Context, showtime *entity.Showtime) error {
	for i, st := range f.showtimes {
		if st.ID == showtime.ID {
			f.showtimes[i] = showtime
		}
	}
	return nil
}

func (f *fakeShowtimeRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, st := range f.showtimes {
		if st.ID == id {
			f.showtimes = append(f.showtimes[:i], f.showtimes[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeTicketRepo struct {
	tickets     map[uuid.UUID]*entity.Ticket
	seatDetails map[uuid.UUID][]*entity.TicketSeatDetail // keyed by showtime
	activeCount map[uuid.UUID]int64
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{
		tickets:     make(map[uuid.UUID]*entity.Ticket),
		seatDetails: make(map[uuid.UUID][]*entity.TicketSeatDetail),
		activeCount: make(map[uuid.UUID]int64),
	}
}

func (f *fakeTicketRepo) Create(_ context.Context, ticket *entity.Ticket) error {
	f.tickets[ticket.ID] = ticket
	return nil
}

func (f *fakeTicketRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Ticket, error) {
	return f.tickets[id], nil
}

func (f *fakeTicketRepo) FindAll(_ context.Context, _, _ int, _, _ *uuid.UUID, _ *entity.TicketStatus) ([]*entity.Ticket, error) {
	return nil, nil
}

func (f *fakeTicketRepo) CountAll(_ context.Context, _, _ *uuid.UUID, _ *entity.TicketStatus) (int64, error) {
	return 0, nil
}

func (f *fakeTicketRepo) CountActiveByShowtimeID(_ context.Context, showtimeID uuid.UUID) (int64, error) {
	return f.activeCount[showtimeID], nil
}

func (f *fakeTicketRepo) FindActiveSeatDetailsByShowtime(_ context.Context, showtimeID uuid.UUID) ([]*entity.TicketSeatDetail, error) {
	return f.seatDetails[showtimeID], nil
}

func (f *fakeTicketRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.TicketStatus) error {
	if ticket, ok := f.tickets[id]; ok {
		ticket.Status = status
	}
	return nil
}

func (f *fakeTicketRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.tickets, id)
	return nil
}

type fakeTicketSeatRepo struct {
	ticketSeats []*entity.TicketSeat
}

func newFakeTicketSeatRepo() *fakeTicketSeatRepo {
	return &fakeTicketSeatRepo{}
}

func (f *fakeTicketSeatRepo) CreateBatch(_ context.Context, ticketSeats []*entity.TicketSeat) error {
	f.ticketSeats = append(f.ticketSeats, ticketSeats...)
	return nil
}

func (f *fakeTicketSeatRepo) FindByTicketID(_ context.Context, ticketID uuid.UUID) ([]*entity.TicketSeat, error) {
	var out []*entity.TicketSeat
	for _, ts := range f.ticketSeats {
		if ts.TicketID == ticketID {
			out = append(out, ts)
		}
	}
	return out, nil
}

func (f *fakeTicketSeatRepo) FindBookedSeatIDsByShowtime(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}

func (f *fakeTicketSeatRepo) DeleteByTicketID(_ context.Context, ticketID uuid.UUID) error {
	var kept []*entity.TicketSeat
	for _, ts := range f.ticketSeats {
		if ts.TicketID != ticketID {
			kept = append(kept, ts)
		}
	}
	f.ticketSeats = kept
	return nil
}

// newTestRepository assembles a Repository backed entirely by fakes. The
// repositories not needed by the tests stay nil.
func newTestRepository() *repository.Repository {
	return &repository.Repository{
		Movie:      newFakeMovieRepo(),
		Cinema:     newFakeCinemaRepo(),
		Room:       newFakeRoomRepo(),
		Seat:       newFakeSeatRepo(),
		Showtime:   newFakeShowtimeRepo(),
		Ticket:     newFakeTicketRepo(),
		TicketSeat: newFakeTicketSeatRepo(),
	}
}

func seedMovie(repo *repository.Repository, title string) *entity.Movie {
	movie := &entity.Movie{
		Base:              entity.Base{ID: uuid.New()},
		Title:             title,
		ReleaseDate:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		DurationInMinutes: 120,
		Status:            entity.MovieStatusNowShowing,
	}
	repo.Movie.Create(context.Background(), movie)
	return movie
}

func seedCinema(repo *repository.Repository, name string) *entity.Cinema {
	cinema := &entity.Cinema{
		Base:    entity.Base{ID: uuid.New()},
		Name:    name,
		Address: "Jl. Sudirman 1",
		City:    "Jakarta",
	}
	repo.Cinema.Create(context.Background(), cinema)
	return cinema
}

func seedRoom(repo *repository.Repository, cinemaID uuid.UUID, name string) *entity.Room {
	room := &entity.Room{
		Base:     entity.Base{ID: uuid.New()},
		CinemaID: cinemaID,
		Name:     name,
		Status:   entity.RoomStatusActive,
	}
	repo.Room.Create(context.Background(), room)
	return room
}

func seedSeat(repo *repository.Repository, roomID uuid.UUID, row string, column int) *entity.Seat {
	seat := &entity.Seat{
		Base:       entity.Base{ID: uuid.New()},
		RoomID:     roomID,
		Label:      row + string(rune('0'+column)),
		SeatRow:    row,
		SeatColumn: column,
		Price:      50000,
	}
	repo.Seat.Create(context.Background(), seat)
	return seat
}

func seedShowtime(repo *repository.Repository, movieID, cinemaID, roomID uuid.UUID, date, showTime time.Time) *entity.Showtime {
	showtime := &entity.Showtime{
		Base:     entity.Base{ID: uuid.New()},
		MovieID:  movieID,
		CinemaID: cinemaID,
		RoomID:   roomID,
		ShowDate: date,
		ShowTime: showTime,
		Price:    50000,
	}
	repo.Showtime.Create(context.Background(), showtime)
	return showtime
}

func nopLogger() *zap.Logger {
	return zap.NewNop()
}
