package repository

import (
	"cinema-admin/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie      MovieRepository
	Genre      GenreRepository
	MovieGenre MovieGenreRepository
	Cinema     CinemaRepository
	Room       RoomRepository
	Seat       SeatRepository
	Showtime   ShowtimeRepository
	Customer   CustomerRepository
	Ticket     TicketRepository
	TicketSeat TicketSeatRepository
	Employee   EmployeeRepository
	Food       FoodRepository
	Discount   DiscountRepository
	Report     ReportRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:      NewMovieRepository(db, log),
		Genre:      NewGenreRepository(db, log),
		MovieGenre: NewMovieGenreRepository(db, log),
		Cinema:     NewCinemaRepository(db, log),
		Room:       NewRoomRepository(db, log),
		Seat:       NewSeatRepository(db, log),
		Showtime:   NewShowtimeRepository(db, log),
		Customer:   NewCustomerRepository(db, log),
		Ticket:     NewTicketRepository(db, log),
		TicketSeat: NewTicketSeatRepository(db, log),
		Employee:   NewEmployeeRepository(db, log),
		Food:       NewFoodRepository(db, log),
		Discount:   NewDiscountRepository(db, log),
		Report:     NewReportRepository(db, log),
	}
}
