package usecase

import (
	"cinema-admin/internal/data/repository"
	"cinema-admin/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Showtime   ShowtimeService
	SeatStatus SeatStatusService
	Cinema     CinemaService
	Seat       SeatService
	Movie      MovieService
	Ticket     TicketService
	Customer   CustomerService
	Employee   EmployeeService
	Food       FoodService
	Discount   DiscountService
	Report     ReportService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Showtime:   NewShowtimeService(repo, config, log),
		SeatStatus: NewSeatStatusService(repo, log),
		Cinema:     NewCinemaService(repo, log),
		Seat:       NewSeatService(repo, log),
		Movie:      NewMovieService(repo, log),
		Ticket:     NewTicketService(repo, log),
		Customer:   NewCustomerService(repo.Customer, log),
		Employee:   NewEmployeeService(repo.Employee, config, log),
		Food:       NewFoodService(repo.Food, log),
		Discount:   NewDiscountService(repo.Discount, log),
		Report:     NewReportService(repo.Report, log),
	}
}
