package adaptor

import (
	"net/http"

	"cinema-admin/internal/usecase"
	"cinema-admin/pkg/apperr"
	"cinema-admin/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Showtime *ShowtimeHandler
	Cinema   *CinemaHandler
	Seat     *SeatHandler
	Movie    *MovieHandler
	Ticket   *TicketHandler
	Customer *CustomerHandler
	Employee *EmployeeHandler
	Food     *FoodHandler
	Discount *DiscountHandler
	Report   *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Showtime: NewShowtimeHandler(service.Showtime, service.SeatStatus, log),
		Cinema:   NewCinemaHandler(service.Cinema, log),
		Seat:     NewSeatHandler(service.Seat, log),
		Movie:    NewMovieHandler(service.Movie, log),
		Ticket:   NewTicketHandler(service.Ticket, log),
		Customer: NewCustomerHandler(service.Customer, log),
		Employee: NewEmployeeHandler(service.Employee, log),
		Food:     NewFoodHandler(service.Food, log),
		Discount: NewDiscountHandler(service.Discount, log),
		Report:   NewReportHandler(service.Report, log),
	}
}

// handleServiceError translates a service error into an HTTP response based
// on its kind. The kind travels in errors.code so clients branch on a stable
// machine code instead of matching message text.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	kind := apperr.KindOf(err)
	errors := map[string]string{"code": string(kind)}

	switch kind {
	case apperr.KindValidation:
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), errors)

	case apperr.KindNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case apperr.KindNoSeatData:
		log.Warn(operation+" failed - no seat data", zap.Error(err))
		utils.ResponseJSON(w, http.StatusNotFound, false, err.Error(), nil, errors)

	case apperr.KindDuplicateShowtime, apperr.KindPastShowtime, apperr.KindConflict:
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), errors)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
