// internal/wire/wire.go
package wire

import (
	"net/http"

	"cinema-admin/internal/adaptor"
	"cinema-admin/internal/data/repository"
	"cinema-admin/internal/usecase"
	"cinema-admin/pkg/middleware"
	"cinema-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireShowtime(r, handler.Showtime)
	wireCinema(r, handler.Cinema)
	wireSeat(r, handler.Seat)
	wireMovie(r, handler.Movie)
	wireTicket(r, handler.Ticket)
	wireCustomer(r, handler.Customer)
	wireEmployee(r, handler.Employee)
	wireFood(r, handler.Food)
	wireDiscount(r, handler.Discount)
	wireReport(r, handler.Report)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
