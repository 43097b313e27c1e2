package wire

import (
	"cinema-admin/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReport(r chi.Router, reportHandler *adaptor.ReportHandler) {
	r.Get("/api/reports/revenue", reportHandler.GetRevenue)
}
