package adaptor

import (
	"net/http"

	"cinema-admin/internal/usecase"
	"cinema-admin/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// GetRevenue handles GET /api/reports/revenue?from=&to=&group_by=
func (h *ReportHandler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from := query.Get("from")
	to := query.Get("to")

	if from == "" || to == "" {
		utils.ResponseBadRequest(w, "Both from and to query parameters are required", nil)
		return
	}

	report, err := h.service.GetRevenue(r.Context(), from, to, query.Get("group_by"))
	if err != nil {
		handleServiceError(h.log, w, err, "get revenue report")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}
