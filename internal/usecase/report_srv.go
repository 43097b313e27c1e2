package usecase

import (
	"context"
	"fmt"

	"cinema-admin/internal/data/repository"
	"cinema-admin/internal/dto/response"
	"cinema-admin/pkg/apperr"

	"go.uber.org/zap"
)

type ReportService interface {
	GetRevenue(ctx context.Context, fromStr, toStr, groupByStr string) (*response.RevenueReportResponse, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
	log        *zap.Logger
}

func NewReportService(reportRepo repository.ReportRepository, log *zap.Logger) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		log:        log.With(zap.String("service", "report")),
	}
}

func (s *reportService) GetRevenue(ctx context.Context, fromStr, toStr, groupByStr string) (*response.RevenueReportResponse, error) {
	from, err := parseDate(fromStr)
	if err != nil {
		return nil, err
	}
	to, err := parseDate(toStr)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, apperr.New(apperr.KindValidation, "from %s is after to %s", fromStr, toStr)
	}

	groupBy := repository.RevenueGroupBy(groupByStr)
	switch groupBy {
	case repository.RevenueGroupByDay, repository.RevenueGroupByMovie, repository.RevenueGroupByCinema:
	case "":
		groupBy = repository.RevenueGroupByDay
	default:
		return nil, apperr.New(apperr.KindValidation, "unknown group_by %s", groupByStr)
	}

	rows, err := s.reportRepo.Revenue(ctx, from, to, groupBy)
	if err != nil {
		s.log.Error("Failed to get revenue report", zap.Error(err), zap.String("group_by", string(groupBy)))
		return nil, fmt.Errorf("get revenue report: %w", err)
	}

	rowResponses := make([]response.RevenueRowResponse, len(rows))
	var total float64
	for i, row := range rows {
		rowResponses[i] = response.RevenueRowToResponse(row)
		total += row.Revenue
	}

	return &response.RevenueReportResponse{
		From:    from.Format("2006-01-02"),
		To:      to.Format("2006-01-02"),
		GroupBy: string(groupBy),
		Rows:    rowResponses,
		Total:   total,
	}, nil
}
