package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-admin/internal/data/entity"
	"cinema-admin/internal/data/repository"
	"cinema-admin/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	rows []*entity.RevenueRow

	gotFrom    time.Time
	gotTo      time.Time
	gotGroupBy repository.RevenueGroupBy
}

func (f *fakeReportRepo) Revenue(_ context.Context, from, to time.Time, groupBy repository.RevenueGroupBy) ([]*entity.RevenueRow, error) {
	f.gotFrom = from
	f.gotTo = to
	f.gotGroupBy = groupBy
	return f.rows, nil
}

func TestGetRevenue_SumsRows(t *testing.T) {
	repo := &fakeReportRepo{rows: []*entity.RevenueRow{
		{Label: "2025-03-15", TicketCount: 4, Revenue: 200000},
		{Label: "2025-03-16", TicketCount: 2, Revenue: 90000},
	}}
	svc := NewReportService(repo, nopLogger())

	report, err := svc.GetRevenue(context.Background(), "2025-03-15", "2025-03-16", "day")
	require.NoError(t, err)

	assert.Equal(t, "day", report.GroupBy)
	assert.Len(t, report.Rows, 2)
	assert.Equal(t, 290000.0, report.Total)
	assert.Equal(t, "2025-03-15", report.From)
	assert.Equal(t, "2025-03-16", report.To)
}

func TestGetRevenue_GroupByPassedThrough(t *testing.T) {
	for _, groupBy := range []string{"day", "movie", "cinema"} {
		repo := &fakeReportRepo{}
		svc := NewReportService(repo, nopLogger())

		report, err := svc.GetRevenue(context.Background(), "2025-03-01", "2025-03-31", groupBy)
		require.NoError(t, err)
		assert.Equal(t, groupBy, report.GroupBy)
		assert.Equal(t, repository.RevenueGroupBy(groupBy), repo.gotGroupBy)
	}
}

func TestGetRevenue_DefaultsToDay(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewReportService(repo, nopLogger())

	report, err := svc.GetRevenue(context.Background(), "2025-03-01", "2025-03-31", "")
	require.NoError(t, err)
	assert.Equal(t, "day", report.GroupBy)
	assert.Equal(t, repository.RevenueGroupByDay, repo.gotGroupBy)
}

func TestGetRevenue_RejectsUnknownGroupBy(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, nopLogger())

	_, err := svc.GetRevenue(context.Background(), "2025-03-01", "2025-03-31", "genre")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestGetRevenue_RejectsInvertedRange(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, nopLogger())

	_, err := svc.GetRevenue(context.Background(), "2025-03-31", "2025-03-01", "day")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
