package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-admin/internal/data/entity"
	"cinema-admin/pkg/database"

	"go.uber.org/zap"
)

// RevenueGroupBy selects the bucket dimension of the revenue report.
type RevenueGroupBy string

const (
	RevenueGroupByDay    RevenueGroupBy = "day"
	RevenueGroupByMovie  RevenueGroupBy = "movie"
	RevenueGroupByCinema RevenueGroupBy = "cinema"
)

type ReportRepository interface {
	Revenue(ctx context.Context, from, to time.Time, groupBy RevenueGroupBy) ([]*entity.RevenueRow, error)
}

type reportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReportRepository(db database.PgxIface, log *zap.Logger) ReportRepository {
	return &reportRepository{
		db:  db,
		log: log.With(zap.String("repository", "report")),
	}
}

// Revenue sums confirmed ticket sales over [from, to] grouped by the chosen
// dimension. Only confirmed (paid) tickets count toward revenue.
func (r *reportRepository) Revenue(ctx context.Context, from, to time.Time, groupBy RevenueGroupBy) ([]*entity.RevenueRow, error) {
	var query string

	switch groupBy {
	case RevenueGroupByMovie:
		query = `
			SELECT m.title AS label, COUNT(t.id), COALESCE(SUM(t.total_price), 0)
			FROM tickets t
			INNER JOIN showtimes s ON s.id = t.showtime_id
			INNER JOIN movies m ON m.id = s.movie_id
			WHERE t.status = 'confirmed' AND t.deleted_at IS NULL
			  AND s.show_date >= $1 AND s.show_date <= $2
			GROUP BY m.title
			ORDER BY 3 DESC
		`
	case RevenueGroupByCinema:
		query = `
			SELECT c.name AS label, COUNT(t.id), COALESCE(SUM(t.total_price), 0)
			FROM tickets t
			INNER JOIN showtimes s ON s.id = t.showtime_id
			INNER JOIN cinemas c ON c.id = s.cinema_id
			WHERE t.status = 'confirmed' AND t.deleted_at IS NULL
			  AND s.show_date >= $1 AND s.show_date <= $2
			GROUP BY c.name
			ORDER BY 3 DESC
		`
	case RevenueGroupByDay:
		query = `
			SELECT TO_CHAR(s.show_date, 'YYYY-MM-DD') AS label, COUNT(t.id), COALESCE(SUM(t.total_price), 0)
			FROM tickets t
			INNER JOIN showtimes s ON s.id = t.showtime_id
			WHERE t.status = 'confirmed' AND t.deleted_at IS NULL
			  AND s.show_date >= $1 AND s.show_date <= $2
			GROUP BY s.show_date
			ORDER BY s.show_date
		`
	default:
		return nil, fmt.Errorf("unknown revenue group %q", groupBy)
	}

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to query revenue",
			zap.Error(err),
			zap.String("group_by", string(groupBy)),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("query revenue grouped by %s: %w", groupBy, err)
	}
	defer rows.Close()

	var result []*entity.RevenueRow
	for rows.Next() {
		var row entity.RevenueRow
		if err := rows.Scan(&row.Label, &row.TicketCount, &row.Revenue); err != nil {
			r.log.Error("Failed to scan revenue row", zap.Error(err))
			return nil, fmt.Errorf("scan revenue row: %w", err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revenue rows: %w", err)
	}

	return result, nil
}
