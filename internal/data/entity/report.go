package entity

// RevenueRow is one bucket of the revenue report, grouped by day, movie or
// cinema. Label holds the bucket identity ("2025-03-01", a movie title, a
// cinema name).
type RevenueRow struct {
	Label       string  `db:"label"`
	TicketCount int64   `db:"ticket_count"`
	Revenue     float64 `db:"revenue"`
}
