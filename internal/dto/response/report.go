package response

import "cinema-admin/internal/data/entity"

type RevenueRowResponse struct {
	Label       string  `json:"label"`
	TicketCount int64   `json:"ticket_count"`
	Revenue     float64 `json:"revenue"`
}

type RevenueReportResponse struct {
	From    string               `json:"from"`
	To      string               `json:"to"`
	GroupBy string               `json:"group_by"`
	Rows    []RevenueRowResponse `json:"rows"`
	Total   float64              `json:"total"`
}

func RevenueRowToResponse(row *entity.RevenueRow) RevenueRowResponse {
	return RevenueRowResponse{
		Label:       row.Label,
		TicketCount: row.TicketCount,
		Revenue:     row.Revenue,
	}
}
