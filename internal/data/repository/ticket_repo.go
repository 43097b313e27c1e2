package repository

import (
	"context"
	"fmt"
	"strings"

	"cinema-admin/internal/data/entity"
	"cinema-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	FindAll(ctx context.Context, limit, offset int, customerID, showtimeID *uuid.UUID, status *entity.TicketStatus) ([]*entity.Ticket, error)
	CountAll(ctx context.Context, customerID, showtimeID *uuid.UUID, status *entity.TicketStatus) (int64, error)
	CountActiveByShowtimeID(ctx context.Context, showtimeID uuid.UUID) (int64, error)
	FindActiveSeatDetailsByShowtime(ctx context.Context, showtimeID uuid.UUID) ([]*entity.TicketSeatDetail, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TicketStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, order_id, customer_id, showtime_id, total_seats, total_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		ticket.ID,
		ticket.OrderID,
		ticket.CustomerID,
		ticket.ShowtimeID,
		ticket.TotalSeats,
		ticket.TotalPrice,
		ticket.Status,
		ticket.CreatedAt,
		ticket.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("order_id", ticket.OrderID),
			zap.String("showtime_id", ticket.ShowtimeID.String()),
		)
		return fmt.Errorf("create ticket %s: %w", ticket.OrderID, err)
	}

	return nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	query := `
		SELECT id, order_id, customer_id, showtime_id, total_seats, total_price, status, created_at, updated_at, deleted_at
		FROM tickets
		WHERE id = $1 AND deleted_at IS NULL
	`

	var ticket entity.Ticket
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.OrderID,
		&ticket.CustomerID,
		&ticket.ShowtimeID,
		&ticket.TotalSeats,
		&ticket.TotalPrice,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return nil, fmt.Errorf("find ticket by ID %s: %w", id.String(), err)
	}

	return &ticket, nil
}

func (r *ticketRepository) FindAll(ctx context.Context, limit, offset int, customerID, showtimeID *uuid.UUID, status *entity.TicketStatus) ([]*entity.Ticket, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, order_id, customer_id, showtime_id, total_seats, total_price, status, created_at, updated_at
		FROM tickets
		WHERE deleted_at IS NULL
	`)

	args := []interface{}{}
	argCount := 1

	if customerID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND customer_id = $%d", argCount))
		args = append(args, *customerID)
		argCount++
	}

	if showtimeID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND showtime_id = $%d", argCount))
		args = append(args, *showtimeID)
		argCount++
	}

	if status != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND status = $%d", argCount))
		args = append(args, *status)
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all tickets",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all tickets limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.OrderID,
			&ticket.CustomerID,
			&ticket.ShowtimeID,
			&ticket.TotalSeats,
			&ticket.TotalPrice,
			&ticket.Status,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ticket rows: %w", err)
	}

	return tickets, nil
}

func (r *ticketRepository) CountAll(ctx context.Context, customerID, showtimeID *uuid.UUID, status *entity.TicketStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM tickets WHERE deleted_at IS NULL`
	args := []interface{}{}
	argCount := 1

	if customerID != nil {
		query += fmt.Sprintf(" AND customer_id = $%d", argCount)
		args = append(args, *customerID)
		argCount++
	}

	if showtimeID != nil {
		query += fmt.Sprintf(" AND showtime_id = $%d", argCount)
		args = append(args, *showtimeID)
		argCount++
	}

	if status != nil {
		query += fmt.Sprintf(" AND status = $%d", argCount)
		args = append(args, *status)
	}

	var total int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count tickets", zap.Error(err))
		return 0, fmt.Errorf("count all tickets: %w", err)
	}

	return total, nil
}

func (r *ticketRepository) CountActiveByShowtimeID(ctx context.Context, showtimeID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM tickets
		WHERE showtime_id = $1 AND status NOT IN ('cancelled', 'expired') AND deleted_at IS NULL
	`

	var total int64
	err := r.db.QueryRow(ctx, query, showtimeID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count active tickets",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return 0, fmt.Errorf("count active tickets for showtime %s: %w", showtimeID.String(), err)
	}

	return total, nil
}

// FindActiveSeatDetailsByShowtime returns one row per (ticket, seat) pair
// for every non-cancelled, non-expired ticket of the showtime, with the
// customer contact fields the seat map displays.
func (r *ticketRepository) FindActiveSeatDetailsByShowtime(ctx context.Context, showtimeID uuid.UUID) ([]*entity.TicketSeatDetail, error) {
	query := `
		SELECT t.id, t.order_id, t.status, t.created_at, c.name, c.phone, c.email, ts.seat_id
		FROM tickets t
		INNER JOIN ticket_seats ts ON ts.ticket_id = t.id
		INNER JOIN customers c ON c.id = t.customer_id
		WHERE t.showtime_id = $1
		  AND t.status NOT IN ('cancelled', 'expired')
		  AND t.deleted_at IS NULL
		ORDER BY t.created_at
	`

	rows, err := r.db.Query(ctx, query, showtimeID)
	if err != nil {
		r.log.Error("Failed to find active seat details",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, fmt.Errorf("find active seat details for showtime %s: %w", showtimeID.String(), err)
	}
	defer rows.Close()

	var details []*entity.TicketSeatDetail
	for rows.Next() {
		var d entity.TicketSeatDetail
		err := rows.Scan(
			&d.TicketID,
			&d.OrderID,
			&d.Status,
			&d.BookedAt,
			&d.CustomerName,
			&d.CustomerPhone,
			&d.CustomerEmail,
			&d.SeatID,
		)
		if err != nil {
			r.log.Error("Failed to scan seat detail row", zap.Error(err))
			return nil, fmt.Errorf("scan seat detail row: %w", err)
		}
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seat detail rows: %w", err)
	}

	return details, nil
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TicketStatus) error {
	query := `
		UPDATE tickets
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update ticket status",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update ticket %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ticket %s not found", id.String())
	}

	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE tickets SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete ticket",
			zap.Error(err),
			zap.String("ticket_id", id.String()),
		)
		return fmt.Errorf("delete ticket %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("ticket %s not found", id.String())
	}

	return nil
}
