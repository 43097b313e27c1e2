package repository

import (
	"context"
	"fmt"

	"cinema-admin/internal/data/entity"
	"cinema-admin/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TicketSeatRepository interface {
	CreateBatch(ctx context.Context, ticketSeats []*entity.TicketSeat) error
	FindByTicketID(ctx context.Context, ticketID uuid.UUID) ([]*entity.TicketSeat, error)
	FindBookedSeatIDsByShowtime(ctx context.Context, showtimeID uuid.UUID) ([]uuid.UUID, error)
	DeleteByTicketID(ctx context.Context, ticketID uuid.UUID) error
}

type ticketSeatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketSeatRepository(db database.PgxIface, log *zap.Logger) TicketSeatRepository {
	return &ticketSeatRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket_seat")),
	}
}

func (r *ticketSeatRepository) CreateBatch(ctx context.Context, ticketSeats []*entity.TicketSeat) error {
	if len(ticketSeats) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin ticket seat batch: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO ticket_seats (id, ticket_id, seat_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	for _, ts := range ticketSeats {
		_, err := tx.Exec(ctx, query, ts.ID, ts.TicketID, ts.SeatID, ts.CreatedAt)
		if err != nil {
			r.log.Error("Failed to create ticket seat",
				zap.Error(err),
				zap.String("ticket_id", ts.TicketID.String()),
				zap.String("seat_id", ts.SeatID.String()),
			)
			return fmt.Errorf("create ticket seat for ticket %s seat %s: %w",
				ts.TicketID.String(), ts.SeatID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit ticket seat batch: %w", err)
	}

	return nil
}

func (r *ticketSeatRepository) FindByTicketID(ctx context.Context, ticketID uuid.UUID) ([]*entity.TicketSeat, error) {
	query := `
		SELECT id, ticket_id, seat_id, created_at
		FROM ticket_seats
		WHERE ticket_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, ticketID)
	if err != nil {
		r.log.Error("Failed to find ticket seats by ticket ID",
			zap.Error(err),
			zap.String("ticket_id", ticketID.String()),
		)
		return nil, fmt.Errorf("find ticket seats by ticket ID %s: %w", ticketID.String(), err)
	}
	defer rows.Close()

	var ticketSeats []*entity.TicketSeat
	for rows.Next() {
		var ts entity.TicketSeat
		if err := rows.Scan(&ts.ID, &ts.TicketID, &ts.SeatID, &ts.CreatedAt); err != nil {
			r.log.Error("Failed to scan ticket seat row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket seat row: %w", err)
		}
		ticketSeats = append(ticketSeats, &ts)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ticket seat rows: %w", err)
	}

	return ticketSeats, nil
}

// FindBookedSeatIDsByShowtime returns the seats claimed by tickets that
// still hold them (pending, reserved or confirmed).
func (r *ticketSeatRepository) FindBookedSeatIDsByShowtime(ctx context.Context, showtimeID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT ts.seat_id
		FROM ticket_seats ts
		INNER JOIN tickets t ON ts.ticket_id = t.id
		WHERE t.showtime_id = $1
		  AND t.status NOT IN ('cancelled', 'expired')
		  AND t.deleted_at IS NULL
	`

	rows, err := r.db.Query(ctx, query, showtimeID)
	if err != nil {
		r.log.Error("Failed to find booked seats by showtime",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, fmt.Errorf("find booked seats by showtime %s: %w", showtimeID.String(), err)
	}
	defer rows.Close()

	var seatIDs []uuid.UUID
	for rows.Next() {
		var seatID uuid.UUID
		if err := rows.Scan(&seatID); err != nil {
			r.log.Error("Failed to scan seat ID row", zap.Error(err))
			return nil, fmt.Errorf("scan seat ID row: %w", err)
		}
		seatIDs = append(seatIDs, seatID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seat ID rows: %w", err)
	}

	return seatIDs, nil
}

func (r *ticketSeatRepository) DeleteByTicketID(ctx context.Context, ticketID uuid.UUID) error {
	query := `DELETE FROM ticket_seats WHERE ticket_id = $1`

	_, err := r.db.Exec(ctx, query, ticketID)
	if err != nil {
		r.log.Error("Failed to delete ticket seats by ticket ID",
			zap.Error(err),
			zap.String("ticket_id", ticketID.String()),
		)
		return fmt.Errorf("delete ticket seats by ticket ID %s: %w", ticketID.String(), err)
	}

	return nil
}
