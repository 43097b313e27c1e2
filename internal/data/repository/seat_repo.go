package repository

import (
	"context"
	"fmt"

	"cinema-admin/internal/data/entity"
	"cinema-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SeatRepository interface {
	Create(ctx context.Context, seat *entity.Seat) error
	CreateBatch(ctx context.Context, seats []*entity.Seat) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Seat, error)
	CountByRoomID(ctx context.Context, roomID uuid.UUID) (int64, error)
	ExistsLabel(ctx context.Context, roomID uuid.UUID, label string, excludeID *uuid.UUID) (bool, error)
	Update(ctx context.Context, seat *entity.Seat) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) Create(ctx context.Context, seat *entity.Seat) error {
	query := `
		INSERT INTO seats (id, room_id, label, seat_row, seat_column, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		seat.ID,
		seat.RoomID,
		seat.Label,
		seat.SeatRow,
		seat.SeatColumn,
		seat.Price,
		seat.CreatedAt,
		seat.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create seat",
			zap.Error(err),
			zap.String("room_id", seat.RoomID.String()),
			zap.String("label", seat.Label),
		)
		return fmt.Errorf("create seat %s in room %s: %w", seat.Label, seat.RoomID.String(), err)
	}

	return nil
}

func (r *seatRepository) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seat batch: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO seats (id, room_id, label, seat_row, seat_column, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, seat := range seats {
		_, err := tx.Exec(ctx, query,
			seat.ID,
			seat.RoomID,
			seat.Label,
			seat.SeatRow,
			seat.SeatColumn,
			seat.Price,
			seat.CreatedAt,
			seat.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create seat in batch",
				zap.Error(err),
				zap.String("label", seat.Label),
			)
			return fmt.Errorf("create seat %s in batch: %w", seat.Label, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seat batch: %w", err)
	}

	return nil
}

func (r *seatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	query := `
		SELECT id, room_id, label, seat_row, seat_column, price, created_at, updated_at, deleted_at
		FROM seats
		WHERE id = $1 AND deleted_at IS NULL
	`

	var seat entity.Seat
	err := r.db.QueryRow(ctx, query, id).Scan(
		&seat.ID,
		&seat.RoomID,
		&seat.Label,
		&seat.SeatRow,
		&seat.SeatColumn,
		&seat.Price,
		&seat.CreatedAt,
		&seat.UpdatedAt,
		&seat.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat by ID",
			zap.Error(err),
			zap.String("seat_id", id.String()),
		)
		return nil, fmt.Errorf("find seat by ID %s: %w", id.String(), err)
	}

	return &seat, nil
}

func (r *seatRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT id, room_id, label, seat_row, seat_column, price, created_at, updated_at
		FROM seats
		WHERE room_id = $1 AND deleted_at IS NULL
		ORDER BY seat_row, seat_column
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to find seats by room ID",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find seats by room ID %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.RoomID,
			&seat.Label,
			&seat.SeatRow,
			&seat.SeatColumn,
			&seat.Price,
			&seat.CreatedAt,
			&seat.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &seat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seat rows: %w", err)
	}

	return seats, nil
}

func (r *seatRepository) CountByRoomID(ctx context.Context, roomID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM seats WHERE room_id = $1 AND deleted_at IS NULL`

	var total int64
	err := r.db.QueryRow(ctx, query, roomID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count seats",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return 0, fmt.Errorf("count seats for room %s: %w", roomID.String(), err)
	}

	return total, nil
}

func (r *seatRepository) ExistsLabel(ctx context.Context, roomID uuid.UUID, label string, excludeID *uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM seats
			WHERE room_id = $1 AND label = $2 AND deleted_at IS NULL
	`
	args := []interface{}{roomID, label}

	if excludeID != nil {
		query += " AND id != $3"
		args = append(args, *excludeID)
	}
	query += ")"

	var exists bool
	err := r.db.QueryRow(ctx, query, args...).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check seat label",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.String("label", label),
		)
		return false, fmt.Errorf("check seat label %s in room %s: %w", label, roomID.String(), err)
	}

	return exists, nil
}

func (r *seatRepository) Update(ctx context.Context, seat *entity.Seat) error {
	query := `
		UPDATE seats
		SET label = $2, seat_row = $3, seat_column = $4, price = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		seat.ID,
		seat.Label,
		seat.SeatRow,
		seat.SeatColumn,
		seat.Price,
		seat.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update seat",
			zap.Error(err),
			zap.String("seat_id", seat.ID.String()),
		)
		return fmt.Errorf("update seat %s: %w", seat.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat %s not found or already deleted", seat.ID.String())
	}

	return nil
}

func (r *seatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE seats SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete seat",
			zap.Error(err),
			zap.String("seat_id", id.String()),
		)
		return fmt.Errorf("delete seat %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat %s not found", id.String())
	}

	return nil
}
