package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-admin/internal/data/entity"
	"cinema-admin/pkg/apperr"
	"cinema-admin/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)
	FindAll(ctx context.Context, limit, offset int, movieID, cinemaID *uuid.UUID) ([]*entity.Showtime, error)
	CountAll(ctx context.Context, movieID, cinemaID *uuid.UUID) (int64, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Showtime, error)
	FindByRoomAndDateRange(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*entity.Showtime, error)
	ExistsSlot(ctx context.Context, roomID uuid.UUID, date, showTime time.Time, excludeID *uuid.UUID) (bool, error)
	Update(ctx context.Context, showtime *entity.Showtime) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (id, movie_id, room_id, cinema_id, show_date, show_time, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.RoomID,
		showtime.CinemaID,
		showtime.ShowDate,
		showtime.ShowTime,
		showtime.Price,
		showtime.CreatedAt,
		showtime.UpdatedAt,
	)

	if err != nil {
		// The unique index on (room_id, show_date, show_time) is the
		// authoritative duplicate check; two concurrent generators can both
		// pass the in-memory pre-check and race here.
		if database.IsUniqueViolation(err) {
			return apperr.Wrap(apperr.KindDuplicateShowtime, err,
				"showtime slot %s %s already exists for room %s",
				showtime.ShowDate.UTC().Format("2006-01-02"),
				showtime.ShowTime.UTC().Format("15:04"),
				showtime.RoomID.String())
		}

		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("movie_id", showtime.MovieID.String()),
			zap.String("room_id", showtime.RoomID.String()),
			zap.Time("show_date", showtime.ShowDate),
		)
		return fmt.Errorf("create showtime for movie %s room %s: %w",
			showtime.MovieID.String(), showtime.RoomID.String(), err)
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, room_id, cinema_id, show_date, show_time, price, created_at, updated_at, deleted_at
		FROM showtimes
		WHERE id = $1 AND deleted_at IS NULL
	`

	var showtime entity.Showtime
	err := r.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.RoomID,
		&showtime.CinemaID,
		&showtime.ShowDate,
		&showtime.ShowTime,
		&showtime.Price,
		&showtime.CreatedAt,
		&showtime.UpdatedAt,
		&showtime.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return nil, fmt.Errorf("find showtime by ID %s: %w", id.String(), err)
	}

	return &showtime, nil
}

func (r *showtimeRepository) FindAll(ctx context.Context, limit, offset int, movieID, cinemaID *uuid.UUID) ([]*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, room_id, cinema_id, show_date, show_time, price, created_at, updated_at
		FROM showtimes
		WHERE deleted_at IS NULL
	`

	args := []interface{}{}
	argCount := 1

	if movieID != nil {
		query += fmt.Sprintf(" AND movie_id = $%d", argCount)
		args = append(args, *movieID)
		argCount++
	}

	if cinemaID != nil {
		query += fmt.Sprintf(" AND cinema_id = $%d", argCount)
		args = append(args, *cinemaID)
		argCount++
	}

	query += fmt.Sprintf(" ORDER BY show_date, show_time LIMIT $%d OFFSET $%d", argCount, argCount+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all showtimes",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all showtimes limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	return scanShowtimes(rows, r.log)
}

func (r *showtimeRepository) CountAll(ctx context.Context, movieID, cinemaID *uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM showtimes WHERE deleted_at IS NULL`
	args := []interface{}{}
	argCount := 1

	if movieID != nil {
		query += fmt.Sprintf(" AND movie_id = $%d", argCount)
		args = append(args, *movieID)
		argCount++
	}

	if cinemaID != nil {
		query += fmt.Sprintf(" AND cinema_id = $%d", argCount)
		args = append(args, *cinemaID)
	}

	var total int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count showtimes", zap.Error(err))
		return 0, fmt.Errorf("count all showtimes: %w", err)
	}

	return total, nil
}

func (r *showtimeRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, room_id, cinema_id, show_date, show_time, price, created_at, updated_at
		FROM showtimes
		WHERE room_id = $1 AND deleted_at IS NULL
		ORDER BY show_date, show_time
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to find showtimes by room ID",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find showtimes by room ID %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	return scanShowtimes(rows, r.log)
}

func (r *showtimeRepository) FindByRoomAndDateRange(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, room_id, cinema_id, show_date, show_time, price, created_at, updated_at
		FROM showtimes
		WHERE room_id = $1 AND show_date >= $2 AND show_date <= $3 AND deleted_at IS NULL
		ORDER BY show_date, show_time
	`

	rows, err := r.db.Query(ctx, query, roomID, from, to)
	if err != nil {
		r.log.Error("Failed to find showtimes by room and date range",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("find showtimes by room %s range %s..%s: %w",
			roomID.String(), from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}
	defer rows.Close()

	return scanShowtimes(rows, r.log)
}

func (r *showtimeRepository) ExistsSlot(ctx context.Context, roomID uuid.UUID, date, showTime time.Time, excludeID *uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM showtimes
			WHERE room_id = $1 AND show_date = $2 AND show_time = $3 AND deleted_at IS NULL
	`
	args := []interface{}{roomID, date, showTime}

	// Updates must not collide with the record being edited itself.
	if excludeID != nil {
		query += " AND id != $4"
		args = append(args, *excludeID)
	}
	query += ")"

	var exists bool
	err := r.db.QueryRow(ctx, query, args...).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check showtime slot",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.Time("show_date", date),
			zap.Time("show_time", showTime),
		)
		return false, fmt.Errorf("check showtime slot for room %s: %w", roomID.String(), err)
	}

	return exists, nil
}

func (r *showtimeRepository) Update(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		UPDATE showtimes
		SET movie_id = $2, room_id = $3, cinema_id = $4, show_date = $5, show_time = $6, price = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.RoomID,
		showtime.CinemaID,
		showtime.ShowDate,
		showtime.ShowTime,
		showtime.Price,
		showtime.UpdatedAt,
	)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Wrap(apperr.KindDuplicateShowtime, err,
				"showtime slot %s %s already exists for room %s",
				showtime.ShowDate.UTC().Format("2006-01-02"),
				showtime.ShowTime.UTC().Format("15:04"),
				showtime.RoomID.String())
		}

		r.log.Error("Failed to update showtime",
			zap.Error(err),
			zap.String("showtime_id", showtime.ID.String()),
		)
		return fmt.Errorf("update showtime %s: %w", showtime.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %s not found", showtime.ID.String())
	}

	return nil
}

func (r *showtimeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE showtimes SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete showtime",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return fmt.Errorf("delete showtime %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %s not found", id.String())
	}

	r.log.Info("Showtime deleted", zap.String("showtime_id", id.String()))
	return nil
}

func scanShowtimes(rows pgx.Rows, log *zap.Logger) ([]*entity.Showtime, error) {
	var showtimes []*entity.Showtime
	for rows.Next() {
		var showtime entity.Showtime
		err := rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.RoomID,
			&showtime.CinemaID,
			&showtime.ShowDate,
			&showtime.ShowTime,
			&showtime.Price,
			&showtime.CreatedAt,
			&showtime.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		showtimes = append(showtimes, &showtime)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate showtime rows: %w", err)
	}

	return showtimes, nil
}
