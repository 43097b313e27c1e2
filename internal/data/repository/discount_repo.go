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

type DiscountRepository interface {
	Create(ctx context.Context, discount *entity.Discount) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error)
	FindByCode(ctx context.Context, code string) (*entity.Discount, error)
	FindAll(ctx context.Context, limit, offset int, activeOnly bool) ([]*entity.Discount, error)
	CountAll(ctx context.Context, activeOnly bool) (int64, error)
	Update(ctx context.Context, discount *entity.Discount) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type discountRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDiscountRepository(db database.PgxIface, log *zap.Logger) DiscountRepository {
	return &discountRepository{
		db:  db,
		log: log.With(zap.String("repository", "discount")),
	}
}

func (r *discountRepository) Create(ctx context.Context, discount *entity.Discount) error {
	query := `
		INSERT INTO discounts (id, code, description, percent, valid_from, valid_to, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		discount.ID,
		discount.Code,
		discount.Description,
		discount.Percent,
		discount.ValidFrom,
		discount.ValidTo,
		discount.IsActive,
		discount.CreatedAt,
		discount.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create discount", zap.Error(err), zap.String("code", discount.Code))
		return fmt.Errorf("create discount %s: %w", discount.Code, err)
	}

	return nil
}

func (r *discountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error) {
	query := `
		SELECT id, code, description, percent, valid_from, valid_to, is_active, created_at, updated_at, deleted_at
		FROM discounts
		WHERE id = $1 AND deleted_at IS NULL
	`

	var discount entity.Discount
	err := r.db.QueryRow(ctx, query, id).Scan(
		&discount.ID,
		&discount.Code,
		&discount.Description,
		&discount.Percent,
		&discount.ValidFrom,
		&discount.ValidTo,
		&discount.IsActive,
		&discount.CreatedAt,
		&discount.UpdatedAt,
		&discount.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find discount by ID", zap.Error(err), zap.String("discount_id", id.String()))
		return nil, fmt.Errorf("find discount by ID %s: %w", id.String(), err)
	}

	return &discount, nil
}

func (r *discountRepository) FindByCode(ctx context.Context, code string) (*entity.Discount, error) {
	query := `
		SELECT id, code, description, percent, valid_from, valid_to, is_active, created_at, updated_at, deleted_at
		FROM discounts
		WHERE UPPER(code) = UPPER($1) AND deleted_at IS NULL
	`

	var discount entity.Discount
	err := r.db.QueryRow(ctx, query, code).Scan(
		&discount.ID,
		&discount.Code,
		&discount.Description,
		&discount.Percent,
		&discount.ValidFrom,
		&discount.ValidTo,
		&discount.IsActive,
		&discount.CreatedAt,
		&discount.UpdatedAt,
		&discount.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find discount by code", zap.Error(err), zap.String("code", code))
		return nil, fmt.Errorf("find discount by code %s: %w", code, err)
	}

	return &discount, nil
}

func (r *discountRepository) FindAll(ctx context.Context, limit, offset int, activeOnly bool) ([]*entity.Discount, error) {
	query := `
		SELECT id, code, description, percent, valid_from, valid_to, is_active, created_at, updated_at
		FROM discounts
		WHERE deleted_at IS NULL
	`

	if activeOnly {
		query += " AND is_active = TRUE AND valid_from <= NOW() AND valid_to >= NOW()"
	}

	query += " ORDER BY valid_to DESC LIMIT $1 OFFSET $2"

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all discounts", zap.Error(err))
		return nil, fmt.Errorf("find all discounts limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var discounts []*entity.Discount
	for rows.Next() {
		var discount entity.Discount
		err := rows.Scan(
			&discount.ID,
			&discount.Code,
			&discount.Description,
			&discount.Percent,
			&discount.ValidFrom,
			&discount.ValidTo,
			&discount.IsActive,
			&discount.CreatedAt,
			&discount.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan discount row", zap.Error(err))
			return nil, fmt.Errorf("scan discount row: %w", err)
		}
		discounts = append(discounts, &discount)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate discount rows: %w", err)
	}

	return discounts, nil
}

func (r *discountRepository) CountAll(ctx context.Context, activeOnly bool) (int64, error) {
	query := `SELECT COUNT(*) FROM discounts WHERE deleted_at IS NULL`

	if activeOnly {
		query += " AND is_active = TRUE AND valid_from <= NOW() AND valid_to >= NOW()"
	}

	var total int64
	err := r.db.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count discounts", zap.Error(err))
		return 0, fmt.Errorf("count all discounts: %w", err)
	}

	return total, nil
}

func (r *discountRepository) Update(ctx context.Context, discount *entity.Discount) error {
	query := `
		UPDATE discounts
		SET code = $2, description = $3, percent = $4, valid_from = $5, valid_to = $6, is_active = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		discount.ID,
		discount.Code,
		discount.Description,
		discount.Percent,
		discount.ValidFrom,
		discount.ValidTo,
		discount.IsActive,
		discount.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update discount", zap.Error(err), zap.String("discount_id", discount.ID.String()))
		return fmt.Errorf("update discount %s: %w", discount.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("discount %s not found or already deleted", discount.ID.String())
	}

	return nil
}

func (r *discountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE discounts SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete discount", zap.Error(err), zap.String("discount_id", id.String()))
		return fmt.Errorf("delete discount %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("discount %s not found", id.String())
	}

	return nil
}
