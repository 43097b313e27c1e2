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

type FoodRepository interface {
	Create(ctx context.Context, food *entity.Food) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)
	FindAll(ctx context.Context, limit, offset int, category *entity.FoodCategory) ([]*entity.Food, error)
	CountAll(ctx context.Context, category *entity.FoodCategory) (int64, error)
	Update(ctx context.Context, food *entity.Food) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type foodRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFoodRepository(db database.PgxIface, log *zap.Logger) FoodRepository {
	return &foodRepository{
		db:  db,
		log: log.With(zap.String("repository", "food")),
	}
}

func (r *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	query := `
		INSERT INTO foods (id, name, category, price, description, image_url, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		food.ID,
		food.Name,
		food.Category,
		food.Price,
		food.Description,
		food.ImageURL,
		food.IsAvailable,
		food.CreatedAt,
		food.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create food", zap.Error(err), zap.String("name", food.Name))
		return fmt.Errorf("create food %s: %w", food.Name, err)
	}

	return nil
}

func (r *foodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	query := `
		SELECT id, name, category, price, description, image_url, is_available, created_at, updated_at, deleted_at
		FROM foods
		WHERE id = $1 AND deleted_at IS NULL
	`

	var food entity.Food
	err := r.db.QueryRow(ctx, query, id).Scan(
		&food.ID,
		&food.Name,
		&food.Category,
		&food.Price,
		&food.Description,
		&food.ImageURL,
		&food.IsAvailable,
		&food.CreatedAt,
		&food.UpdatedAt,
		&food.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find food by ID", zap.Error(err), zap.String("food_id", id.String()))
		return nil, fmt.Errorf("find food by ID %s: %w", id.String(), err)
	}

	return &food, nil
}

func (r *foodRepository) FindAll(ctx context.Context, limit, offset int, category *entity.FoodCategory) ([]*entity.Food, error) {
	query := `
		SELECT id, name, category, price, description, image_url, is_available, created_at, updated_at
		FROM foods
		WHERE deleted_at IS NULL
	`

	args := []interface{}{}
	argCount := 1

	if category != nil {
		query += fmt.Sprintf(" AND category = $%d", argCount)
		args = append(args, *category)
		argCount++
	}

	query += fmt.Sprintf(" ORDER BY category, name LIMIT $%d OFFSET $%d", argCount, argCount+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find all foods", zap.Error(err))
		return nil, fmt.Errorf("find all foods limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var foods []*entity.Food
	for rows.Next() {
		var food entity.Food
		err := rows.Scan(
			&food.ID,
			&food.Name,
			&food.Category,
			&food.Price,
			&food.Description,
			&food.ImageURL,
			&food.IsAvailable,
			&food.CreatedAt,
			&food.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan food row", zap.Error(err))
			return nil, fmt.Errorf("scan food row: %w", err)
		}
		foods = append(foods, &food)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food rows: %w", err)
	}

	return foods, nil
}

func (r *foodRepository) CountAll(ctx context.Context, category *entity.FoodCategory) (int64, error) {
	query := `SELECT COUNT(*) FROM foods WHERE deleted_at IS NULL`
	args := []interface{}{}

	if category != nil {
		query += " AND category = $1"
		args = append(args, *category)
	}

	var total int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count foods", zap.Error(err))
		return 0, fmt.Errorf("count all foods: %w", err)
	}

	return total, nil
}

func (r *foodRepository) Update(ctx context.Context, food *entity.Food) error {
	query := `
		UPDATE foods
		SET name = $2, category = $3, price = $4, description = $5, image_url = $6, is_available = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		food.ID,
		food.Name,
		food.Category,
		food.Price,
		food.Description,
		food.ImageURL,
		food.IsAvailable,
		food.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update food", zap.Error(err), zap.String("food_id", food.ID.String()))
		return fmt.Errorf("update food %s: %w", food.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("food %s not found or already deleted", food.ID.String())
	}

	return nil
}

func (r *foodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE foods SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete food", zap.Error(err), zap.String("food_id", id.String()))
		return fmt.Errorf("delete food %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("food %s not found", id.String())
	}

	return nil
}
