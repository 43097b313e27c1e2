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

type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	FindByEmail(ctx context.Context, email string) (*entity.Employee, error)
	FindAll(ctx context.Context, limit, offset int, search *string) ([]*entity.Employee, error)
	CountAll(ctx context.Context, search *string) (int64, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type employeeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEmployeeRepository(db database.PgxIface, log *zap.Logger) EmployeeRepository {
	return &employeeRepository{
		db:  db,
		log: log.With(zap.String("repository", "employee")),
	}
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (id, name, email, phone, role, password, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		employee.ID,
		employee.Name,
		employee.Email,
		employee.Phone,
		employee.Role,
		employee.PasswordHash,
		employee.IsActive,
		employee.CreatedAt,
		employee.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create employee",
			zap.Error(err),
			zap.String("email", employee.Email),
		)
		return fmt.Errorf("create employee %s: %w", employee.Email, err)
	}

	return nil
}

func (r *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	query := `
		SELECT id, name, email, phone, role, password, is_active, created_at, updated_at, deleted_at
		FROM employees
		WHERE id = $1 AND deleted_at IS NULL
	`

	var employee entity.Employee
	err := r.db.QueryRow(ctx, query, id).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Phone,
		&employee.Role,
		&employee.PasswordHash,
		&employee.IsActive,
		&employee.CreatedAt,
		&employee.UpdatedAt,
		&employee.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find employee by ID",
			zap.Error(err),
			zap.String("employee_id", id.String()),
		)
		return nil, fmt.Errorf("find employee by ID %s: %w", id.String(), err)
	}

	return &employee, nil
}

func (r *employeeRepository) FindByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	query := `
		SELECT id, name, email, phone, role, password, is_active, created_at, updated_at, deleted_at
		FROM employees
		WHERE LOWER(email) = LOWER($1) AND deleted_at IS NULL
	`

	var employee entity.Employee
	err := r.db.QueryRow(ctx, query, email).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Phone,
		&employee.Role,
		&employee.PasswordHash,
		&employee.IsActive,
		&employee.CreatedAt,
		&employee.UpdatedAt,
		&employee.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find employee by email", zap.Error(err))
		return nil, fmt.Errorf("find employee by email: %w", err)
	}

	return &employee, nil
}

func (r *employeeRepository) FindAll(ctx context.Context, limit, offset int, search *string) ([]*entity.Employee, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, name, email, phone, role, password, is_active, created_at, updated_at
		FROM employees
		WHERE deleted_at IS NULL
	`)

	args := []interface{}{}
	argCount := 1

	if search != nil && *search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+*search+"%")
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all employees",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all employees limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var employees []*entity.Employee
	for rows.Next() {
		var employee entity.Employee
		err := rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.Email,
			&employee.Phone,
			&employee.Role,
			&employee.PasswordHash,
			&employee.IsActive,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan employee row", zap.Error(err))
			return nil, fmt.Errorf("scan employee row: %w", err)
		}
		employees = append(employees, &employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employee rows: %w", err)
	}

	return employees, nil
}

func (r *employeeRepository) CountAll(ctx context.Context, search *string) (int64, error) {
	query := `SELECT COUNT(*) FROM employees WHERE deleted_at IS NULL`
	args := []interface{}{}

	if search != nil && *search != "" {
		query += " AND (name ILIKE $1 OR email ILIKE $1)"
		args = append(args, "%"+*search+"%")
	}

	var total int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count employees", zap.Error(err))
		return 0, fmt.Errorf("count all employees: %w", err)
	}

	return total, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, email = $3, phone = $4, role = $5, password = $6, is_active = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		employee.ID,
		employee.Name,
		employee.Email,
		employee.Phone,
		employee.Role,
		employee.PasswordHash,
		employee.IsActive,
		employee.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update employee",
			zap.Error(err),
			zap.String("employee_id", employee.ID.String()),
		)
		return fmt.Errorf("update employee %s: %w", employee.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("employee %s not found or already deleted", employee.ID.String())
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE employees SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete employee",
			zap.Error(err),
			zap.String("employee_id", id.String()),
		)
		return fmt.Errorf("delete employee %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("employee %s not found", id.String())
	}

	return nil
}
