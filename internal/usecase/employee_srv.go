package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-admin/internal/data/entity"
	"cinema-admin/internal/data/repository"
	"cinema-admin/internal/dto/request"
	"cinema-admin/internal/dto/response"
	"cinema-admin/pkg/apperr"
	"cinema-admin/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeService interface {
	GetEmployees(ctx context.Context, req *request.PaginatedRequest, search *string) (*response.PaginatedResponse[response.EmployeeResponse], error)
	GetEmployeeByID(ctx context.Context, employeeID string) (*response.EmployeeResponse, error)
	CreateEmployee(ctx context.Context, req *request.EmployeeRequest) (*response.EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, employeeID string, req *request.EmployeeUpdateRequest) (*response.EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
	bcryptCost   int
	log          *zap.Logger
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository, config *utils.Config, log *zap.Logger) EmployeeService {
	cost := config.Booking.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &employeeService{
		employeeRepo: employeeRepo,
		bcryptCost:   cost,
		log:          log.With(zap.String("service", "employee")),
	}
}

func (s *employeeService) GetEmployees(ctx context.Context, req *request.PaginatedRequest, search *string) (*response.PaginatedResponse[response.EmployeeResponse], error) {
	employees, err := s.employeeRepo.FindAll(ctx, req.Limit(), req.Offset(), search)
	if err != nil {
		s.log.Error("Failed to get employees from repository", zap.Error(err))
		return nil, fmt.Errorf("get employees: %w", err)
	}

	total, err := s.employeeRepo.CountAll(ctx, search)
	if err != nil {
		s.log.Error("Failed to count employees", zap.Error(err))
		return nil, fmt.Errorf("count employees: %w", err)
	}

	employeeResponses := make([]response.EmployeeResponse, len(employees))
	for i, employee := range employees {
		employeeResponses[i] = response.EmployeeToResponse(employee)
	}

	return response.NewPaginatedResponse(employeeResponses, req.Page, req.PerPage, total), nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*response.EmployeeResponse, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid employee ID format %s", employeeID)
	}

	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get employee by ID", zap.Error(err), zap.String("employee_id", employeeID))
		return nil, fmt.Errorf("get employee %s: %w", employeeID, err)
	}
	if employee == nil {
		return nil, apperr.New(apperr.KindNotFound, "employee %s not found", employeeID)
	}

	resp := response.EmployeeToResponse(employee)
	return &resp, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, req *request.EmployeeRequest) (*response.EmployeeResponse, error) {
	existing, err := s.employeeRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check employee email %s: %w", req.Email, err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindConflict, "employee with email %s already exists", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	employee := &entity.Employee{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         entity.EmployeeRole(req.Role),
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		s.log.Error("Failed to create employee", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create employee: %w", err)
	}

	s.log.Info("Employee created", zap.String("employee_id", employee.ID.String()), zap.String("role", req.Role))

	resp := response.EmployeeToResponse(employee)
	return &resp, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req *request.EmployeeUpdateRequest) (*response.EmployeeResponse, error) {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid employee ID format %s", employeeID)
	}

	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get employee %s: %w", employeeID, err)
	}
	if employee == nil {
		return nil, apperr.New(apperr.KindNotFound, "employee %s not found", employeeID)
	}

	if req.Email != nil && *req.Email != employee.Email {
		existing, err := s.employeeRepo.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("check employee email %s: %w", *req.Email, err)
		}
		if existing != nil {
			return nil, apperr.New(apperr.KindConflict, "employee with email %s already exists", *req.Email)
		}
		employee.Email = *req.Email
	}
	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Phone != nil {
		employee.Phone = req.Phone
	}
	if req.Role != nil {
		employee.Role = entity.EmployeeRole(*req.Role)
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		employee.PasswordHash = string(hash)
	}

	employee.UpdatedAt = time.Now().UTC()
	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		s.log.Error("Failed to update employee", zap.Error(err), zap.String("employee_id", employeeID))
		return nil, fmt.Errorf("update employee %s: %w", employeeID, err)
	}

	resp := response.EmployeeToResponse(employee)
	return &resp, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return apperr.Wrap(apperr.KindValidation, err, "invalid employee ID format %s", employeeID)
	}

	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get employee %s: %w", employeeID, err)
	}
	if employee == nil {
		return apperr.New(apperr.KindNotFound, "employee %s not found", employeeID)
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete employee", zap.Error(err), zap.String("employee_id", employeeID))
		return fmt.Errorf("delete employee %s: %w", employeeID, err)
	}

	s.log.Info("Employee deleted", zap.String("employee_id", employeeID))
	return nil
}
