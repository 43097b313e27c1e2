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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CustomerService interface {
	GetCustomers(ctx context.Context, req *request.PaginatedRequest, search *string) (*response.PaginatedResponse[response.CustomerResponse], error)
	GetCustomerByID(ctx context.Context, customerID string) (*response.CustomerResponse, error)
	CreateCustomer(ctx context.Context, req *request.CustomerRequest) (*response.CustomerResponse, error)
	UpdateCustomer(ctx context.Context, customerID string, req *request.CustomerUpdateRequest) (*response.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
	log          *zap.Logger
}

func NewCustomerService(customerRepo repository.CustomerRepository, log *zap.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		log:          log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) GetCustomers(ctx context.Context, req *request.PaginatedRequest, search *string) (*response.PaginatedResponse[response.CustomerResponse], error) {
	customers, err := s.customerRepo.FindAll(ctx, req.Limit(), req.Offset(), search)
	if err != nil {
		s.log.Error("Failed to get customers from repository", zap.Error(err))
		return nil, fmt.Errorf("get customers: %w", err)
	}

	total, err := s.customerRepo.CountAll(ctx, search)
	if err != nil {
		s.log.Error("Failed to count customers", zap.Error(err))
		return nil, fmt.Errorf("count customers: %w", err)
	}

	customerResponses := make([]response.CustomerResponse, len(customers))
	for i, customer := range customers {
		customerResponses[i] = response.CustomerToResponse(customer)
	}

	return response.NewPaginatedResponse(customerResponses, req.Page, req.PerPage, total), nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*response.CustomerResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid customer ID format %s", customerID)
	}

	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get customer by ID", zap.Error(err), zap.String("customer_id", customerID))
		return nil, fmt.Errorf("get customer %s: %w", customerID, err)
	}
	if customer == nil {
		return nil, apperr.New(apperr.KindNotFound, "customer %s not found", customerID)
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req *request.CustomerRequest) (*response.CustomerResponse, error) {
	existing, err := s.customerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check customer email %s: %w", req.Email, err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindConflict, "customer with email %s already exists", req.Email)
	}

	now := time.Now().UTC()
	customer := &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.log.Error("Failed to create customer", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.log.Info("Customer created", zap.String("customer_id", customer.ID.String()))

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req *request.CustomerUpdateRequest) (*response.CustomerResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid customer ID format %s", customerID)
	}

	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer %s: %w", customerID, err)
	}
	if customer == nil {
		return nil, apperr.New(apperr.KindNotFound, "customer %s not found", customerID)
	}

	if req.Email != nil && *req.Email != customer.Email {
		existing, err := s.customerRepo.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("check customer email %s: %w", *req.Email, err)
		}
		if existing != nil {
			return nil, apperr.New(apperr.KindConflict, "customer with email %s already exists", *req.Email)
		}
		customer.Email = *req.Email
	}
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = req.Phone
	}

	customer.UpdatedAt = time.Now().UTC()
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		s.log.Error("Failed to update customer", zap.Error(err), zap.String("customer_id", customerID))
		return nil, fmt.Errorf("update customer %s: %w", customerID, err)
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return apperr.Wrap(apperr.KindValidation, err, "invalid customer ID format %s", customerID)
	}

	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get customer %s: %w", customerID, err)
	}
	if customer == nil {
		return apperr.New(apperr.KindNotFound, "customer %s not found", customerID)
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete customer", zap.Error(err), zap.String("customer_id", customerID))
		return fmt.Errorf("delete customer %s: %w", customerID, err)
	}

	s.log.Info("Customer deleted", zap.String("customer_id", customerID))
	return nil
}
