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

type DiscountService interface {
	GetDiscounts(ctx context.Context, req *request.PaginatedRequest, activeOnly bool) (*response.PaginatedResponse[response.DiscountResponse], error)
	GetDiscountByCode(ctx context.Context, code string) (*response.DiscountResponse, error)
	CreateDiscount(ctx context.Context, req *request.DiscountRequest) (*response.DiscountResponse, error)
	UpdateDiscount(ctx context.Context, discountID string, req *request.DiscountUpdateRequest) (*response.DiscountResponse, error)
	DeleteDiscount(ctx context.Context, discountID string) error
}

type discountService struct {
	discountRepo repository.DiscountRepository
	log          *zap.Logger
}

func NewDiscountService(discountRepo repository.DiscountRepository, log *zap.Logger) DiscountService {
	return &discountService{
		discountRepo: discountRepo,
		log:          log.With(zap.String("service", "discount")),
	}
}

func (s *discountService) GetDiscounts(ctx context.Context, req *request.PaginatedRequest, activeOnly bool) (*response.PaginatedResponse[response.DiscountResponse], error) {
	discounts, err := s.discountRepo.FindAll(ctx, req.Limit(), req.Offset(), activeOnly)
	if err != nil {
		s.log.Error("Failed to get discounts from repository", zap.Error(err))
		return nil, fmt.Errorf("get discounts: %w", err)
	}

	total, err := s.discountRepo.CountAll(ctx, activeOnly)
	if err != nil {
		s.log.Error("Failed to count discounts", zap.Error(err))
		return nil, fmt.Errorf("count discounts: %w", err)
	}

	discountResponses := make([]response.DiscountResponse, len(discounts))
	for i, discount := range discounts {
		discountResponses[i] = response.DiscountToResponse(discount)
	}

	return response.NewPaginatedResponse(discountResponses, req.Page, req.PerPage, total), nil
}

func (s *discountService) GetDiscountByCode(ctx context.Context, code string) (*response.DiscountResponse, error) {
	if code == "" {
		return nil, apperr.New(apperr.KindValidation, "discount code must not be empty")
	}

	discount, err := s.discountRepo.FindByCode(ctx, code)
	if err != nil {
		s.log.Error("Failed to get discount by code", zap.Error(err), zap.String("code", code))
		return nil, fmt.Errorf("get discount %s: %w", code, err)
	}
	if discount == nil {
		return nil, apperr.New(apperr.KindNotFound, "discount code %s not found", code)
	}

	resp := response.DiscountToResponse(discount)
	return &resp, nil
}

func (s *discountService) CreateDiscount(ctx context.Context, req *request.DiscountRequest) (*response.DiscountResponse, error) {
	existing, err := s.discountRepo.FindByCode(ctx, req.Code)
	if err != nil {
		return nil, fmt.Errorf("check discount code %s: %w", req.Code, err)
	}
	if existing != nil {
		return nil, apperr.New(apperr.KindConflict, "discount code %s already exists", req.Code)
	}

	validFrom, err := parseDate(req.ValidFrom)
	if err != nil {
		return nil, err
	}
	validTo, err := parseDate(req.ValidTo)
	if err != nil {
		return nil, err
	}
	if validTo.Before(validFrom) {
		return nil, apperr.New(apperr.KindValidation, "valid_from %s is after valid_to %s", req.ValidFrom, req.ValidTo)
	}

	now := time.Now().UTC()
	discount := &entity.Discount{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:        req.Code,
		Description: req.Description,
		Percent:     req.Percent,
		ValidFrom:   validFrom,
		ValidTo:     validTo,
		IsActive:    true,
	}

	if err := s.discountRepo.Create(ctx, discount); err != nil {
		s.log.Error("Failed to create discount", zap.Error(err), zap.String("code", req.Code))
		return nil, fmt.Errorf("create discount %s: %w", req.Code, err)
	}

	s.log.Info("Discount created", zap.String("discount_id", discount.ID.String()), zap.String("code", discount.Code))

	resp := response.DiscountToResponse(discount)
	return &resp, nil
}

func (s *discountService) UpdateDiscount(ctx context.Context, discountID string, req *request.DiscountUpdateRequest) (*response.DiscountResponse, error) {
	id, err := uuid.Parse(discountID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid discount ID format %s", discountID)
	}

	discount, err := s.discountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get discount %s: %w", discountID, err)
	}
	if discount == nil {
		return nil, apperr.New(apperr.KindNotFound, "discount %s not found", discountID)
	}

	if req.Description != nil {
		discount.Description = req.Description
	}
	if req.Percent != nil {
		discount.Percent = *req.Percent
	}
	if req.ValidFrom != nil {
		validFrom, err := parseDate(*req.ValidFrom)
		if err != nil {
			return nil, err
		}
		discount.ValidFrom = validFrom
	}
	if req.ValidTo != nil {
		validTo, err := parseDate(*req.ValidTo)
		if err != nil {
			return nil, err
		}
		discount.ValidTo = validTo
	}
	if discount.ValidTo.Before(discount.ValidFrom) {
		return nil, apperr.New(apperr.KindValidation, "valid_from is after valid_to")
	}
	if req.IsActive != nil {
		discount.IsActive = *req.IsActive
	}

	discount.UpdatedAt = time.Now().UTC()
	if err := s.discountRepo.Update(ctx, discount); err != nil {
		s.log.Error("Failed to update discount", zap.Error(err), zap.String("discount_id", discountID))
		return nil, fmt.Errorf("update discount %s: %w", discountID, err)
	}

	resp := response.DiscountToResponse(discount)
	return &resp, nil
}

func (s *discountService) DeleteDiscount(ctx context.Context, discountID string) error {
	id, err := uuid.Parse(discountID)
	if err != nil {
		return apperr.Wrap(apperr.KindValidation, err, "invalid discount ID format %s", discountID)
	}

	discount, err := s.discountRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get discount %s: %w", discountID, err)
	}
	if discount == nil {
		return apperr.New(apperr.KindNotFound, "discount %s not found", discountID)
	}

	if err := s.discountRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete discount", zap.Error(err), zap.String("discount_id", discountID))
		return fmt.Errorf("delete discount %s: %w", discountID, err)
	}

	s.log.Info("Discount deleted", zap.String("discount_id", discountID))
	return nil
}
