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

type FoodService interface {
	GetFoods(ctx context.Context, req *request.PaginatedRequest, category *string) (*response.PaginatedResponse[response.FoodResponse], error)
	GetFoodByID(ctx context.Context, foodID string) (*response.FoodResponse, error)
	CreateFood(ctx context.Context, req *request.FoodRequest) (*response.FoodResponse, error)
	UpdateFood(ctx context.Context, foodID string, req *request.FoodUpdateRequest) (*response.FoodResponse, error)
	DeleteFood(ctx context.Context, foodID string) error
}

type foodService struct {
	foodRepo repository.FoodRepository
	log      *zap.Logger
}

func NewFoodService(foodRepo repository.FoodRepository, log *zap.Logger) FoodService {
	return &foodService{
		foodRepo: foodRepo,
		log:      log.With(zap.String("service", "food")),
	}
}

func (s *foodService) GetFoods(ctx context.Context, req *request.PaginatedRequest, category *string) (*response.PaginatedResponse[response.FoodResponse], error) {
	var categoryFilter *entity.FoodCategory
	if category != nil && *category != "" {
		fc := entity.FoodCategory(*category)
		categoryFilter = &fc
	}

	foods, err := s.foodRepo.FindAll(ctx, req.Limit(), req.Offset(), categoryFilter)
	if err != nil {
		s.log.Error("Failed to get foods from repository", zap.Error(err))
		return nil, fmt.Errorf("get foods: %w", err)
	}

	total, err := s.foodRepo.CountAll(ctx, categoryFilter)
	if err != nil {
		s.log.Error("Failed to count foods", zap.Error(err))
		return nil, fmt.Errorf("count foods: %w", err)
	}

	foodResponses := make([]response.FoodResponse, len(foods))
	for i, food := range foods {
		foodResponses[i] = response.FoodToResponse(food)
	}

	return response.NewPaginatedResponse(foodResponses, req.Page, req.PerPage, total), nil
}

func (s *foodService) GetFoodByID(ctx context.Context, foodID string) (*response.FoodResponse, error) {
	id, err := uuid.Parse(foodID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid food ID format %s", foodID)
	}

	food, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get food by ID", zap.Error(err), zap.String("food_id", foodID))
		return nil, fmt.Errorf("get food %s: %w", foodID, err)
	}
	if food == nil {
		return nil, apperr.New(apperr.KindNotFound, "food %s not found", foodID)
	}

	resp := response.FoodToResponse(food)
	return &resp, nil
}

func (s *foodService) CreateFood(ctx context.Context, req *request.FoodRequest) (*response.FoodResponse, error) {
	now := time.Now().UTC()
	food := &entity.Food{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Category:    entity.FoodCategory(req.Category),
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
	}

	if err := s.foodRepo.Create(ctx, food); err != nil {
		s.log.Error("Failed to create food", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create food: %w", err)
	}

	s.log.Info("Food created", zap.String("food_id", food.ID.String()), zap.String("name", food.Name))

	resp := response.FoodToResponse(food)
	return &resp, nil
}

func (s *foodService) UpdateFood(ctx context.Context, foodID string, req *request.FoodUpdateRequest) (*response.FoodResponse, error) {
	id, err := uuid.Parse(foodID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, err, "invalid food ID format %s", foodID)
	}

	food, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get food %s: %w", foodID, err)
	}
	if food == nil {
		return nil, apperr.New(apperr.KindNotFound, "food %s not found", foodID)
	}

	if req.Name != nil {
		food.Name = *req.Name
	}
	if req.Category != nil {
		food.Category = entity.FoodCategory(*req.Category)
	}
	if req.Price != nil {
		food.Price = *req.Price
	}
	if req.Description != nil {
		food.Description = req.Description
	}
	if req.ImageURL != nil {
		food.ImageURL = req.ImageURL
	}
	if req.IsAvailable != nil {
		food.IsAvailable = *req.IsAvailable
	}

	food.UpdatedAt = time.Now().UTC()
	if err := s.foodRepo.Update(ctx, food); err != nil {
		s.log.Error("Failed to update food", zap.Error(err), zap.String("food_id", foodID))
		return nil, fmt.Errorf("update food %s: %w", foodID, err)
	}

	resp := response.FoodToResponse(food)
	return &resp, nil
}

func (s *foodService) DeleteFood(ctx context.Context, foodID string) error {
	id, err := uuid.Parse(foodID)
	if err != nil {
		return apperr.Wrap(apperr.KindValidation, err, "invalid food ID format %s", foodID)
	}

	food, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get food %s: %w", foodID, err)
	}
	if food == nil {
		return apperr.New(apperr.KindNotFound, "food %s not found", foodID)
	}

	if err := s.foodRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete food", zap.Error(err), zap.String("food_id", foodID))
		return fmt.Errorf("delete food %s: %w", foodID, err)
	}

	s.log.Info("Food deleted", zap.String("food_id", foodID))
	return nil
}
