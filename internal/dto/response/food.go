package response

import (
	"time"

	"cinema-admin/internal/data/entity"
)

type FoodResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Category    entity.FoodCategory `json:"category"`
	Price       float64             `json:"price"`
	Description *string             `json:"description,omitempty"`
	ImageURL    *string             `json:"image_url,omitempty"`
	IsAvailable bool                `json:"is_available"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type DiscountResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Description *string   `json:"description,omitempty"`
	Percent     int       `json:"percent"`
	ValidFrom   string    `json:"valid_from"`
	ValidTo     string    `json:"valid_to"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Helper converters
func FoodToResponse(food *entity.Food) FoodResponse {
	return FoodResponse{
		ID:          food.ID.String(),
		Name:        food.Name,
		Category:    food.Category,
		Price:       food.Price,
		Description: food.Description,
		ImageURL:    food.ImageURL,
		IsAvailable: food.IsAvailable,
		CreatedAt:   food.CreatedAt,
		UpdatedAt:   food.UpdatedAt,
	}
}

func DiscountToResponse(discount *entity.Discount) DiscountResponse {
	return DiscountResponse{
		ID:          discount.ID.String(),
		Code:        discount.Code,
		Description: discount.Description,
		Percent:     discount.Percent,
		ValidFrom:   discount.ValidFrom.UTC().Format("2006-01-02"),
		ValidTo:     discount.ValidTo.UTC().Format("2006-01-02"),
		IsActive:    discount.IsActive,
		CreatedAt:   discount.CreatedAt,
		UpdatedAt:   discount.UpdatedAt,
	}
}
