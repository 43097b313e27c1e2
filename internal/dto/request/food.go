package request

type FoodRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Category    string  `json:"category" validate:"required,oneof=snack drink combo"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type FoodUpdateRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,oneof=snack drink combo"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}
