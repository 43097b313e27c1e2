package request

type DiscountRequest struct {
	Code        string  `json:"code" validate:"required,min=3,max=30,uppercase"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
	Percent     int     `json:"percent" validate:"required,min=1,max=100"`
	ValidFrom   string  `json:"valid_from" validate:"required,datetime=2006-01-02"`
	ValidTo     string  `json:"valid_to" validate:"required,datetime=2006-01-02"`
}

type DiscountUpdateRequest struct {
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
	Percent     *int    `json:"percent,omitempty" validate:"omitempty,min=1,max=100"`
	ValidFrom   *string `json:"valid_from,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ValidTo     *string `json:"valid_to,omitempty" validate:"omitempty,datetime=2006-01-02"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
