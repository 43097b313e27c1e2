package request

type CinemaRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=100"`
	Address string  `json:"address" validate:"required,min=1,max=200"`
	City    string  `json:"city" validate:"required,min=1,max=100"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=6,max=20"`
}

type CinemaUpdateRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address *string `json:"address,omitempty" validate:"omitempty,min=1,max=200"`
	City    *string `json:"city,omitempty" validate:"omitempty,min=1,max=100"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=6,max=20"`
}

type RoomRequest struct {
	CinemaID string `json:"cinema" validate:"required,uuid4"`
	Name     string `json:"name" validate:"required,min=1,max=50"`
	Status   string `json:"status" validate:"required,oneof=active maintenance inactive"`
}

type RoomUpdateRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=active maintenance inactive"`
}
