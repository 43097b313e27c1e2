package response

import (
	"time"

	"cinema-admin/internal/data/entity"
)

type EmployeeResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Phone     *string             `json:"phone,omitempty"`
	Role      entity.EmployeeRole `json:"role"`
	IsActive  bool                `json:"is_active"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// Password hash never leaves the service.
func EmployeeToResponse(employee *entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        employee.ID.String(),
		Name:      employee.Name,
		Email:     employee.Email,
		Phone:     employee.Phone,
		Role:      employee.Role,
		IsActive:  employee.IsActive,
		CreatedAt: employee.CreatedAt,
		UpdatedAt: employee.UpdatedAt,
	}
}
