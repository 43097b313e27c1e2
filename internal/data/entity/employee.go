package entity

type EmployeeRole string

const (
	EmployeeRoleAdmin   EmployeeRole = "admin"
	EmployeeRoleManager EmployeeRole = "manager"
	EmployeeRoleStaff   EmployeeRole = "staff"
)

type Employee struct {
	Base
	Name         string       `db:"name"`
	Email        string       `db:"email"`
	Phone        *string      `db:"phone"`
	Role         EmployeeRole `db:"role"`
	PasswordHash string       `db:"password"`
	IsActive     bool         `db:"is_active"`
}
