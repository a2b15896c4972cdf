package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// SignUp registers a regular employee
	SignUp(ctx context.Context, req SignUpRequest) (EmployeeResponse, error)

	// CreateAdmin registers an employee with admin rights (admin only)
	CreateAdmin(ctx context.Context, req SignUpRequest) (EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees lists employees with their clock activity (admin only)
	ListEmployees(ctx context.Context) (ListEmployeeResponse, error)
}
