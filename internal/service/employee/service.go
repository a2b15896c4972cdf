package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/employee"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt cost used for new passwords.
const PasswordCost = 12

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	passwordCost int
	now          func() time.Time
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		passwordCost: PasswordCost,
		now:          time.Now,
	}
}

// SignUp implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SignUp(ctx context.Context, req employee.SignUpRequest) (employee.EmployeeResponse, error) {
	return s.create(ctx, req, false)
}

// CreateAdmin implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateAdmin(ctx context.Context, req employee.SignUpRequest) (employee.EmployeeResponse, error) {
	return s.create(ctx, req, true)
}

func (s *EmployeeServiceImpl) create(ctx context.Context, req employee.SignUpRequest, isAdmin bool) (employee.EmployeeResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	idExists, emailExists, err := s.employeeRepo.ExistsByIDOrEmail(ctx, req.ID, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check existing employee: %w", err)
	}
	if emailExists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}
	if idExists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeIDExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.passwordCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:           req.ID,
		Name:         req.Name,
		Email:        req.Email,
		Department:   req.Department,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmailExists) || errors.Is(err, employee.ErrEmployeeIDExists) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.NewEmployeeResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.NewEmployeeResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) (employee.ListEmployeeResponse, error) {
	activities, err := s.employeeRepo.ListActivity(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	now := s.now()
	resp := employee.ListEmployeeResponse{
		TotalCount: len(activities),
		Employees:  make([]employee.EmployeeActivityResponse, 0, len(activities)),
	}
	for _, a := range activities {
		resp.Employees = append(resp.Employees, employee.EmployeeActivityResponse{
			EmployeeResponse: employee.NewEmployeeResponse(a.Employee),
			TotalRecords:     a.TotalRecords,
			LastActive:       a.LastActive,
			CurrentStatus:    a.CurrentStatus(),
			Status:           a.Status(now),
		})
	}

	return resp, nil
}
