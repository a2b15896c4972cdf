package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-tracker-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	employeeColumns = `id, name, email, department, password_hash, is_admin, created_at, updated_at`

	employeesEmailConstraint = "employees_email_key"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Department, &e.PasswordHash, &e.IsAdmin, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (e *employeeRepositoryImpl) getOne(ctx context.Context, where string, arg any) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE ` + where

	emp, err := scanEmployee(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return e.getOne(ctx, `id = $1`, id)
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return e.getOne(ctx, `email = $1`, email)
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, name, email, department, password_hash, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.Name,
		newEmployee.Email,
		newEmployee.Department,
		newEmployee.PasswordHash,
		newEmployee.IsAdmin,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				if pgErr.ConstraintName == employeesEmailConstraint {
					return employee.Employee{}, employee.ErrEmailExists
				}
				return employee.Employee{}, employee.ErrEmployeeIDExists
			}
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// ExistsByIDOrEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByIDOrEmail(ctx context.Context, id, email string) (bool, bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT
			EXISTS (SELECT 1 FROM employees WHERE id = $1),
			EXISTS (SELECT 1 FROM employees WHERE email = $2)
	`

	var idExists, emailExists bool
	if err := q.QueryRow(ctx, query, id, email).Scan(&idExists, &emailExists); err != nil {
		return false, false, fmt.Errorf("failed to check employee existence: %w", err)
	}
	return idExists, emailExists, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}

// ListActivity implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActivity(ctx context.Context) ([]employee.Activity, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT
			e.id, e.name, e.email, e.department, e.password_hash, e.is_admin, e.created_at, e.updated_at,
			COUNT(a.id) AS total_records,
			MAX(COALESCE(a.clock_out, a.clock_in)) AS last_active,
			COALESCE(BOOL_OR(a.id IS NOT NULL AND a.clock_out IS NULL), FALSE) AS has_open
		FROM employees e
		LEFT JOIN attendance_records a ON a.employee_id = e.id
		GROUP BY e.id
		ORDER BY e.name ASC, e.id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee activity: %w", err)
	}
	defer rows.Close()

	activities := []employee.Activity{}
	for rows.Next() {
		var a employee.Activity
		err := rows.Scan(
			&a.ID, &a.Name, &a.Email, &a.Department, &a.PasswordHash, &a.IsAdmin, &a.CreatedAt, &a.UpdatedAt,
			&a.TotalRecords, &a.LastActive, &a.HasOpen,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee activity: %w", err)
	}
	return activities, nil
}
