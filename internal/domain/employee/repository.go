package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	ExistsByIDOrEmail(ctx context.Context, id, email string) (idExists bool, emailExists bool, err error)
	List(ctx context.Context) ([]Employee, error)

	// ListActivity returns every employee with their clock record summary, ordered by name
	ListActivity(ctx context.Context) ([]Activity, error)
}
