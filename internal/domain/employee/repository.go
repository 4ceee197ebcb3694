package employee

import "context"

type EmployeeRepository interface {
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	ListActive(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	Create(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	UpdatePhotoURL(ctx context.Context, id string, photoURL string) error
	Delete(ctx context.Context, id string) error
}
