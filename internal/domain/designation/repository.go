package designation

import "context"

type DesignationRepository interface {
	List(ctx context.Context) ([]Designation, error)
	GetByID(ctx context.Context, id string) (Designation, error)
	Create(ctx context.Context, d Designation) (Designation, error)
	Update(ctx context.Context, req UpdateDesignationRequest) error
	Delete(ctx context.Context, id string) error
	CountEmployees(ctx context.Context, id string) (int, error)
}
