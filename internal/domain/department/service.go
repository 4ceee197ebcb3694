package department

import "context"

type DepartmentService interface {
	List(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	Update(ctx context.Context, req UpdateDepartmentRequest) error
	Delete(ctx context.Context, id string) error
}

type departmentServiceImpl struct {
	repo DepartmentRepository
}

func NewDepartmentService(repo DepartmentRepository) DepartmentService {
	return &departmentServiceImpl{repo: repo}
}

func (s *departmentServiceImpl) List(ctx context.Context) ([]DepartmentResponse, error) {
	departments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		result = append(result, toResponse(d))
	}
	return result, nil
}

func (s *departmentServiceImpl) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, err
	}
	return toResponse(d), nil
}

func (s *departmentServiceImpl) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return DepartmentResponse{}, err
	}

	created, err := s.repo.Create(ctx, Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return DepartmentResponse{}, err
	}
	return toResponse(created), nil
}

func (s *departmentServiceImpl) Update(ctx context.Context, req UpdateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.repo.Update(ctx, req)
}

func (s *departmentServiceImpl) Delete(ctx context.Context, id string) error {
	count, err := s.repo.CountEmployees(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDepartmentInUse
	}
	return s.repo.Delete(ctx, id)
}
